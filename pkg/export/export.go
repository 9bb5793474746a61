// Package export renders a daily plan's cut records for offline use.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/gridshed/gridshed/core/plan"
)

// WriteJSON writes the full plan to w in JSON format.
func WriteJSON(w io.Writer, dp plan.DayPlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dp)
}

// WriteCSV writes the plan's cut records to w, one row per cut.
func WriteCSV(w io.Writer, dp plan.DayPlan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"slot", "start_time", "end_time", "area_id", "area_name", "feeder_name", "priority_level", "load_kw", "energy_shed_kwh"}); err != nil {
		return err
	}
	for _, c := range dp.Cuts {
		rec := []string{
			strconv.Itoa(c.Slot),
			c.StartTime,
			c.EndTime,
			strconv.Itoa(c.AreaID),
			c.AreaName,
			c.FeederName,
			strconv.Itoa(c.PriorityLevel),
			strconv.FormatFloat(c.LoadKW, 'f', -1, 64),
			strconv.FormatFloat(c.EnergyShedKWh, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
