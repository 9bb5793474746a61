package mqtt

import (
	"encoding/json"
	"fmt"

	"github.com/gridshed/gridshed/core/logger"
	"github.com/gridshed/gridshed/core/plan"
)

// OutageNotice is the per-area payload published when a plan is
// generated. One notice aggregates all cut slots of one area.
type OutageNotice struct {
	RunID    string   `json:"run_id"`
	AreaID   int      `json:"area_id"`
	AreaName string   `json:"area_name"`
	Windows  []string `json:"windows"` // "06:00-07:00" entries
	TotalKWh float64  `json:"total_kwh"`
}

// PlanSummary is published once per generated plan on <prefix>/plan.
type PlanSummary struct {
	RunID       string  `json:"run_id"`
	Cuts        int     `json:"cuts"`
	ShedKWh     float64 `json:"shed_kwh"`
	UnservedKWh float64 `json:"unserved_kwh"`
	Verdict     string  `json:"verdict"`
}

// OutageNotifier turns a DayPlan into MQTT messages.
type OutageNotifier struct {
	pub    Publisher
	prefix string
	log    logger.Logger
}

// NewOutageNotifier wraps a connected publisher.
func NewOutageNotifier(pub Publisher, prefix string, log logger.Logger) *OutageNotifier {
	return &OutageNotifier{pub: pub, prefix: prefix, log: log}
}

// NotifyPlan publishes one summary and one notice per affected area.
// Publishing is best effort; a broker failure never fails the plan.
func (n *OutageNotifier) NotifyPlan(dp plan.DayPlan) {
	summary := PlanSummary{
		RunID:       dp.RunID,
		Cuts:        len(dp.Cuts),
		ShedKWh:     dp.TotalShedKWh(),
		UnservedKWh: dp.UnservedKWh,
		Verdict:     dp.Energy.Verdict,
	}
	if b, err := json.Marshal(summary); err == nil {
		if err := n.pub.Publish(n.prefix+"/plan", b); err != nil && n.log != nil {
			n.log.Warnf("publish plan summary: %v", err)
		}
	}

	notices := map[int]*OutageNotice{}
	for _, c := range dp.Cuts {
		notice, ok := notices[c.AreaID]
		if !ok {
			notice = &OutageNotice{RunID: dp.RunID, AreaID: c.AreaID, AreaName: c.AreaName}
			notices[c.AreaID] = notice
		}
		notice.Windows = append(notice.Windows, c.StartTime+"-"+c.EndTime)
		notice.TotalKWh += c.EnergyShedKWh
	}
	for areaID, notice := range notices {
		b, err := json.Marshal(notice)
		if err != nil {
			continue
		}
		topic := fmt.Sprintf("%s/outage/%d", n.prefix, areaID)
		if err := n.pub.Publish(topic, b); err != nil && n.log != nil {
			n.log.Warnf("publish outage notice for area %d: %v", areaID, err)
		}
	}
}

// Close releases the underlying publisher.
func (n *OutageNotifier) Close() {
	if n.pub != nil {
		n.pub.Close()
	}
}
