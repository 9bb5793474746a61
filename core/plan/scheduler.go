package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gridshed/gridshed/core/logger"
	"github.com/gridshed/gridshed/core/model"
)

// neverCut is the last-cut sentinel for areas that have not been cut in
// the current run. Far enough in the past to satisfy any cool-down.
const neverCut = -10

// Scheduler walks the shed index once per slot and selects areas to cut
// under the fairness constraints: a per-tier cut-hour budget and a
// minimum cool-down between cuts of the same area.
type Scheduler struct {
	cfg Config
	log logger.Logger
}

// NewScheduler creates a scheduler with the given configuration. Zero
// values are taken literally (a zero base hour starts the day at
// midnight, a zero cool-down permits back-to-back cuts); only the slot
// duration is guarded, since the slot count divides by it.
func NewScheduler(cfg Config, log logger.Logger) *Scheduler {
	if cfg.SlotDurationHours <= 0 {
		cfg.SlotDurationHours = 1
	}
	return &Scheduler{cfg: cfg, log: log}
}

type fairnessState struct {
	cutHours    map[int]float64
	lastCutSlot map[int]int
}

func newFairnessState(areas []model.Area) *fairnessState {
	fs := &fairnessState{
		cutHours:    make(map[int]float64, len(areas)),
		lastCutSlot: make(map[int]int, len(areas)),
	}
	for _, a := range areas {
		fs.cutHours[a.ID] = 0
		fs.lastCutSlot[a.ID] = neverCut
	}
	return fs
}

// eligible reports whether the area may be cut in the given slot.
func (s *Scheduler) eligible(a model.Area, slot int, fs *fairnessState) bool {
	if !a.Sheddable() {
		return false
	}
	if slot-fs.lastCutSlot[a.ID] < s.cfg.CooldownSlots {
		return false
	}
	return fs.cutHours[a.ID] < model.MaxCutHours(a.PriorityLevel)
}

// Run computes the full daily plan. Fairness state is reset at the start
// of every run; the previous plan does not constrain the new one.
func (s *Scheduler) Run(areas []model.Area, feeders map[int]model.Feeder, energy EnergyPlan, now time.Time) DayPlan {
	dp := DayPlan{
		RunID:       "plan-" + uuid.NewString(),
		GeneratedAt: now,
		Energy:      energy,
		CutHours:    map[int]float64{},
	}
	if energy.NoDemand || !energy.Shortage {
		return dp
	}

	byID := make(map[int]model.Area, len(areas))
	for _, a := range areas {
		byID[a.ID] = a
	}
	index := BuildShedIndex(areas)
	fs := newFairnessState(areas)
	slotDur := float64(s.cfg.SlotDurationHours)
	slots := 24 / s.cfg.SlotDurationHours

	for slot := 0; slot < slots; slot++ {
		startHour := (s.cfg.BaseHour + slot*s.cfg.SlotDurationHours) % 24
		endHour := (startHour + s.cfg.SlotDurationHours) % 24
		start := fmt.Sprintf("%02d:00", startHour)
		end := fmt.Sprintf("%02d:00", endHour)

		sum := SlotSummary{Slot: slot, StartTime: start, EndTime: end, DemandKW: energy.HourlyDemandKW}
		if energy.HourlyDemandKW <= energy.AvailableHourlyKW {
			dp.Slots = append(dp.Slots, sum)
			continue
		}
		shortage := energy.HourlyDemandKW - energy.AvailableHourlyKW

		shed := 0.0
		for _, aid := range index.Order() {
			a := byID[aid]
			if !s.eligible(a, slot, fs) {
				continue
			}
			fs.cutHours[aid] += slotDur
			fs.lastCutSlot[aid] = slot
			shed += a.LoadKW
			feederName := ""
			if f, ok := feeders[a.FeederID]; ok {
				feederName = f.Name
			}
			dp.Cuts = append(dp.Cuts, CutRecord{
				Slot:          slot,
				StartTime:     start,
				EndTime:       end,
				AreaID:        a.ID,
				AreaName:      a.Name,
				FeederID:      a.FeederID,
				FeederName:    feederName,
				PriorityLevel: a.PriorityLevel,
				PriorityScore: a.PriorityScore,
				LoadKW:        a.LoadKW,
				EnergyShedKWh: a.LoadKW * slotDur,
			})
			if shed >= shortage {
				break
			}
		}

		sum.ShedKW = shed
		sum.Cut = shed > 0
		if shed < shortage {
			sum.UnservedKW = shortage - shed
			dp.UnservedKWh += sum.UnservedKW * slotDur
		}
		dp.Slots = append(dp.Slots, sum)
	}

	for aid, h := range fs.cutHours {
		if h > 0 {
			dp.CutHours[aid] = h
		}
	}
	if s.log != nil {
		s.log.Infof("plan %s: %d cuts, %.1f kWh shed, %.1f kWh unserved",
			dp.RunID, len(dp.Cuts), dp.TotalShedKWh(), dp.UnservedKWh)
	}
	return dp
}
