package plan

import "fmt"

// Config defines scheduling parameters loaded from configuration.
type Config struct {
	// BaseHour is the wall-clock hour the first slot starts at.
	BaseHour int `json:"base_hour"`
	// SlotDurationHours is the length of one scheduling slot.
	SlotDurationHours int `json:"slot_duration_hours"`
	// CooldownSlots is the minimum number of slots between two cuts of
	// the same area.
	CooldownSlots int `json:"cooldown_slots"`
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.BaseHour < 0 || c.BaseHour > 23 {
		return fmt.Errorf("base_hour must be within 0..23, got %d", c.BaseHour)
	}
	if c.SlotDurationHours <= 0 || 24%c.SlotDurationHours != 0 {
		return fmt.Errorf("slot_duration_hours must divide 24, got %d", c.SlotDurationHours)
	}
	if c.CooldownSlots < 0 {
		return fmt.Errorf("cooldown_slots must be non-negative, got %d", c.CooldownSlots)
	}
	return nil
}
