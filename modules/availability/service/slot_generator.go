package service

import (
	"fmt"

	"slotbook/modules/availability/entity"
)

// SlotGenerator computes bookable start times from an event duration, a daily
// availability window and the set of already booked starts.
type SlotGenerator struct{}

// NewSlotGenerator creates a new slot generator
func NewSlotGenerator() *SlotGenerator {
	return &SlotGenerator{}
}

// Generate returns the free "HH:MM" start times in ascending order.
//
// Candidates begin at the window start and step by the event duration; a slot
// that would overrun the window end is never produced. Booked starts are
// excluded. A nil window, non-positive duration or inverted window yields an
// empty result.
func (g *SlotGenerator) Generate(durationMinutes int, window *entity.TimeWindow, bookedStarts map[string]struct{}) []string {
	slots := []string{}
	if window == nil || durationMinutes <= 0 {
		return slots
	}

	start, ok := parseClock(window.Start)
	if !ok {
		return slots
	}
	end, ok := parseClock(window.End)
	if !ok {
		return slots
	}

	for offset := start; offset+durationMinutes <= end; offset += durationMinutes {
		slot := formatClock(offset)
		if _, booked := bookedStarts[slot]; booked {
			continue
		}
		slots = append(slots, slot)
	}

	return slots
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// formatClock converts minutes since midnight back to zero-padded "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
