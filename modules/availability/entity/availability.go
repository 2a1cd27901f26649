package entity

import (
	"strings"
	"time"

	"slotbook/core/constants"

	"github.com/google/uuid"
)

// Weekday is a canonical lowercase English day name.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekOrder is the display order for weekly settings.
var WeekOrder = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday validates a day name.
func ParseWeekday(s string) (Weekday, bool) {
	day := Weekday(strings.ToLower(s))
	for _, d := range WeekOrder {
		if day == d {
			return day, true
		}
	}
	return "", false
}

// WeekdayFromDate resolves the weekday of a bare "YYYY-MM-DD" civil date.
// The date is not interpreted as a zoned instant.
func WeekdayFromDate(date string) (Weekday, error) {
	t, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		return "", err
	}
	return Weekday(strings.ToLower(t.Weekday().String())), nil
}

// AvailabilityEntry is one weekday of an event's weekly template. Times are
// "HH:MM" wall-clock strings and are nil when the day is disabled.
type AvailabilityEntry struct {
	ID          int64     `db:"id" json:"id"`
	EventTypeID uuid.UUID `db:"event_type_id" json:"event_type_id"`
	Day         Weekday   `db:"day" json:"day"`
	StartTime   *string   `db:"start_time" json:"start_time,omitempty"`
	EndTime     *string   `db:"end_time" json:"end_time,omitempty"`
	Enabled     bool      `db:"enabled" json:"enabled"`
}

// Window returns the bookable time window, or nil when the day is disabled or
// has no stored times. Stored times on a disabled day are never exposed.
func (e *AvailabilityEntry) Window() *TimeWindow {
	if e == nil || !e.Enabled || e.StartTime == nil || e.EndTime == nil {
		return nil
	}
	return &TimeWindow{Start: *e.StartTime, End: *e.EndTime}
}

// TimeWindow is a bookable range within one day, "HH:MM" inclusive start,
// exclusive end.
type TimeWindow struct {
	Start string
	End   string
}

// DefaultSeed is the template seeded for a new event type: Monday through
// Friday, 09:00-17:00, weekend days absent.
func DefaultSeed(eventTypeID uuid.UUID) []AvailabilityEntry {
	start := constants.DefaultDayStart
	end := constants.DefaultDayEnd
	days := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

	entries := make([]AvailabilityEntry, 0, len(days))
	for _, day := range days {
		s, e := start, end
		entries = append(entries, AvailabilityEntry{
			EventTypeID: eventTypeID,
			Day:         day,
			StartTime:   &s,
			EndTime:     &e,
			Enabled:     true,
		})
	}
	return entries
}
