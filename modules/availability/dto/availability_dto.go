package dto

// ===================== Request DTOs =====================

// DayInput is one weekday in a settings save
type DayInput struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // HH:MM, ignored when disabled
	End     string `json:"end"`   // HH:MM, ignored when disabled
}

// SaveSettingsRequest for writing the weekly template
type SaveSettingsRequest struct {
	Days map[string]DayInput `json:"days"`
}

// ===================== Response DTOs =====================

// DaySetting is one weekday in the settings view. Absent days show as
// disabled with the default 09:00-17:00 window prefilled for editing.
type DaySetting struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// WeekSettings lists all seven weekdays in fixed order
type WeekSettings struct {
	Monday    DaySetting `json:"monday"`
	Tuesday   DaySetting `json:"tuesday"`
	Wednesday DaySetting `json:"wednesday"`
	Thursday  DaySetting `json:"thursday"`
	Friday    DaySetting `json:"friday"`
	Saturday  DaySetting `json:"saturday"`
	Sunday    DaySetting `json:"sunday"`
}

// SettingsResponse for the weekly template view
type SettingsResponse struct {
	Days WeekSettings `json:"days"`
}

// DaySlotsResponse for the booking-page slot query. Configured is false when
// the requested weekday has no enabled window, which is distinct from a fully
// booked day.
type DaySlotsResponse struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	BlockedSlots   []string `json:"blockedSlots"`
	Configured     bool     `json:"configured"`
}

// SeedResponse confirms default availability creation
type SeedResponse struct {
	EventTypeID string `json:"eventTypeId"`
}
