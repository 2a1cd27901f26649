package dto

import (
	"time"

	"slotbook/modules/eventtype/entity"
)

// ===================== Request DTOs =====================

// CreateEventTypeRequest for creating a new event type
type CreateEventTypeRequest struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Location string `json:"location"`
}

// UpdateEventTypeRequest for partial updates; nil fields keep prior values
type UpdateEventTypeRequest struct {
	Name     *string `json:"name"`
	Duration *int    `json:"duration"`
	Location *string `json:"location"`
	IsActive *bool   `json:"is_active"`
}

// ===================== Response DTOs =====================

// EventTypeResponse for event type details
type EventTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Duration  int       `json:"duration"`
	Location  string    `json:"location"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToEventTypeResponse maps entity to DTO
func ToEventTypeResponse(e *entity.EventType) *EventTypeResponse {
	return &EventTypeResponse{
		ID:        e.ID.String(),
		Name:      e.Name,
		Slug:      e.Slug,
		Duration:  e.DurationMinutes,
		Location:  e.Location,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
	}
}
