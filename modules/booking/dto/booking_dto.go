package dto

import (
	"time"

	"slotbook/modules/booking/entity"
)

// ===================== Request DTOs =====================

// CreateBookingRequest for reserving a slot
type CreateBookingRequest struct {
	EventTypeID  string `json:"eventTypeId"`
	InviteeName  string `json:"inviteeName"`
	InviteeEmail string `json:"inviteeEmail"`
	Date         string `json:"date"`      // YYYY-MM-DD
	StartTime    string `json:"startTime"` // HH:MM
	EndTime      string `json:"endTime"`   // HH:MM
}

// RescheduleBookingRequest for moving an existing booking
type RescheduleBookingRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ===================== Response DTOs =====================

// BookingResponse for a single booking record
type BookingResponse struct {
	ID           string    `json:"id"`
	EventTypeID  string    `json:"eventTypeId"`
	InviteeName  string    `json:"inviteeName"`
	InviteeEmail string    `json:"inviteeEmail"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BookingWithEventResponse for the bookings overview feed
type BookingWithEventResponse struct {
	BookingResponse
	EventTypeName string `json:"event_type_name"`
	Location      string `json:"location"`
}

// EventBookingResponse for per-event booked ranges
type EventBookingResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ===================== Mapper Functions =====================

// ToBookingResponse maps entity to DTO
func ToBookingResponse(b *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID.String(),
		EventTypeID:  b.EventTypeID.String(),
		InviteeName:  b.InviteeName,
		InviteeEmail: b.InviteeEmail,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		CreatedAt:    b.CreatedAt,
	}
}

// ToBookingWithEventResponse maps the joined row to DTO
func ToBookingWithEventResponse(b *entity.BookingWithEvent) *BookingWithEventResponse {
	return &BookingWithEventResponse{
		BookingResponse: *ToBookingResponse(&b.Booking),
		EventTypeName:   b.EventTypeName,
		Location:        b.Location,
	}
}
