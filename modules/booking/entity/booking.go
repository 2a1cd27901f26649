package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a confirmed reservation of one slot by an invitee. Date is a bare
// "YYYY-MM-DD" civil date; times are "HH:MM" wall clock.
type Booking struct {
	ID           uuid.UUID `db:"id" json:"id"`
	EventTypeID  uuid.UUID `db:"event_type_id" json:"event_type_id"`
	InviteeName  string    `db:"invitee_name" json:"invitee_name"`
	InviteeEmail string    `db:"invitee_email" json:"invitee_email"`
	Date         string    `db:"date" json:"date"`
	StartTime    string    `db:"start_time" json:"start_time"`
	EndTime      string    `db:"end_time" json:"end_time"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// BookingWithEvent joins a booking with its event type's display fields.
// Event fields are empty when the event type has been deleted.
type BookingWithEvent struct {
	Booking
	EventTypeName string `db:"event_type_name" json:"event_type_name"`
	Location      string `db:"location" json:"location"`
}
