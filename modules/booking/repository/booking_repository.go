package repository

import (
	"context"
	"database/sql"
	"errors"

	"slotbook/core/database"
	"slotbook/core/logger"
	"slotbook/modules/booking/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrDuplicateSlot reports that the (event, date, start) triple is already
// taken. It surfaces from the unique constraint, which is the authoritative
// guard when two requests race past the pre-check.
var ErrDuplicateSlot = errors.New("slot already booked")

// BookingRepository handles booking database operations
type BookingRepository struct {
	DB database.IDatabase
}

// NewBookingRepository creates a new repository instance
func NewBookingRepository(db database.IDatabase) *BookingRepository {
	return &BookingRepository{DB: db}
}

// BookingRepositoryInterface defines the repository contract
type BookingRepositoryInterface interface {
	Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	UpdateSchedule(ctx context.Context, id uuid.UUID, date, startTime, endTime string) error
	Delete(ctx context.Context, id uuid.UUID) error
	HasConflict(ctx context.Context, eventTypeID uuid.UUID, date, startTime string, excludeID *uuid.UUID) (bool, error)
	ListStartTimes(ctx context.Context, eventTypeID uuid.UUID, date string) ([]string, error)
	ListByEventType(ctx context.Context, eventTypeID uuid.UUID) ([]entity.Booking, error)
	ListAll(ctx context.Context) ([]entity.BookingWithEvent, error)
}

func (r *BookingRepository) Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	query := `
		INSERT INTO bookings (id, event_type_id, invitee_name, invitee_email, date, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, event_type_id, invitee_name, invitee_email, date, start_time, end_time, created_at
	`

	var created entity.Booking
	err := r.DB.GetContext(ctx, &created, query,
		booking.ID, booking.EventTypeID, booking.InviteeName, booking.InviteeEmail,
		booking.Date, booking.StartTime, booking.EndTime)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		logger.Error("BookingRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, event_type_id, invitee_name, invitee_email, date, start_time, end_time, created_at
		FROM bookings WHERE id = $1
	`

	var booking entity.Booking
	err := r.DB.GetContext(ctx, &booking, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BookingRepository:GetByID", err)
		return nil, err
	}

	return &booking, nil
}

func (r *BookingRepository) UpdateSchedule(ctx context.Context, id uuid.UUID, date, startTime, endTime string) error {
	query := `
		UPDATE bookings
		SET date = $2, start_time = $3, end_time = $4
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query, id, date, startTime, endTime)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlot
		}
		logger.Error("BookingRepository:UpdateSchedule", err)
		return err
	}

	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("BookingRepository:Delete", err)
		return err
	}
	return nil
}

// HasConflict performs the point lookup for an occupied (event, date, start)
// triple, optionally excluding the booking being rescheduled.
func (r *BookingRepository) HasConflict(ctx context.Context, eventTypeID uuid.UUID, date, startTime string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	var err error

	if excludeID != nil {
		query := `
			SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE event_type_id = $1 AND date = $2 AND start_time = $3 AND id != $4
			)
		`
		err = r.DB.GetContext(ctx, &exists, query, eventTypeID, date, startTime, *excludeID)
	} else {
		query := `
			SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE event_type_id = $1 AND date = $2 AND start_time = $3
			)
		`
		err = r.DB.GetContext(ctx, &exists, query, eventTypeID, date, startTime)
	}

	if err != nil {
		logger.Error("BookingRepository:HasConflict", err)
		return false, err
	}
	return exists, nil
}

func (r *BookingRepository) ListStartTimes(ctx context.Context, eventTypeID uuid.UUID, date string) ([]string, error) {
	query := `
		SELECT start_time FROM bookings
		WHERE event_type_id = $1 AND date = $2
		ORDER BY start_time
	`

	var starts []string
	err := r.DB.SelectContext(ctx, &starts, query, eventTypeID, date)
	if err != nil {
		logger.Error("BookingRepository:ListStartTimes", err)
		return nil, err
	}
	return starts, nil
}

func (r *BookingRepository) ListByEventType(ctx context.Context, eventTypeID uuid.UUID) ([]entity.Booking, error) {
	query := `
		SELECT id, event_type_id, invitee_name, invitee_email, date, start_time, end_time, created_at
		FROM bookings
		WHERE event_type_id = $1
		ORDER BY date, start_time
	`

	var bookings []entity.Booking
	err := r.DB.SelectContext(ctx, &bookings, query, eventTypeID)
	if err != nil {
		logger.Error("BookingRepository:ListByEventType", err)
		return nil, err
	}
	return bookings, nil
}

// ListAll returns every booking with its event's display fields. Left join so
// bookings orphaned by an event delete still appear, with empty event fields.
func (r *BookingRepository) ListAll(ctx context.Context) ([]entity.BookingWithEvent, error) {
	query := `
		SELECT b.id, b.event_type_id, b.invitee_name, b.invitee_email,
		       b.date, b.start_time, b.end_time, b.created_at,
		       COALESCE(e.name, '') AS event_type_name,
		       COALESCE(e.location, '') AS location
		FROM bookings b
		LEFT JOIN event_types e ON b.event_type_id = e.id
		ORDER BY b.date DESC, b.start_time DESC
	`

	var bookings []entity.BookingWithEvent
	err := r.DB.SelectContext(ctx, &bookings, query)
	if err != nil {
		logger.Error("BookingRepository:ListAll", err)
		return nil, err
	}
	return bookings, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
