package service

import (
	"context"
	"strings"
	"time"

	"slotbook/core/constants"
	"slotbook/core/errors"
	"slotbook/core/logger"
	"slotbook/modules/booking/dto"
	"slotbook/modules/booking/entity"
	"slotbook/modules/booking/repository"

	"github.com/google/uuid"
)

// BookingService guards slot reservations: every create and reschedule is
// checked against existing bookings, and the storage unique constraint backs
// the check when requests race.
type BookingService struct {
	repo repository.BookingRepositoryInterface
}

// BookingServiceInterface defines the service contract
type BookingServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, *errors.AppError)
	Reschedule(ctx context.Context, id uuid.UUID, req *dto.RescheduleBookingRequest) (*dto.BookingResponse, *errors.AppError)
	Cancel(ctx context.Context, id uuid.UUID) *errors.AppError
	ListAll(ctx context.Context) ([]dto.BookingWithEventResponse, *errors.AppError)
	ListByEventType(ctx context.Context, eventTypeID uuid.UUID) ([]dto.EventBookingResponse, *errors.AppError)
}

// NewBookingService creates a new booking service
func NewBookingService(repo repository.BookingRepositoryInterface) BookingServiceInterface {
	return &BookingService{repo: repo}
}

// Create reserves a slot for an invitee. Returns a conflict error when the
// (event, date, start) triple is already taken.
func (s *BookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, *errors.AppError) {
	if strings.TrimSpace(req.EventTypeID) == "" ||
		strings.TrimSpace(req.InviteeName) == "" ||
		strings.TrimSpace(req.InviteeEmail) == "" ||
		req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Missing required fields", nil)
	}

	eventTypeID, err := uuid.Parse(req.EventTypeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event type ID", err)
	}
	if appErr := validateSchedule(req.Date, req.StartTime, req.EndTime); appErr != nil {
		return nil, appErr
	}

	conflict, err := s.repo.HasConflict(ctx, eventTypeID, req.Date, req.StartTime, nil)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check slot availability", err)
	}
	if conflict {
		return nil, errors.NewAppError(errors.ErrConflict, "This time slot is already booked", nil)
	}

	booking := &entity.Booking{
		ID:           uuid.New(),
		EventTypeID:  eventTypeID,
		InviteeName:  req.InviteeName,
		InviteeEmail: req.InviteeEmail,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}

	created, err := s.repo.Create(ctx, booking)
	if err == repository.ErrDuplicateSlot {
		// Lost the race between check and insert.
		return nil, errors.NewAppError(errors.ErrConflict, "This time slot is already booked", err)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create booking", err)
	}

	logger.Info("BookingService:Create",
		"booking_id", created.ID.String(),
		"event_type_id", eventTypeID.String(),
		"date", created.Date,
		"start_time", created.StartTime,
	)
	return dto.ToBookingResponse(created), nil
}

// Reschedule moves a booking to a new date/time. The booking's own slot is
// excluded from the conflict check, so rebooking the same slot succeeds.
func (s *BookingService) Reschedule(ctx context.Context, id uuid.UUID, req *dto.RescheduleBookingRequest) (*dto.BookingResponse, *errors.AppError) {
	if req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Missing required fields", nil)
	}
	if appErr := validateSchedule(req.Date, req.StartTime, req.EndTime); appErr != nil {
		return nil, appErr
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get booking", err)
	}
	if booking == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Booking not found", nil)
	}

	conflict, err := s.repo.HasConflict(ctx, booking.EventTypeID, req.Date, req.StartTime, &id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check slot availability", err)
	}
	if conflict {
		return nil, errors.NewAppError(errors.ErrConflict, "This time slot is already booked", nil)
	}

	err = s.repo.UpdateSchedule(ctx, id, req.Date, req.StartTime, req.EndTime)
	if err == repository.ErrDuplicateSlot {
		return nil, errors.NewAppError(errors.ErrConflict, "This time slot is already booked", err)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to reschedule booking", err)
	}

	booking.Date = req.Date
	booking.StartTime = req.StartTime
	booking.EndTime = req.EndTime

	logger.Info("BookingService:Reschedule",
		"booking_id", id.String(),
		"date", req.Date,
		"start_time", req.StartTime,
	)
	return dto.ToBookingResponse(booking), nil
}

// Cancel permanently removes a booking, freeing its slot.
func (s *BookingService) Cancel(ctx context.Context, id uuid.UUID) *errors.AppError {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get booking", err)
	}
	if booking == nil {
		return errors.NewAppError(errors.ErrNotFound, "Booking not found", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to cancel booking", err)
	}

	logger.Info("BookingService:Cancel", "booking_id", id.String())
	return nil
}

// ListAll returns every booking with event display fields, newest first
func (s *BookingService) ListAll(ctx context.Context) ([]dto.BookingWithEventResponse, *errors.AppError) {
	bookings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list bookings", err)
	}

	result := make([]dto.BookingWithEventResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, *dto.ToBookingWithEventResponse(&bookings[i]))
	}
	return result, nil
}

// ListByEventType returns the booked ranges for one event. Unknown event IDs
// yield an empty list.
func (s *BookingService) ListByEventType(ctx context.Context, eventTypeID uuid.UUID) ([]dto.EventBookingResponse, *errors.AppError) {
	bookings, err := s.repo.ListByEventType(ctx, eventTypeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list bookings", err)
	}

	result := make([]dto.EventBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, dto.EventBookingResponse{
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	}
	return result, nil
}

func validateSchedule(date, startTime, endTime string) *errors.AppError {
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "Invalid date, expected YYYY-MM-DD", err)
	}
	if _, err := time.Parse(constants.TimeLayout, startTime); err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "Invalid start time, expected HH:MM", err)
	}
	if _, err := time.Parse(constants.TimeLayout, endTime); err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "Invalid end time, expected HH:MM", err)
	}
	return nil
}
