package service

import (
	"context"
	"testing"

	"slotbook/core/errors"
	"slotbook/modules/booking/dto"
	"slotbook/modules/booking/entity"
	"slotbook/modules/booking/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo keeps bookings in memory and enforces the same
// (event, date, start) uniqueness the table constraint does.
type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking

	// forceDuplicateOnCreate simulates losing the race between the conflict
	// pre-check and the insert.
	forceDuplicateOnCreate bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) (*entity.Booking, error) {
	if f.forceDuplicateOnCreate {
		return nil, repository.ErrDuplicateSlot
	}
	for _, b := range f.bookings {
		if b.EventTypeID == booking.EventTypeID && b.Date == booking.Date && b.StartTime == booking.StartTime {
			return nil, repository.ErrDuplicateSlot
		}
	}
	stored := *booking
	f.bookings[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) UpdateSchedule(_ context.Context, id uuid.UUID, date, startTime, endTime string) error {
	booking, ok := f.bookings[id]
	if !ok {
		return nil
	}
	for _, b := range f.bookings {
		if b.ID != id && b.EventTypeID == booking.EventTypeID && b.Date == date && b.StartTime == startTime {
			return repository.ErrDuplicateSlot
		}
	}
	booking.Date = date
	booking.StartTime = startTime
	booking.EndTime = endTime
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) HasConflict(_ context.Context, eventTypeID uuid.UUID, date, startTime string, excludeID *uuid.UUID) (bool, error) {
	for _, b := range f.bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.EventTypeID == eventTypeID && b.Date == date && b.StartTime == startTime {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) ListStartTimes(_ context.Context, eventTypeID uuid.UUID, date string) ([]string, error) {
	var starts []string
	for _, b := range f.bookings {
		if b.EventTypeID == eventTypeID && b.Date == date {
			starts = append(starts, b.StartTime)
		}
	}
	return starts, nil
}

func (f *fakeBookingRepo) ListByEventType(_ context.Context, eventTypeID uuid.UUID) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range f.bookings {
		if b.EventTypeID == eventTypeID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAll(_ context.Context) ([]entity.BookingWithEvent, error) {
	var out []entity.BookingWithEvent
	for _, b := range f.bookings {
		out = append(out, entity.BookingWithEvent{Booking: *b})
	}
	return out, nil
}

func createRequest(eventTypeID uuid.UUID) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		EventTypeID:  eventTypeID.String(),
		InviteeName:  "Ada Lovelace",
		InviteeEmail: "ada@example.com",
		Date:         "2026-09-01",
		StartTime:    "09:00",
		EndTime:      "09:30",
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewBookingService(repo)

	result, appErr := svc.Create(context.Background(), createRequest(uuid.New()))
	require.Nil(t, appErr)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "Ada Lovelace", result.InviteeName)
	assert.Equal(t, "2026-09-01", result.Date)
	assert.Equal(t, "09:00", result.StartTime)
	assert.Len(t, repo.bookings, 1)
}

func TestCreate_MissingFields(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo())
	eventTypeID := uuid.New()

	mutations := []struct {
		name   string
		mutate func(*dto.CreateBookingRequest)
	}{
		{"no event type", func(r *dto.CreateBookingRequest) { r.EventTypeID = "" }},
		{"no name", func(r *dto.CreateBookingRequest) { r.InviteeName = "  " }},
		{"no email", func(r *dto.CreateBookingRequest) { r.InviteeEmail = "" }},
		{"no date", func(r *dto.CreateBookingRequest) { r.Date = "" }},
		{"no start", func(r *dto.CreateBookingRequest) { r.StartTime = "" }},
		{"no end", func(r *dto.CreateBookingRequest) { r.EndTime = "" }},
	}

	for _, tc := range mutations {
		t.Run(tc.name, func(t *testing.T) {
			req := createRequest(eventTypeID)
			tc.mutate(req)

			_, appErr := svc.Create(context.Background(), req)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
		})
	}
}

func TestCreate_InvalidFormats(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo())
	eventTypeID := uuid.New()

	mutations := []struct {
		name   string
		mutate func(*dto.CreateBookingRequest)
	}{
		{"bad event id", func(r *dto.CreateBookingRequest) { r.EventTypeID = "not-a-uuid" }},
		{"bad date", func(r *dto.CreateBookingRequest) { r.Date = "09/01/2026" }},
		{"bad start", func(r *dto.CreateBookingRequest) { r.StartTime = "9am" }},
		{"bad end", func(r *dto.CreateBookingRequest) { r.EndTime = "25:00" }},
	}

	for _, tc := range mutations {
		t.Run(tc.name, func(t *testing.T) {
			req := createRequest(eventTypeID)
			tc.mutate(req)

			_, appErr := svc.Create(context.Background(), req)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
		})
	}
}

func TestCreate_SlotTaken(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewBookingService(repo)
	eventTypeID := uuid.New()

	_, appErr := svc.Create(context.Background(), createRequest(eventTypeID))
	require.Nil(t, appErr)

	_, appErr = svc.Create(context.Background(), createRequest(eventTypeID))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
	assert.Len(t, repo.bookings, 1)
}

func TestCreate_SameSlotDifferentEvents(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo())

	_, appErr := svc.Create(context.Background(), createRequest(uuid.New()))
	require.Nil(t, appErr)

	// Uniqueness is scoped per event type.
	_, appErr = svc.Create(context.Background(), createRequest(uuid.New()))
	require.Nil(t, appErr)
}

func TestCreate_LostRace(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.forceDuplicateOnCreate = true
	svc := NewBookingService(repo)

	_, appErr := svc.Create(context.Background(), createRequest(uuid.New()))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
}

func TestReschedule(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewBookingService(repo)

	created, appErr := svc.Create(context.Background(), createRequest(uuid.New()))
	require.Nil(t, appErr)
	id := uuid.MustParse(created.ID)

	result, appErr := svc.Reschedule(context.Background(), id, &dto.RescheduleBookingRequest{
		Date: "2026-09-02", StartTime: "14:00", EndTime: "14:30",
	})
	require.Nil(t, appErr)

	assert.Equal(t, "2026-09-02", result.Date)
	assert.Equal(t, "14:00", result.StartTime)
	assert.Equal(t, "14:30", result.EndTime)
	assert.Equal(t, "2026-09-02", repo.bookings[id].Date)
}

func TestReschedule_OwnSlot(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo())

	created, appErr := svc.Create(context.Background(), createRequest(uuid.New()))
	require.Nil(t, appErr)

	// Resubmitting the current slot must not conflict with itself.
	result, appErr := svc.Reschedule(context.Background(), uuid.MustParse(created.ID), &dto.RescheduleBookingRequest{
		Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "09:00", result.StartTime)
}

func TestReschedule_SlotTaken(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo())
	eventTypeID := uuid.New()

	first, appErr := svc.Create(context.Background(), createRequest(eventTypeID))
	require.Nil(t, appErr)

	second := createRequest(eventTypeID)
	second.StartTime = "10:00"
	second.EndTime = "10:30"
	other, appErr := svc.Create(context.Background(), second)
	require.Nil(t, appErr)

	_, appErr = svc.Reschedule(context.Background(), uuid.MustParse(other.ID), &dto.RescheduleBookingRequest{
		Date: first.Date, StartTime: first.StartTime, EndTime: first.EndTime,
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
}

func TestReschedule_NotFound(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo())

	_, appErr := svc.Reschedule(context.Background(), uuid.New(), &dto.RescheduleBookingRequest{
		Date: "2026-09-02", StartTime: "14:00", EndTime: "14:30",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestCancel(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewBookingService(repo)

	created, appErr := svc.Create(context.Background(), createRequest(uuid.New()))
	require.Nil(t, appErr)
	id := uuid.MustParse(created.ID)

	require.Nil(t, svc.Cancel(context.Background(), id))
	assert.Empty(t, repo.bookings)

	// The slot is free again.
	_, appErr = svc.Create(context.Background(), createRequest(uuid.MustParse(created.EventTypeID)))
	require.Nil(t, appErr)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo())

	appErr := svc.Cancel(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestListByEventType_Empty(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo())

	result, appErr := svc.ListByEventType(context.Background(), uuid.New())
	require.Nil(t, appErr)
	assert.Equal(t, []dto.EventBookingResponse{}, result)
}

func TestListAll(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo())

	created, appErr := svc.Create(context.Background(), createRequest(uuid.New()))
	require.Nil(t, appErr)

	result, appErr := svc.ListAll(context.Background())
	require.Nil(t, appErr)
	require.Len(t, result, 1)
	assert.Equal(t, created.ID, result[0].ID)
}
