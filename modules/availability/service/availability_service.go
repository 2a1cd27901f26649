package service

import (
	"context"

	"slotbook/core/constants"
	"slotbook/core/errors"
	"slotbook/core/logger"
	"slotbook/modules/availability/dto"
	"slotbook/modules/availability/entity"
	"slotbook/modules/availability/repository"
	bookingrepo "slotbook/modules/booking/repository"
	eventrepo "slotbook/modules/eventtype/repository"

	"github.com/google/uuid"
)

// AvailabilityService handles the weekly template and slot computation
type AvailabilityService struct {
	repo          repository.AvailabilityRepositoryInterface
	eventTypeRepo eventrepo.EventTypeRepositoryInterface
	bookingRepo   bookingrepo.BookingRepositoryInterface
	generator     *SlotGenerator
}

// AvailabilityServiceInterface defines the service contract
type AvailabilityServiceInterface interface {
	GetDaySlots(ctx context.Context, eventTypeID uuid.UUID, date string) (*dto.DaySlotsResponse, *errors.AppError)
	GetSettings(ctx context.Context, eventTypeID uuid.UUID) (*dto.SettingsResponse, *errors.AppError)
	SaveSettings(ctx context.Context, eventTypeID uuid.UUID, req *dto.SaveSettingsRequest) *errors.AppError
	SeedDefaults(ctx context.Context, eventTypeID uuid.UUID) (*dto.SeedResponse, *errors.AppError)
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	repo repository.AvailabilityRepositoryInterface,
	eventTypeRepo eventrepo.EventTypeRepositoryInterface,
	bookingRepo bookingrepo.BookingRepositoryInterface,
) AvailabilityServiceInterface {
	return &AvailabilityService{
		repo:          repo,
		eventTypeRepo: eventTypeRepo,
		bookingRepo:   bookingRepo,
		generator:     NewSlotGenerator(),
	}
}

// GetDaySlots computes the bookable start times for one event and date.
// A weekday with no enabled window reports Configured=false with empty slot
// lists, which callers must not confuse with a fully booked day.
func (s *AvailabilityService) GetDaySlots(ctx context.Context, eventTypeID uuid.UUID, date string) (*dto.DaySlotsResponse, *errors.AppError) {
	eventType, err := s.eventTypeRepo.GetByID(ctx, eventTypeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if eventType == nil || !eventType.IsActive {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	day, err := entity.WeekdayFromDate(date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date, expected YYYY-MM-DD", err)
	}

	entry, err := s.repo.GetDay(ctx, eventTypeID, day)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get availability", err)
	}

	window := entry.Window()
	if window == nil {
		return &dto.DaySlotsResponse{
			Date:           date,
			AvailableSlots: []string{},
			BlockedSlots:   []string{},
			Configured:     false,
		}, nil
	}

	bookedStarts, err := s.bookingRepo.ListStartTimes(ctx, eventTypeID, date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get bookings", err)
	}

	booked := make(map[string]struct{}, len(bookedStarts))
	for _, start := range bookedStarts {
		booked[start] = struct{}{}
	}

	return &dto.DaySlotsResponse{
		Date:           date,
		AvailableSlots: s.generator.Generate(eventType.DurationMinutes, window, booked),
		BlockedSlots:   bookedStarts,
		Configured:     true,
	}, nil
}

// GetSettings projects the stored template onto all seven weekdays for
// editing; weekdays without a row default to disabled with the standard
// 09:00-17:00 window prefilled.
func (s *AvailabilityService) GetSettings(ctx context.Context, eventTypeID uuid.UUID) (*dto.SettingsResponse, *errors.AppError) {
	eventType, err := s.eventTypeRepo.GetByID(ctx, eventTypeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if eventType == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	entries, err := s.repo.GetByEventType(ctx, eventTypeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get availability", err)
	}

	return ProjectSettings(entries), nil
}

// ProjectSettings reshapes stored entries into the full-week settings view.
// Pure: calling it twice on the same entries yields identical output.
func ProjectSettings(entries []entity.AvailabilityEntry) *dto.SettingsResponse {
	byDay := make(map[entity.Weekday]*entity.AvailabilityEntry, len(entries))
	for i := range entries {
		byDay[entries[i].Day] = &entries[i]
	}

	week := [7]dto.DaySetting{}
	for i, day := range entity.WeekOrder {
		setting := dto.DaySetting{
			Enabled:   false,
			StartTime: constants.DefaultDayStart,
			EndTime:   constants.DefaultDayEnd,
		}
		if entry, ok := byDay[day]; ok {
			setting.Enabled = entry.Enabled
			if entry.StartTime != nil {
				setting.StartTime = *entry.StartTime
			}
			if entry.EndTime != nil {
				setting.EndTime = *entry.EndTime
			}
		}
		week[i] = setting
	}

	return &dto.SettingsResponse{
		Days: dto.WeekSettings{
			Monday:    week[0],
			Tuesday:   week[1],
			Wednesday: week[2],
			Thursday:  week[3],
			Friday:    week[4],
			Saturday:  week[5],
			Sunday:    week[6],
		},
	}
}

// SaveSettings validates and upserts the submitted weekdays in one
// all-or-nothing write. Disabled days are stored without times.
func (s *AvailabilityService) SaveSettings(ctx context.Context, eventTypeID uuid.UUID, req *dto.SaveSettingsRequest) *errors.AppError {
	eventType, err := s.eventTypeRepo.GetByID(ctx, eventTypeID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if eventType == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if len(req.Days) == 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "No days submitted", nil)
	}

	entries := make([]entity.AvailabilityEntry, 0, len(req.Days))
	for name, input := range req.Days {
		day, ok := entity.ParseWeekday(name)
		if !ok {
			return errors.NewAppError(errors.ErrInvalidInput, "Unknown weekday: "+name, nil)
		}

		entry := entity.AvailabilityEntry{
			EventTypeID: eventTypeID,
			Day:         day,
			Enabled:     input.Enabled,
		}
		if input.Enabled {
			startMin, okStart := parseClock(input.Start)
			endMin, okEnd := parseClock(input.End)
			if !okStart || !okEnd {
				return errors.NewAppError(errors.ErrInvalidInput, "Invalid time for "+name+", expected HH:MM", nil)
			}
			if startMin >= endMin {
				return errors.NewAppError(errors.ErrInvalidInput, "Start must be before end for "+name, nil)
			}
			start, end := input.Start, input.End
			entry.StartTime = &start
			entry.EndTime = &end
		}
		entries = append(entries, entry)
	}

	if err := s.repo.SaveSettings(ctx, eventTypeID, entries); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to save availability", err)
	}

	logger.Info("AvailabilityService:SaveSettings",
		"event_type_id", eventTypeID.String(),
		"days", len(entries),
	)
	return nil
}

// SeedDefaults creates the Mon-Fri 09:00-17:00 template for an event that has
// none. It refuses to overwrite an existing template.
func (s *AvailabilityService) SeedDefaults(ctx context.Context, eventTypeID uuid.UUID) (*dto.SeedResponse, *errors.AppError) {
	eventType, err := s.eventTypeRepo.GetByID(ctx, eventTypeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if eventType == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	count, err := s.repo.CountByEventType(ctx, eventTypeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check availability", err)
	}
	if count > 0 {
		return nil, errors.NewAppError(errors.ErrAlreadyConfigured, "Availability already configured", nil)
	}

	if err := s.repo.Seed(ctx, eventTypeID, entity.DefaultSeed(eventTypeID)); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to seed availability", err)
	}

	logger.Info("AvailabilityService:SeedDefaults", "event_type_id", eventTypeID.String())
	return &dto.SeedResponse{EventTypeID: eventTypeID.String()}, nil
}
