package service

import (
	"context"
	"strings"

	"slotbook/core/errors"
	"slotbook/core/logger"
	"slotbook/core/utils"
	availentity "slotbook/modules/availability/entity"
	"slotbook/modules/eventtype/dto"
	"slotbook/modules/eventtype/entity"
	"slotbook/modules/eventtype/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// EventTypeService handles event type business logic
type EventTypeService struct {
	repo repository.EventTypeRepositoryInterface
}

// EventTypeServiceInterface defines the service contract
type EventTypeServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateEventTypeRequest) (*dto.EventTypeResponse, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.EventTypeResponse, *errors.AppError)
	GetBySlug(ctx context.Context, slugName string) (*dto.EventTypeResponse, *errors.AppError)
	List(ctx context.Context) ([]dto.EventTypeResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEventTypeRequest) (*dto.EventTypeResponse, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

// NewEventTypeService creates a new event type service
func NewEventTypeService(repo repository.EventTypeRepositoryInterface) EventTypeServiceInterface {
	return &EventTypeService{repo: repo}
}

// Create creates a new event type and seeds its default weekly availability
// (Mon-Fri 09:00-17:00) in the same transaction.
func (s *EventTypeService) Create(ctx context.Context, req *dto.CreateEventTypeRequest) (*dto.EventTypeResponse, *errors.AppError) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name is required", nil)
	}
	if req.Duration <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Duration must be a positive number of minutes", nil)
	}

	slugName, appErr := s.deriveSlug(ctx, req.Name)
	if appErr != nil {
		return nil, appErr
	}

	eventType := &entity.EventType{
		ID:              uuid.New(),
		Name:            req.Name,
		Slug:            slugName,
		DurationMinutes: req.Duration,
		Location:        req.Location,
		IsActive:        true,
	}

	created, err := s.repo.Create(ctx, eventType, availentity.DefaultSeed(eventType.ID))
	if err == repository.ErrDuplicateSlug {
		return nil, errors.NewAppError(errors.ErrConflict, "An event with this name already exists", err)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	logger.Info("EventTypeService:Create", "event_type_id", created.ID.String(), "slug", created.Slug)
	return dto.ToEventTypeResponse(created), nil
}

// GetByID retrieves an event type by ID
func (s *EventTypeService) GetByID(ctx context.Context, id uuid.UUID) (*dto.EventTypeResponse, *errors.AppError) {
	eventType, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if eventType == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return dto.ToEventTypeResponse(eventType), nil
}

// GetBySlug retrieves an active event type by its public slug
func (s *EventTypeService) GetBySlug(ctx context.Context, slugName string) (*dto.EventTypeResponse, *errors.AppError) {
	eventType, err := s.repo.GetBySlug(ctx, slugName)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if eventType == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return dto.ToEventTypeResponse(eventType), nil
}

// List retrieves all event types, newest first
func (s *EventTypeService) List(ctx context.Context) ([]dto.EventTypeResponse, *errors.AppError) {
	eventTypes, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list events", err)
	}

	result := make([]dto.EventTypeResponse, 0, len(eventTypes))
	for i := range eventTypes {
		result = append(result, *dto.ToEventTypeResponse(&eventTypes[i]))
	}
	return result, nil
}

// Update applies a partial update; unset fields keep their prior values.
// Renaming re-derives the slug.
func (s *EventTypeService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEventTypeRequest) (*dto.EventTypeResponse, *errors.AppError) {
	eventType, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if eventType == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Name cannot be empty", nil)
		}
		if *req.Name != eventType.Name {
			slugName, appErr := s.deriveSlug(ctx, *req.Name)
			if appErr != nil {
				return nil, appErr
			}
			eventType.Slug = slugName
		}
		eventType.Name = *req.Name
	}
	if req.Duration != nil {
		if *req.Duration <= 0 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Duration must be a positive number of minutes", nil)
		}
		eventType.DurationMinutes = *req.Duration
	}
	if req.Location != nil {
		eventType.Location = *req.Location
	}
	if req.IsActive != nil {
		eventType.IsActive = *req.IsActive
	}

	err = s.repo.Update(ctx, eventType)
	if err == repository.ErrDuplicateSlug {
		return nil, errors.NewAppError(errors.ErrConflict, "An event with this name already exists", err)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}

	return dto.ToEventTypeResponse(eventType), nil
}

// Delete permanently removes an event type
func (s *EventTypeService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	eventType, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if eventType == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}

	logger.Info("EventTypeService:Delete", "event_type_id", id.String())
	return nil
}

// deriveSlug lowercases the name into a hyphenated slug and appends a short
// random suffix when the plain slug is taken.
func (s *EventTypeService) deriveSlug(ctx context.Context, name string) (string, *errors.AppError) {
	base := slug.Make(name)
	if base == "" {
		return "", errors.NewAppError(errors.ErrInvalidInput, "Name must contain at least one alphanumeric character", nil)
	}

	exists, err := s.repo.SlugExists(ctx, base)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to check slug", err)
	}
	if !exists {
		return base, nil
	}
	return base + "-" + strings.ToLower(utils.GenerateID(6)), nil
}
