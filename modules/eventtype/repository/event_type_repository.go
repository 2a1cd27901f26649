package repository

import (
	"context"
	"database/sql"
	"errors"

	"slotbook/core/database"
	"slotbook/core/logger"
	availentity "slotbook/modules/availability/entity"
	"slotbook/modules/eventtype/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrDuplicateSlug reports a slug uniqueness violation on insert or update.
var ErrDuplicateSlug = errors.New("slug already exists")

// EventTypeRepository handles event type database operations
type EventTypeRepository struct {
	DB database.IDatabase
}

// NewEventTypeRepository creates a new repository instance
func NewEventTypeRepository(db database.IDatabase) *EventTypeRepository {
	return &EventTypeRepository{DB: db}
}

// EventTypeRepositoryInterface defines the repository contract
type EventTypeRepositoryInterface interface {
	// Create inserts the event type and its weekly seed in one transaction,
	// so readers never observe an event without a template.
	Create(ctx context.Context, eventType *entity.EventType, seed []availentity.AvailabilityEntry) (*entity.EventType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EventType, error)
	GetBySlug(ctx context.Context, slug string) (*entity.EventType, error)
	List(ctx context.Context) ([]entity.EventType, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, eventType *entity.EventType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func (r *EventTypeRepository) Create(ctx context.Context, eventType *entity.EventType, seed []availentity.AvailabilityEntry) (*entity.EventType, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("EventTypeRepository:Create:Begin", err)
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO event_types (id, name, slug, duration_minutes, location, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, slug, duration_minutes, location, is_active, created_at
	`

	var created entity.EventType
	err = tx.GetContext(ctx, &created, query,
		eventType.ID, eventType.Name, eventType.Slug,
		eventType.DurationMinutes, eventType.Location, eventType.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		logger.Error("EventTypeRepository:Create", err)
		return nil, err
	}

	seedQuery := `
		INSERT INTO availability (event_type_id, day, start_time, end_time, enabled)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, entry := range seed {
		if _, err := tx.ExecContext(ctx, seedQuery,
			created.ID, entry.Day, entry.StartTime, entry.EndTime, entry.Enabled); err != nil {
			logger.Error("EventTypeRepository:Create:Seed", err)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("EventTypeRepository:Create:Commit", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.EventType, error) {
	query := `
		SELECT id, name, slug, duration_minutes, location, is_active, created_at
		FROM event_types WHERE id = $1
	`

	var eventType entity.EventType
	err := r.DB.GetContext(ctx, &eventType, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventTypeRepository:GetByID", err)
		return nil, err
	}

	return &eventType, nil
}

func (r *EventTypeRepository) GetBySlug(ctx context.Context, slug string) (*entity.EventType, error) {
	query := `
		SELECT id, name, slug, duration_minutes, location, is_active, created_at
		FROM event_types WHERE slug = $1 AND is_active = TRUE
	`

	var eventType entity.EventType
	err := r.DB.GetContext(ctx, &eventType, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventTypeRepository:GetBySlug", err)
		return nil, err
	}

	return &eventType, nil
}

func (r *EventTypeRepository) List(ctx context.Context) ([]entity.EventType, error) {
	query := `
		SELECT id, name, slug, duration_minutes, location, is_active, created_at
		FROM event_types
		ORDER BY created_at DESC
	`

	var eventTypes []entity.EventType
	err := r.DB.SelectContext(ctx, &eventTypes, query)
	if err != nil {
		logger.Error("EventTypeRepository:List", err)
		return nil, err
	}

	return eventTypes, nil
}

func (r *EventTypeRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM event_types WHERE slug = $1)`
	err := r.DB.GetContext(ctx, &exists, query, slug)
	if err != nil {
		logger.Error("EventTypeRepository:SlugExists", err)
		return false, err
	}
	return exists, nil
}

func (r *EventTypeRepository) Update(ctx context.Context, eventType *entity.EventType) error {
	query := `
		UPDATE event_types
		SET name = $2, slug = $3, duration_minutes = $4, location = $5, is_active = $6
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		eventType.ID, eventType.Name, eventType.Slug,
		eventType.DurationMinutes, eventType.Location, eventType.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlug
		}
		logger.Error("EventTypeRepository:Update", err)
		return err
	}

	return nil
}

// Delete removes the event type only. Availability and booking rows are left
// in place; readers treat them as absent data.
func (r *EventTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM event_types WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("EventTypeRepository:Delete", err)
		return err
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
