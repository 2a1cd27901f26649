package repository

import (
	"context"
	"database/sql"

	"slotbook/core/database"
	"slotbook/core/logger"
	"slotbook/modules/availability/entity"

	"github.com/google/uuid"
)

// AvailabilityRepository handles weekly template database operations
type AvailabilityRepository struct {
	DB database.IDatabase
}

// NewAvailabilityRepository creates a new repository instance
func NewAvailabilityRepository(db database.IDatabase) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

// AvailabilityRepositoryInterface defines the repository contract
type AvailabilityRepositoryInterface interface {
	GetByEventType(ctx context.Context, eventTypeID uuid.UUID) ([]entity.AvailabilityEntry, error)
	GetDay(ctx context.Context, eventTypeID uuid.UUID, day entity.Weekday) (*entity.AvailabilityEntry, error)
	CountByEventType(ctx context.Context, eventTypeID uuid.UUID) (int, error)
	// SaveSettings upserts all entries in one transaction; either every
	// weekday lands or none do.
	SaveSettings(ctx context.Context, eventTypeID uuid.UUID, entries []entity.AvailabilityEntry) error
	// Seed inserts entries for an event with no template yet, transactionally.
	Seed(ctx context.Context, eventTypeID uuid.UUID, entries []entity.AvailabilityEntry) error
}

func (r *AvailabilityRepository) GetByEventType(ctx context.Context, eventTypeID uuid.UUID) ([]entity.AvailabilityEntry, error) {
	query := `
		SELECT id, event_type_id, day, start_time, end_time, enabled
		FROM availability
		WHERE event_type_id = $1
	`

	var entries []entity.AvailabilityEntry
	err := r.DB.SelectContext(ctx, &entries, query, eventTypeID)
	if err != nil {
		logger.Error("AvailabilityRepository:GetByEventType", err)
		return nil, err
	}
	return entries, nil
}

func (r *AvailabilityRepository) GetDay(ctx context.Context, eventTypeID uuid.UUID, day entity.Weekday) (*entity.AvailabilityEntry, error) {
	query := `
		SELECT id, event_type_id, day, start_time, end_time, enabled
		FROM availability
		WHERE event_type_id = $1 AND day = $2
	`

	var entry entity.AvailabilityEntry
	err := r.DB.GetContext(ctx, &entry, query, eventTypeID, day)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AvailabilityRepository:GetDay", err)
		return nil, err
	}
	return &entry, nil
}

func (r *AvailabilityRepository) CountByEventType(ctx context.Context, eventTypeID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM availability WHERE event_type_id = $1`
	err := r.DB.GetContext(ctx, &count, query, eventTypeID)
	if err != nil {
		logger.Error("AvailabilityRepository:CountByEventType", err)
		return 0, err
	}
	return count, nil
}

func (r *AvailabilityRepository) SaveSettings(ctx context.Context, eventTypeID uuid.UUID, entries []entity.AvailabilityEntry) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("AvailabilityRepository:SaveSettings:Begin", err)
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO availability (event_type_id, day, start_time, end_time, enabled)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_type_id, day)
		DO UPDATE SET start_time = $3, end_time = $4, enabled = $5
	`

	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, query,
			eventTypeID, entry.Day, entry.StartTime, entry.EndTime, entry.Enabled); err != nil {
			logger.Error("AvailabilityRepository:SaveSettings", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("AvailabilityRepository:SaveSettings:Commit", err)
		return err
	}
	return nil
}

func (r *AvailabilityRepository) Seed(ctx context.Context, eventTypeID uuid.UUID, entries []entity.AvailabilityEntry) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("AvailabilityRepository:Seed:Begin", err)
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO availability (event_type_id, day, start_time, end_time, enabled)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, query,
			eventTypeID, entry.Day, entry.StartTime, entry.EndTime, entry.Enabled); err != nil {
			logger.Error("AvailabilityRepository:Seed", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("AvailabilityRepository:Seed:Commit", err)
		return err
	}
	return nil
}
