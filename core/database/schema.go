package database

import (
	"context"

	"slotbook/core/logger"
)

// The unique constraints below are load-bearing: bookings may never share an
// (event_type_id, date, start_time) triple and availability holds at most one
// row per (event_type_id, day).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS event_types (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		duration_minutes INTEGER NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS availability (
		id BIGSERIAL PRIMARY KEY,
		event_type_id UUID NOT NULL,
		day TEXT NOT NULL,
		start_time TEXT,
		end_time TEXT,
		enabled BOOLEAN NOT NULL DEFAULT TRUE,
		UNIQUE (event_type_id, day)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		event_type_id UUID NOT NULL,
		invitee_name TEXT NOT NULL,
		invitee_email TEXT NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (event_type_id, date, start_time)
	)`,
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db IDatabase) error {
	for _, stmt := range schemaStatements {
		if err := db.ExecContext(ctx, stmt); err != nil {
			logger.Error("Database:EnsureSchema", "error", err)
			return err
		}
	}
	logger.Info("Database schema ready")
	return nil
}
