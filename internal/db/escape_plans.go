package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveEscapePlan persists a generation result with its provenance.
func (db *DB) SaveEscapePlan(ctx context.Context, userID uuid.UUID, source string, input, plan any) (*EscapePlanRecord, error) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan input: %w", err)
	}
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}

	rec := EscapePlanRecord{
		UserID: userID,
		Source: source,
		Input:  inputJSON,
		Plan:   planJSON,
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO escape_plans (user_id, source, input, plan)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		userID, source, inputJSON, planJSON,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save escape plan: %w", err)
	}
	return &rec, nil
}

// GetEscapePlan retrieves one stored plan, scoped to its owner.
func (db *DB) GetEscapePlan(ctx context.Context, id, userID uuid.UUID) (*EscapePlanRecord, error) {
	var rec EscapePlanRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, source, input, plan, created_at
		 FROM escape_plans WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&rec.ID, &rec.UserID, &rec.Source, &rec.Input, &rec.Plan, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get escape plan: %w", err)
	}
	return &rec, nil
}

// ListEscapePlans returns the user's stored plans, newest first. The plan
// body is included; callers wanting summaries can project what they need.
func (db *DB) ListEscapePlans(ctx context.Context, userID uuid.UUID) ([]EscapePlanRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, source, input, plan, created_at
		 FROM escape_plans
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list escape plans: %w", err)
	}
	defer rows.Close()

	records := []EscapePlanRecord{}
	for rows.Next() {
		var rec EscapePlanRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Source, &rec.Input, &rec.Plan, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan escape plan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read escape plans: %w", err)
	}
	return records, nil
}

// GetLatestEscapePlan returns the user's most recent plan, nil when the
// user has never generated one.
func (db *DB) GetLatestEscapePlan(ctx context.Context, userID uuid.UUID) (*EscapePlanRecord, error) {
	var rec EscapePlanRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, source, input, plan, created_at
		 FROM escape_plans
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID,
	).Scan(&rec.ID, &rec.UserID, &rec.Source, &rec.Input, &rec.Plan, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest escape plan: %w", err)
	}
	return &rec, nil
}
