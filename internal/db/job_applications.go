package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobApplicationColumns = `id, user_id, company, role, job_url, job_board,
	 status, applied_date, next_action_date, next_action, notes,
	 created_at, updated_at`

func scanJobApplication(row pgx.Row) (*JobApplication, error) {
	var a JobApplication
	err := row.Scan(&a.ID, &a.UserID, &a.Company, &a.Role, &a.JobURL, &a.JobBoard,
		&a.Status, &a.AppliedDate, &a.NextActionDate, &a.NextAction, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateJobApplication inserts a new tracked application for the user.
func (db *DB) CreateJobApplication(ctx context.Context, a *JobApplication) (*JobApplication, error) {
	saved, err := scanJobApplication(db.pool.QueryRow(ctx,
		`INSERT INTO job_applications
		   (user_id, company, role, job_url, job_board, status,
		    applied_date, next_action_date, next_action, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+jobApplicationColumns,
		a.UserID, a.Company, a.Role, a.JobURL, a.JobBoard, a.Status,
		a.AppliedDate, a.NextActionDate, a.NextAction, a.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create job application: %w", err)
	}
	return saved, nil
}

// ListJobApplications returns all of a user's applications, soonest next
// action first, then most recently updated.
func (db *DB) ListJobApplications(ctx context.Context, userID uuid.UUID) ([]JobApplication, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobApplicationColumns+`
		 FROM job_applications
		 WHERE user_id = $1
		 ORDER BY next_action_date ASC NULLS LAST, updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}
	defer rows.Close()

	applications := []JobApplication{}
	for rows.Next() {
		a, err := scanJobApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job application: %w", err)
		}
		applications = append(applications, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job applications: %w", err)
	}
	return applications, nil
}

// GetJobApplication retrieves one application, scoped to its owner.
// Returns nil when it does not exist or belongs to someone else.
func (db *DB) GetJobApplication(ctx context.Context, id, userID uuid.UUID) (*JobApplication, error) {
	a, err := scanJobApplication(db.pool.QueryRow(ctx,
		`SELECT `+jobApplicationColumns+`
		 FROM job_applications WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job application: %w", err)
	}
	return a, nil
}

// UpdateJobApplication replaces an application's fields, scoped to its
// owner. Returns nil when no owned row matched.
func (db *DB) UpdateJobApplication(ctx context.Context, a *JobApplication) (*JobApplication, error) {
	saved, err := scanJobApplication(db.pool.QueryRow(ctx,
		`UPDATE job_applications SET
		   company = $3, role = $4, job_url = $5, job_board = $6, status = $7,
		   applied_date = $8, next_action_date = $9, next_action = $10,
		   notes = $11, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+jobApplicationColumns,
		a.ID, a.UserID, a.Company, a.Role, a.JobURL, a.JobBoard, a.Status,
		a.AppliedDate, a.NextActionDate, a.NextAction, a.Notes,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job application: %w", err)
	}
	return saved, nil
}

// DeleteJobApplication removes an application, scoped to its owner.
// Reports whether a row was deleted.
func (db *DB) DeleteJobApplication(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM job_applications WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete job application: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountJobApplicationsByStatus aggregates the user's pipeline for the
// dashboard funnel view.
func (db *DB) CountJobApplicationsByStatus(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM job_applications
		 WHERE user_id = $1 GROUP BY status`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count job applications: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read status counts: %w", err)
	}
	return counts, nil
}
