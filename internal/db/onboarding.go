package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UpsertOnboarding saves a user's intake answers, replacing any previous
// submission, and marks the flow completed.
func (db *DB) UpsertOnboarding(ctx context.Context, o *Onboarding) (*Onboarding, error) {
	var saved Onboarding
	err := db.pool.QueryRow(ctx,
		`INSERT INTO user_onboarding
		   (user_id, years_experience, industry, current_role, biggest_stressor,
		    top_constraint, career_goals, preferred_work_style, skill_level,
		    learning_style, completed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE)
		 ON CONFLICT (user_id) DO UPDATE SET
		   years_experience = $2, industry = $3, current_role = $4,
		   biggest_stressor = $5, top_constraint = $6, career_goals = $7,
		   preferred_work_style = $8, skill_level = $9, learning_style = $10,
		   completed = TRUE, updated_at = NOW()
		 RETURNING user_id, years_experience, industry, current_role,
		   biggest_stressor, top_constraint, career_goals, preferred_work_style,
		   skill_level, learning_style, completed, created_at, updated_at`,
		o.UserID, o.YearsExperience, o.Industry, o.CurrentRole, o.BiggestStressor,
		o.TopConstraint, o.CareerGoals, o.PreferredWorkStyle, o.SkillLevel,
		o.LearningStyle,
	).Scan(&saved.UserID, &saved.YearsExperience, &saved.Industry, &saved.CurrentRole,
		&saved.BiggestStressor, &saved.TopConstraint, &saved.CareerGoals,
		&saved.PreferredWorkStyle, &saved.SkillLevel, &saved.LearningStyle,
		&saved.Completed, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save onboarding: %w", err)
	}
	return &saved, nil
}

// GetOnboarding retrieves a user's onboarding record, nil when the user
// has not completed the flow.
func (db *DB) GetOnboarding(ctx context.Context, userID uuid.UUID) (*Onboarding, error) {
	var o Onboarding
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, years_experience, industry, current_role,
		   biggest_stressor, top_constraint, career_goals, preferred_work_style,
		   skill_level, learning_style, completed, created_at, updated_at
		 FROM user_onboarding WHERE user_id = $1`,
		userID,
	).Scan(&o.UserID, &o.YearsExperience, &o.Industry, &o.CurrentRole,
		&o.BiggestStressor, &o.TopConstraint, &o.CareerGoals,
		&o.PreferredWorkStyle, &o.SkillLevel, &o.LearningStyle,
		&o.Completed, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get onboarding: %w", err)
	}
	return &o, nil
}
