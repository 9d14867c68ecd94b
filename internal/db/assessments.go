package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/charlie2bored/shftrr/internal/assessment"
)

// GetLatestAssessment retrieves the user's most recent diagnostic
// assessment, nil when none was ever recorded.
func (db *DB) GetLatestAssessment(ctx context.Context, userID uuid.UUID) (*assessment.Record, error) {
	var r assessment.Record
	var skillsGaps, industryInterests, motivationFactors StringArray
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, career_satisfaction, burnout_level, risk_tolerance,
		   financial_readiness, timeline_preference, family_situation,
		   skills_gaps, industry_interests, motivation_factors,
		   created_at, updated_at
		 FROM user_assessments
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID,
	).Scan(&r.ID, &r.UserID, &r.CareerSatisfaction, &r.BurnoutLevel, &r.RiskTolerance,
		&r.FinancialReadiness, &r.TimelinePreference, &r.FamilySituation,
		&skillsGaps, &industryInterests, &motivationFactors,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}

	r.SkillsGaps = skillsGaps
	r.IndustryInterests = industryInterests
	r.MotivationFactors = motivationFactors
	return &r, nil
}

// SaveAssessment stores a new diagnostic assessment result.
func (db *DB) SaveAssessment(ctx context.Context, r *assessment.Record) (*assessment.Record, error) {
	saved := *r
	err := db.pool.QueryRow(ctx,
		`INSERT INTO user_assessments
		   (user_id, career_satisfaction, burnout_level, risk_tolerance,
		    financial_readiness, timeline_preference, family_situation,
		    skills_gaps, industry_interests, motivation_factors)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		r.UserID, r.CareerSatisfaction, r.BurnoutLevel, r.RiskTolerance,
		r.FinancialReadiness, r.TimelinePreference, r.FamilySituation,
		StringArray(r.SkillsGaps), StringArray(r.IndustryInterests),
		StringArray(r.MotivationFactors),
	).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}
	return &saved, nil
}
