// Package types provides type definitions for structured data used throughout the shftrr system.
package types

// Employment status values accepted by the escape-plan input model.
const (
	EmploymentStatusEmployed     = "employed"
	EmploymentStatusUnemployed   = "unemployed"
	EmploymentStatusSelfEmployed = "self-employed"
	EmploymentStatusStudent      = "student"
)

// EducationBackground describes a user's formal education and credentials.
type EducationBackground struct {
	Degrees          []string `json:"degrees,omitempty"`
	Certifications   []string `json:"certifications,omitempty"`
	HighestEducation string   `json:"highestEducation,omitempty"`
}

// UserProfile describes the user's current employment situation.
// CurrentJobTitle and CurrentSalary are only meaningful when
// EmploymentStatus is "employed", but callers may omit them regardless
// of status; the model does not enforce the pairing.
type UserProfile struct {
	CurrentJobTitle  *string              `json:"currentJobTitle,omitempty"`
	CurrentSalary    *float64             `json:"currentSalary,omitempty" validate:"omitempty,gte=0"`
	YearsExperience  *float64             `json:"yearsExperience,omitempty" validate:"omitempty,gte=0"`
	EmploymentStatus string               `json:"employmentStatus" validate:"required,oneof=employed unemployed self-employed student"`
	Education        *EducationBackground `json:"education,omitempty"`
	DailyVents       []string             `json:"dailyVents,omitempty"`
}

// FinancialData holds the monthly cash-flow figures the plan is computed
// from. Savings is a pointer so that "never provided" stays distinguishable
// from an explicit zero; the default of 0 is applied only at arithmetic
// sites, never here.
type FinancialData struct {
	MonthlyExpenses *float64 `json:"monthlyExpenses" validate:"required,gte=0"`
	Debt            *float64 `json:"debt" validate:"required,gte=0"`
	Savings         *float64 `json:"savings,omitempty" validate:"omitempty,gte=0"`
	MonthlyIncome   *float64 `json:"monthlyIncome" validate:"required,gte=0"`
}

// Skills lists the user's self-reported capabilities.
type Skills struct {
	TechnicalSkills []string `json:"technicalSkills"`
	SoftSkills      []string `json:"softSkills"`
	Certifications  []string `json:"certifications,omitempty"`
}

// CareerGoals captures where the user wants to go. The whole block is
// optional; its absence triggers the field-selector recommendation branch.
type CareerGoals struct {
	DesiredField    string   `json:"desiredField,omitempty"`
	DesiredJobTitle string   `json:"desiredJobTitle,omitempty"`
	DesiredSalary   *float64 `json:"desiredSalary,omitempty" validate:"omitempty,gte=0"`
	CareerInterests []string `json:"careerInterests,omitempty"`
}

// EscapePlanInput is the complete payload the generation pipeline consumes.
type EscapePlanInput struct {
	UserProfile   UserProfile   `json:"userProfile"`
	FinancialData FinancialData `json:"financialData" validate:"required"`
	Skills        Skills        `json:"skills"`
	CareerGoals   *CareerGoals  `json:"careerGoals,omitempty"`
}
