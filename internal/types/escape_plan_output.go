package types

// Burnout and financial status levels used across the escape plan.
const (
	BurnoutLow      = "Low"
	BurnoutMedium   = "Medium"
	BurnoutHigh     = "High"
	BurnoutCritical = "Critical"

	RunwayCritical = "Critical"
	RunwayLimited  = "Limited"
	RunwayModerate = "Moderate"
	RunwayStrong   = "Strong"
)

// BurnoutRisk is a 0-100 heuristic estimate of occupational stress.
type BurnoutRisk struct {
	Score   float64  `json:"score"`
	Level   string   `json:"level"`
	Factors []string `json:"factors"`
}

// Motivation is the encouragement block opening every plan.
type Motivation struct {
	CurrentDrive   string `json:"currentDrive"`
	Inspiration    string `json:"inspiration"`
	Accountability string `json:"accountability"`
}

// FinancialRunway reports how many months current savings cover expenses.
type FinancialRunway struct {
	Months         float64 `json:"months"`
	Status         string  `json:"status"`
	Recommendation string  `json:"recommendation"`
}

// EmergencyFund is the recommended safety-net target.
type EmergencyFund struct {
	RecommendedAmount float64  `json:"recommendedAmount"`
	Timeframe         string   `json:"timeframe"`
	Calculation       string   `json:"calculation"`
	Tips              []string `json:"tips"`
}

// BudgetRecommendation splits monthly expenses into category targets.
type BudgetRecommendation struct {
	MonthlyIncome       float64            `json:"monthlyIncome"`
	RecommendedExpenses map[string]float64 `json:"recommendedExpenses"`
	SavingsTarget       float64            `json:"savingsTarget"`
	DebtReduction       string             `json:"debtReduction,omitempty"`
	Rationale           string             `json:"rationale"`
}

// CareerPath describes one candidate transition target with a 0-100 fit score.
type CareerPath struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SalaryRange     string   `json:"salaryRange"`
	SkillsRequired  []string `json:"skillsRequired"`
	TimeToEntry     string   `json:"timeToEntry"`
	GrowthPotential string   `json:"growthPotential"`
	FitScore        float64  `json:"fitScore"`
}

// CareerPaths groups the primary recommendation with up to five alternatives.
type CareerPaths struct {
	Primary      CareerPath   `json:"primary"`
	Alternatives []CareerPath `json:"alternatives"`
}

// CertificationRecommendation is a credential worth pursuing, with a
// 0-100 relevance rating.
type CertificationRecommendation struct {
	Name      string  `json:"name"`
	Provider  string  `json:"provider"`
	Cost      string  `json:"cost"`
	Duration  string  `json:"duration"`
	Value     string  `json:"value"`
	Relevance float64 `json:"relevance"`
}

// FieldSelector is produced only when the user has not chosen a target field.
type FieldSelector struct {
	RecommendedFields []string `json:"recommendedFields"`
	Reasoning         string   `json:"reasoning"`
	NextSteps         []string `json:"nextSteps"`
}

// RoadmapAction is a concrete to-do within a phase, broken into ordered steps.
type RoadmapAction struct {
	Description   string   `json:"description"`
	SpecificSteps []string `json:"specificSteps"`
	TimeEstimate  string   `json:"timeEstimate"`
	Tools         []string `json:"tools,omitempty"`
}

// RoadmapMilestone is a measurable checkpoint with its celebration message.
type RoadmapMilestone struct {
	Description string `json:"description"`
	Celebration string `json:"celebration"`
	Measurable  string `json:"measurable"`
}

// CourageBoost pairs a named fear with its counter-affirmation and an action.
type CourageBoost struct {
	Fear        string `json:"fear"`
	Affirmation string `json:"affirmation"`
	Action      string `json:"action"`
}

// InteractiveElement describes a UI widget the plan asks the client to render.
type InteractiveElement struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Frequency string `json:"frequency,omitempty"`
}

// RoadmapPhase is one of the three plan horizons (6 months, 1 year, 2 years).
type RoadmapPhase struct {
	Title               string               `json:"title"`
	Duration            string               `json:"duration"`
	Introduction        string               `json:"introduction"`
	Goals               []string             `json:"goals"`
	Actions             []RoadmapAction      `json:"actions"`
	Milestones          []RoadmapMilestone   `json:"milestones"`
	Risks               []string             `json:"risks,omitempty"`
	CourageBoosts       []CourageBoost       `json:"courageBoosts,omitempty"`
	Contingencies       []string             `json:"contingencies,omitempty"`
	InteractiveElements []InteractiveElement `json:"interactiveElements,omitempty"`
	WeeklyCheckIns      []string             `json:"weeklyCheckIns,omitempty"`
}

// Roadmap holds the three fixed phases of the transition plan.
type Roadmap struct {
	Phase1 RoadmapPhase `json:"phase1"`
	Phase2 RoadmapPhase `json:"phase2"`
	Phase3 RoadmapPhase `json:"phase3"`
}

// CelebrationPoint defines when and how to celebrate progress.
type CelebrationPoint struct {
	Trigger string `json:"trigger"`
	Message string `json:"message"`
	Reward  string `json:"reward"`
}

// PhaseProgress tracks per-phase completion percentages.
type PhaseProgress struct {
	Phase1 float64 `json:"phase1"`
	Phase2 float64 `json:"phase2"`
	Phase3 float64 `json:"phase3"`
}

// ProgressTracking holds the gamified completion state of a plan.
type ProgressTracking struct {
	OverallCompletion float64       `json:"overallCompletion"`
	PhaseProgress     PhaseProgress `json:"phaseProgress"`
}

// EscapePlanOutput is the complete structured career-transition plan
// returned to the caller, whether AI-generated or computed by the
// deterministic fallback.
type EscapePlanOutput struct {
	BurnoutRisk          BurnoutRisk                   `json:"burnoutRisk"`
	Motivation           Motivation                    `json:"motivation"`
	FinancialRunway      FinancialRunway               `json:"financialRunway"`
	EmergencyFund        EmergencyFund                 `json:"emergencyFund"`
	BudgetRecommendation BudgetRecommendation          `json:"budgetRecommendation"`
	CareerPaths          CareerPaths                   `json:"careerPaths"`
	SkillsNeeded         []string                      `json:"skillsNeeded"`
	Certifications       []CertificationRecommendation `json:"certifications"`
	FieldSelector        *FieldSelector                `json:"fieldSelector,omitempty"`
	Roadmap              Roadmap                       `json:"roadmap"`
	CelebrationPoints    []CelebrationPoint            `json:"celebrationPoints"`
	DailyMotivation      []string                      `json:"dailyMotivationPrompts"`
	ProgressTracking     ProgressTracking              `json:"progressTracking"`
	GeneratedAt          string                        `json:"generatedAt"`
}
