package escapeplan

import (
	"fmt"
	"math"
	"time"

	"github.com/charlie2bored/shftrr/internal/types"
)

// Fallback computes a complete deterministic plan from the input alone.
// It is the guaranteed-delivery path when the model call fails, returns
// malformed JSON, or fails schema validation. All arithmetic is exact and
// every run over the same input produces the same plan except generatedAt.
func Fallback(in *types.EscapePlanInput, now time.Time) *types.EscapePlanOutput {
	monthlyBurn := floatOrZero(in.FinancialData.MonthlyExpenses)
	monthlyIncome := floatOrZero(in.FinancialData.MonthlyIncome)
	debt := floatOrZero(in.FinancialData.Debt)
	savings := floatOrZero(in.FinancialData.Savings)

	runwayMonths := 0.0
	if monthlyBurn > 0 {
		runwayMonths = math.Floor(savings / monthlyBurn)
	}

	burnoutScore := math.Min(float64(len(in.UserProfile.DailyVents))*15, 100)

	out := &types.EscapePlanOutput{
		BurnoutRisk: types.BurnoutRisk{
			Score:   burnoutScore,
			Level:   burnoutLevel(burnoutScore),
			Factors: burnoutFactors(in.UserProfile.DailyVents),
		},
		Motivation:           fallbackMotivation(),
		FinancialRunway:      financialRunway(runwayMonths),
		EmergencyFund:        emergencyFund(monthlyBurn, monthlyIncome, savings),
		BudgetRecommendation: budgetRecommendation(monthlyBurn, monthlyIncome, debt),
		CareerPaths: types.CareerPaths{
			Primary:      primaryCareerPath(in.CareerGoals),
			Alternatives: fallbackAlternativePaths(),
		},
		SkillsNeeded:      fallbackSkillsNeeded(),
		Certifications:    fallbackCertifications(),
		FieldSelector:     fieldSelector(in.CareerGoals),
		Roadmap:           fallbackRoadmap(monthlyBurn),
		CelebrationPoints: fallbackCelebrationPoints(),
		DailyMotivation:   fallbackDailyMotivation(),
		ProgressTracking:  types.ProgressTracking{},
		GeneratedAt:       now.UTC().Format(time.RFC3339),
	}
	return out
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func burnoutLevel(score float64) string {
	switch {
	case score < 25:
		return types.BurnoutLow
	case score < 50:
		return types.BurnoutMedium
	case score < 75:
		return types.BurnoutHigh
	default:
		return types.BurnoutCritical
	}
}

func burnoutFactors(vents []string) []string {
	if len(vents) == 0 {
		return []string{"Limited data available"}
	}
	if len(vents) > 3 {
		vents = vents[:3]
	}
	return append([]string(nil), vents...)
}

func financialRunway(months float64) types.FinancialRunway {
	status := types.RunwayStrong
	switch {
	case months < 3:
		status = types.RunwayCritical
	case months < 6:
		status = types.RunwayLimited
	case months < 12:
		status = types.RunwayModerate
	}

	recommendation := "Your financial position allows for strategic career exploration."
	if months < 6 {
		recommendation = "Focus on building emergency savings and reducing expenses before major career changes."
	}

	return types.FinancialRunway{
		Months:         months,
		Status:         status,
		Recommendation: recommendation,
	}
}

func emergencyFund(monthlyBurn, monthlyIncome, savings float64) types.EmergencyFund {
	target := monthlyBurn * 6

	// Months to hit the target at the current monthly surplus. Without
	// savings or without a surplus there is nothing to project from, so
	// report the one-year default instead of dividing by a non-positive
	// margin.
	timeframe := 12.0
	if margin := monthlyIncome - monthlyBurn; savings > 0 && margin > 0 {
		timeframe = math.Ceil((target - savings) / margin)
		if timeframe < 0 {
			timeframe = 0
		}
	}

	return types.EmergencyFund{
		RecommendedAmount: target,
		Timeframe:         trimFloat(timeframe) + " months",
		Calculation:       fmt.Sprintf("Based on %s monthly expenses × 6 months", trimFloat(monthlyBurn)),
		Tips: []string{
			"Cut non-essential expenses by 20%",
			"Increase income through side gigs",
			"Use windfalls (tax refunds, bonuses) to build savings",
			"Automate transfers to savings account",
		},
	}
}

func budgetRecommendation(monthlyBurn, monthlyIncome, debt float64) types.BudgetRecommendation {
	debtReduction := "No debt reduction needed"
	if debt > 0 {
		debtReduction = fmt.Sprintf("Focus on paying down $%s in high-interest debt first", trimFloat(debt))
	}

	return types.BudgetRecommendation{
		MonthlyIncome: monthlyIncome,
		RecommendedExpenses: map[string]float64{
			"Housing":        monthlyBurn * 0.28,
			"Food":           monthlyBurn * 0.12,
			"Transportation": monthlyBurn * 0.15,
			"Utilities":      monthlyBurn * 0.08,
			"Insurance":      monthlyBurn * 0.08,
			"Savings":        monthlyBurn * 0.20,
			"Entertainment":  monthlyBurn * 0.09,
		},
		SavingsTarget: monthlyBurn * 0.20,
		DebtReduction: debtReduction,
		Rationale:     "50/30/20 budget rule: 50% needs, 30% wants, 20% savings/debt",
	}
}

func primaryCareerPath(goals *types.CareerGoals) types.CareerPath {
	if goals == nil || goals.DesiredJobTitle == "" {
		return types.CareerPath{
			Title:           "Career Exploration Needed",
			Description:     "Based on your assessment, you should explore multiple career options.",
			SalaryRange:     "$60,000 - $120,000",
			SkillsRequired:  []string{"Adaptability", "Learning Agility", "Self-motivation"},
			TimeToEntry:     "3-6 months",
			GrowthPotential: "Medium",
			FitScore:        70,
		}
	}

	salaryRange := "$80,000 - $150,000"
	if goals.DesiredSalary != nil {
		salaryRange = fmt.Sprintf("$%s - $%s",
			formatUSD(*goals.DesiredSalary),
			formatUSD(*goals.DesiredSalary*1.2))
	}

	return types.CareerPath{
		Title:           goals.DesiredJobTitle,
		Description:     fmt.Sprintf("Transition path to %s based on your skills and interests.", goals.DesiredJobTitle),
		SalaryRange:     salaryRange,
		SkillsRequired:  []string{"Communication", "Problem Solving", "Technical Skills"},
		TimeToEntry:     "6-12 months",
		GrowthPotential: "High",
		FitScore:        85,
	}
}

func fieldSelector(goals *types.CareerGoals) *types.FieldSelector {
	if goals != nil && goals.DesiredField != "" {
		return nil
	}
	return &types.FieldSelector{
		RecommendedFields: []string{"Technology", "Healthcare", "Business Analysis", "Project Management", "Customer Success"},
		Reasoning:         "Based on your current skills and market demand for transferable skills",
		NextSteps: []string{
			"Take a career assessment quiz",
			"Research entry-level positions in each field",
			"Network with professionals in target industries",
			"Consider short courses or certifications",
		},
	}
}

func fallbackRoadmap(monthlyBurn float64) types.Roadmap {
	return types.Roadmap{
		Phase1: fallbackPhase1(monthlyBurn),
		Phase2: fallbackPhase2(),
		Phase3: fallbackPhase3(),
	}
}
