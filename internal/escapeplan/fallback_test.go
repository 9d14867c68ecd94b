package escapeplan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlie2bored/shftrr/internal/types"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestFallbackRunwayCalculation(t *testing.T) {
	in := validInput() // expenses 5000, savings 25000

	out := Fallback(in, testNow)

	assert.Equal(t, 5.0, out.FinancialRunway.Months)
	assert.Equal(t, types.RunwayLimited, out.FinancialRunway.Status)
	assert.Contains(t, out.FinancialRunway.Recommendation, "emergency savings")
}

func TestFallbackRunwayWithoutSavings(t *testing.T) {
	in := validInput()
	in.FinancialData.MonthlyExpenses = floatPtr(3000)
	in.FinancialData.Savings = nil

	out := Fallback(in, testNow)

	assert.Equal(t, 0.0, out.FinancialRunway.Months)
	assert.Equal(t, types.RunwayCritical, out.FinancialRunway.Status)
}

func TestFallbackRunwayWithZeroExpenses(t *testing.T) {
	in := validInput()
	in.FinancialData.MonthlyExpenses = floatPtr(0)

	out := Fallback(in, testNow)

	assert.Equal(t, 0.0, out.FinancialRunway.Months)
	assert.Equal(t, types.RunwayCritical, out.FinancialRunway.Status)
}

func TestFallbackRunwayStatusThresholds(t *testing.T) {
	cases := []struct {
		savings float64
		status  string
	}{
		{savings: 2999, status: types.RunwayCritical}, // 2 months
		{savings: 3000, status: types.RunwayLimited},  // exactly 3
		{savings: 5999, status: types.RunwayLimited},  // 5 months
		{savings: 6000, status: types.RunwayModerate}, // exactly 6
		{savings: 11999, status: types.RunwayModerate},
		{savings: 12000, status: types.RunwayStrong}, // exactly 12
	}

	for _, tc := range cases {
		in := validInput()
		in.FinancialData.MonthlyExpenses = floatPtr(1000)
		in.FinancialData.Savings = floatPtr(tc.savings)
		out := Fallback(in, testNow)
		assert.Equalf(t, tc.status, out.FinancialRunway.Status, "savings=%v", tc.savings)
	}
}

func TestFallbackRunwayMonotonicity(t *testing.T) {
	savingsSteps := []float64{0, 1500, 3000, 7500, 12000, 24000, 60000}
	expenseSteps := []float64{500, 1000, 2000, 4000, 8000}

	runway := func(savings, expenses float64) float64 {
		in := validInput()
		in.FinancialData.Savings = floatPtr(savings)
		in.FinancialData.MonthlyExpenses = floatPtr(expenses)
		return Fallback(in, testNow).FinancialRunway.Months
	}

	// More savings at fixed expenses never shortens the runway.
	for _, expenses := range expenseSteps {
		prev := runway(savingsSteps[0], expenses)
		for _, savings := range savingsSteps[1:] {
			months := runway(savings, expenses)
			assert.GreaterOrEqualf(t, months, prev,
				"savings=%v expenses=%v", savings, expenses)
			prev = months
		}
	}

	// Higher expenses at fixed savings never lengthens it.
	for _, savings := range savingsSteps {
		prev := runway(savings, expenseSteps[0])
		for _, expenses := range expenseSteps[1:] {
			months := runway(savings, expenses)
			assert.LessOrEqualf(t, months, prev,
				"savings=%v expenses=%v", savings, expenses)
			prev = months
		}
	}
}

func TestFallbackBurnoutScore(t *testing.T) {
	cases := []struct {
		vents int
		score float64
		level string
	}{
		{vents: 0, score: 0, level: types.BurnoutLow},
		{vents: 1, score: 15, level: types.BurnoutLow},
		{vents: 2, score: 30, level: types.BurnoutMedium},
		{vents: 4, score: 60, level: types.BurnoutHigh},
		{vents: 5, score: 75, level: types.BurnoutCritical},
		{vents: 6, score: 90, level: types.BurnoutCritical},
		{vents: 7, score: 100, level: types.BurnoutCritical},
		{vents: 20, score: 100, level: types.BurnoutCritical},
	}

	for _, tc := range cases {
		in := validInput()
		in.UserProfile.DailyVents = make([]string, tc.vents)
		for i := range in.UserProfile.DailyVents {
			in.UserProfile.DailyVents[i] = "vent"
		}
		out := Fallback(in, testNow)
		assert.Equalf(t, tc.score, out.BurnoutRisk.Score, "vents=%d", tc.vents)
		assert.Equalf(t, tc.level, out.BurnoutRisk.Level, "vents=%d", tc.vents)
	}
}

func TestFallbackBurnoutFactors(t *testing.T) {
	in := validInput()
	in.UserProfile.DailyVents = []string{"a", "b", "c", "d", "e"}
	out := Fallback(in, testNow)
	assert.Equal(t, []string{"a", "b", "c"}, out.BurnoutRisk.Factors)

	in.UserProfile.DailyVents = nil
	out = Fallback(in, testNow)
	assert.Equal(t, []string{"Limited data available"}, out.BurnoutRisk.Factors)
}

func TestFallbackEmergencyFund(t *testing.T) {
	in := validInput() // expenses 5000, income 6500, savings 25000

	out := Fallback(in, testNow)

	assert.Equal(t, 30000.0, out.EmergencyFund.RecommendedAmount)
	// ceil((30000-25000)/1500) = 4
	assert.Equal(t, "4 months", out.EmergencyFund.Timeframe)
	assert.Equal(t, "Based on 5000 monthly expenses × 6 months", out.EmergencyFund.Calculation)
	assert.Len(t, out.EmergencyFund.Tips, 4)
}

func TestFallbackEmergencyFundWithoutSurplus(t *testing.T) {
	in := validInput()
	in.FinancialData.MonthlyIncome = floatPtr(5000) // equal to expenses

	out := Fallback(in, testNow)
	assert.Equal(t, "12 months", out.EmergencyFund.Timeframe)
}

func TestFallbackEmergencyFundAlreadyFunded(t *testing.T) {
	in := validInput()
	in.FinancialData.Savings = floatPtr(50000) // above the 30000 target

	out := Fallback(in, testNow)
	assert.Equal(t, "0 months", out.EmergencyFund.Timeframe)
}

func TestFallbackBudgetSplit(t *testing.T) {
	in := validInput()
	in.FinancialData.MonthlyExpenses = floatPtr(10000)

	out := Fallback(in, testNow)
	b := out.BudgetRecommendation

	assert.Equal(t, 6500.0, b.MonthlyIncome)
	assert.InDelta(t, 2800.0, b.RecommendedExpenses["Housing"], 0.001)
	assert.InDelta(t, 1200.0, b.RecommendedExpenses["Food"], 0.001)
	assert.InDelta(t, 1500.0, b.RecommendedExpenses["Transportation"], 0.001)
	assert.InDelta(t, 800.0, b.RecommendedExpenses["Utilities"], 0.001)
	assert.InDelta(t, 800.0, b.RecommendedExpenses["Insurance"], 0.001)
	assert.InDelta(t, 2000.0, b.RecommendedExpenses["Savings"], 0.001)
	assert.InDelta(t, 900.0, b.RecommendedExpenses["Entertainment"], 0.001)
	assert.InDelta(t, 2000.0, b.SavingsTarget, 0.001)

	total := 0.0
	for _, v := range b.RecommendedExpenses {
		total += v
	}
	assert.InDelta(t, 10000.0, total, 0.001)

	assert.Contains(t, b.DebtReduction, "12000")
}

func TestFallbackBudgetWithoutDebt(t *testing.T) {
	in := validInput()
	in.FinancialData.Debt = floatPtr(0)
	out := Fallback(in, testNow)
	assert.Equal(t, "No debt reduction needed", out.BudgetRecommendation.DebtReduction)
}

func TestFallbackPrimaryPathFromGoals(t *testing.T) {
	out := Fallback(validInput(), testNow)

	p := out.CareerPaths.Primary
	assert.Equal(t, "Data Analyst", p.Title)
	assert.Equal(t, "$90,000 - $108,000", p.SalaryRange)
	assert.Equal(t, 85.0, p.FitScore)
	assert.Len(t, out.CareerPaths.Alternatives, 5)
	assert.Nil(t, out.FieldSelector)
}

func TestFallbackWithoutCareerGoals(t *testing.T) {
	in := validInput()
	in.CareerGoals = nil

	out := Fallback(in, testNow)

	assert.Equal(t, "Career Exploration Needed", out.CareerPaths.Primary.Title)
	assert.Equal(t, 70.0, out.CareerPaths.Primary.FitScore)

	require.NotNil(t, out.FieldSelector)
	assert.Len(t, out.FieldSelector.RecommendedFields, 5)
	assert.Len(t, out.FieldSelector.NextSteps, 4)
}

func TestFallbackFieldSelectorOnlyWhenFieldMissing(t *testing.T) {
	in := validInput()
	in.CareerGoals.DesiredField = ""
	out := Fallback(in, testNow)
	assert.NotNil(t, out.FieldSelector)

	in.CareerGoals.DesiredField = "Healthcare"
	out = Fallback(in, testNow)
	assert.Nil(t, out.FieldSelector)
}

func TestFallbackRoadmapPhases(t *testing.T) {
	out := Fallback(validInput(), testNow)

	assert.Equal(t, "6 months", out.Roadmap.Phase1.Duration)
	assert.Equal(t, "1 year", out.Roadmap.Phase2.Duration)
	assert.Equal(t, "2 years", out.Roadmap.Phase3.Duration)

	// Phase 1 embeds the user's actual emergency-fund numbers.
	steps := out.Roadmap.Phase1.Actions[1].SpecificSteps
	assert.Contains(t, steps[0], "$30,000")
	assert.Contains(t, steps[0], "$5,000")
	assert.Contains(t, out.Roadmap.Phase1.Milestones[1].Measurable, "$15,000")

	for _, phase := range []types.RoadmapPhase{out.Roadmap.Phase1, out.Roadmap.Phase2, out.Roadmap.Phase3} {
		assert.NotEmpty(t, phase.Title)
		assert.NotEmpty(t, phase.Introduction)
		assert.NotEmpty(t, phase.Goals)
		assert.NotEmpty(t, phase.Actions)
		assert.NotEmpty(t, phase.Milestones)
	}
}

func TestFallbackStaticBlocks(t *testing.T) {
	out := Fallback(validInput(), testNow)

	assert.Len(t, out.SkillsNeeded, 5)
	assert.Len(t, out.Certifications, 3)
	assert.Len(t, out.CelebrationPoints, 3)
	assert.Len(t, out.DailyMotivation, 5)
	assert.Equal(t, 0.0, out.ProgressTracking.OverallCompletion)
	assert.Equal(t, "2026-03-14T09:30:00Z", out.GeneratedAt)
}

func TestFallbackIsDeterministic(t *testing.T) {
	a := Fallback(validInput(), testNow)
	b := Fallback(validInput(), testNow)
	assert.Equal(t, a, b)
}
