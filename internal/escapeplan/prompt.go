package escapeplan

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/charlie2bored/shftrr/internal/assessment"
	"github.com/charlie2bored/shftrr/internal/prompts"
	"github.com/charlie2bored/shftrr/internal/types"
)

const promptFile = "escape_plan.json"

// BuildPrompt renders the complete generation prompt for the given input
// and optional diagnostic assessment. Pure function: no side effects, and
// byte-identical output for identical inputs. Absent optional fields are
// always rendered with explicit placeholders because the model is
// instructed to reason over every field.
func BuildPrompt(in *types.EscapePlanInput, rec *assessment.Record) string {
	sections := []string{
		prompts.MustGet(promptFile, "coach_preamble"),
		profileSection(in, rec),
		financialSection(&in.FinancialData),
		skillsSection(&in.Skills),
		prompts.MustGet(promptFile, "motivational_requirements"),
		prompts.Format(prompts.MustGet(promptFile, "schema_instruction"), map[string]string{
			"Schema": OutputSchemaJSON(),
		}),
		prompts.MustGet(promptFile, "analysis_requirements"),
	}
	return strings.Join(sections, "\n\n")
}

func profileSection(in *types.EscapePlanInput, rec *assessment.Record) string {
	p := &in.UserProfile

	var sb strings.Builder
	sb.WriteString("USER PROFILE:\n")
	sb.WriteString("- Employment Status: " + p.EmploymentStatus + "\n")
	sb.WriteString("- Current Job: " + stringOr(p.CurrentJobTitle, "Not employed") + "\n")
	sb.WriteString("- Current Salary: " + dollarsOr(p.CurrentSalary, "Not employed") + "\n")
	sb.WriteString("- Years of Experience: " + numberOr(p.YearsExperience, "Not specified") + "\n")
	sb.WriteString("- Education: " + educationOr(p.Education, "Not provided") + "\n")
	sb.WriteString("- Daily Vents/Complaints: " + joinOr(p.DailyVents, "; ", "None provided"))

	if in.CareerGoals != nil {
		g := in.CareerGoals
		sb.WriteString("\n\nCAREER GOALS:\n")
		sb.WriteString("- Desired Field: " + textOr(g.DesiredField, "Not specified") + "\n")
		sb.WriteString("- Desired Job Title: " + textOr(g.DesiredJobTitle, "Not specified") + "\n")
		sb.WriteString("- Desired Salary: " + dollarsOr(g.DesiredSalary, "Not specified") + "\n")
		sb.WriteString("- Career Interests: " + joinOr(g.CareerInterests, ", ", "Not specified"))
	}

	if rec != nil {
		sb.WriteString(rec.PromptSection())
	}

	return sb.String()
}

func financialSection(f *types.FinancialData) string {
	var sb strings.Builder
	sb.WriteString("FINANCIAL DATA:\n")
	sb.WriteString("- Monthly Expenses: " + dollarsOr(f.MonthlyExpenses, "$0") + "\n")
	sb.WriteString("- Total Debt: " + dollarsOr(f.Debt, "$0") + "\n")
	sb.WriteString("- Emergency Savings: " + dollarsOr(f.Savings, "Not specified") + "\n")
	sb.WriteString("- Monthly Income: " + dollarsOr(f.MonthlyIncome, "$0"))
	return sb.String()
}

func skillsSection(s *types.Skills) string {
	var sb strings.Builder
	sb.WriteString("SKILLS:\n")
	sb.WriteString("- Technical Skills: " + joinOr(s.TechnicalSkills, ", ", "None") + "\n")
	sb.WriteString("- Soft Skills: " + joinOr(s.SoftSkills, ", ", "None") + "\n")
	sb.WriteString("- Certifications: " + joinOr(s.Certifications, ", ", "None"))
	return sb.String()
}

func stringOr(v *string, placeholder string) string {
	if v == nil || *v == "" {
		return placeholder
	}
	return *v
}

func textOr(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}

func numberOr(v *float64, placeholder string) string {
	if v == nil {
		return placeholder
	}
	return trimFloat(*v)
}

func dollarsOr(v *float64, placeholder string) string {
	if v == nil {
		return placeholder
	}
	return "$" + formatUSD(*v)
}

func joinOr(items []string, sep, placeholder string) string {
	if len(items) == 0 {
		return placeholder
	}
	return strings.Join(items, sep)
}

func educationOr(e *types.EducationBackground, placeholder string) string {
	if e == nil {
		return placeholder
	}
	data, err := json.Marshal(e)
	if err != nil {
		return placeholder
	}
	return string(data)
}

// trimFloat formats a float without trailing zeros (5 not 5.000000).
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatUSD renders a dollar amount with thousands separators, matching
// the presentation the original UI shows users ("30,000").
func formatUSD(v float64) string {
	s := trimFloat(v)

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx:]
	}

	n := len(intPart)
	if n <= 3 {
		return intPart + fracPart
	}

	var sb strings.Builder
	lead := n % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < n; i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}
	return sb.String() + fracPart
}
