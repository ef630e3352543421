package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dishmate/internal/app/detergent"
	"dishmate/internal/app/hardness"
	"dishmate/internal/app/profile"
	"dishmate/internal/app/troubleshoot"
	"dishmate/internal/domain/model"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// renderHuman formats the common result types for a terminal. Anything it
// does not know is left to the JSON fallback.
func renderHuman(v any) (string, bool) {
	res, ok := v.(model.CommandResult)
	if !ok {
		return "", false
	}

	var b strings.Builder
	switch r := res.Result.(type) {
	case model.Recommendation:
		heading(&b, "Recommended cycle: "+string(r.Cycle))
		field(&b, "Prewash dose", r.PrewashDose)
		field(&b, "Main dose", r.MainDose)
		field(&b, "Pre-rinse", r.PrerinseAdvice)
		b.WriteString("\n" + r.Reasoning + "\n")
		list(&b, "Loading tips", r.LoadingTips)
		warnings(&b, r.Warnings)
	case troubleshoot.Diagnosis:
		renderDiagnosis(&b, r)
	case []model.CategoryInfo:
		heading(&b, "Troubleshooting categories")
		for _, c := range r {
			fmt.Fprintf(&b, "  %-16s %s\n", c.Category, c.Description)
		}
	case model.MaintenanceSchedule:
		heading(&b, fmt.Sprintf("Maintenance schedule (%s water, %s use)", r.WaterHardness, r.UsageLevel))
		for _, t := range r.Tasks {
			fmt.Fprintf(&b, "  %-28s %s", t.Task.Name, t.AdjustedFrequency)
			if t.Reason != "" {
				b.WriteString(faintStyle.Render("  (" + t.Reason + ")"))
			}
			b.WriteString("\n")
		}
		list(&b, "Next actions", r.NextActions)
	case model.MaintenanceCheck:
		heading(&b, fmt.Sprintf("Dishwasher health: %d/100 (%s)", r.Score, r.Status))
		list(&b, "Issues", r.Issues)
		list(&b, "Recommendations", r.Recommendations)
	case []model.MaintenanceTaskInfo:
		heading(&b, "Maintenance tasks")
		for _, t := range r {
			fmt.Fprintf(&b, "  %-28s %-12s %-10s %d min\n", t.Name, t.Frequency, t.ImportanceLevel, t.TimeMinutes)
		}
	case model.WaterHardnessTest:
		heading(&b, r.Name)
		b.WriteString(r.Description + "\n")
		list(&b, "You need", r.Materials)
		numbered(&b, "Steps", r.Steps)
		b.WriteString("\n" + labelStyle.Render("Reading the result") + "\n")
		for _, h := range []string{"soft", "moderate", "hard"} {
			fmt.Fprintf(&b, "  %-9s %s\n", h, r.InterpretationGuide[h])
		}
	case model.TestResult:
		heading(&b, fmt.Sprintf("Water hardness: %s (%s confidence)", r.Hardness, r.Confidence))
		b.WriteString(r.Explanation + "\n")
		if r.SuggestProfessionalTest {
			b.WriteString(warnStyle.Render("A professional water test is recommended.") + "\n")
		}
	case model.SymptomEstimate:
		heading(&b, fmt.Sprintf("Likely hardness: %s (%s confidence)", r.LikelyHardness, r.Confidence))
		b.WriteString(r.Reasoning + "\n")
		if r.RecommendTest {
			b.WriteString(warnStyle.Render("Run `dishmate hardness test` to confirm.") + "\n")
		}
	case model.CityHardnessResult:
		heading(&b, fmt.Sprintf("%s: %s", r.City, r.Hardness))
		field(&b, "Range", r.PPMRange)
		field(&b, "Source", r.Source)
		if r.Message != "" {
			b.WriteString(warnStyle.Render(r.Message) + "\n")
		}
	case hardness.Advice:
		heading(&b, fmt.Sprintf("Settings for %s water", r.Hardness))
		field(&b, "Range", r.Band.Range)
		field(&b, "Detergent", r.Recommendations.DetergentAdjustment)
		field(&b, "Salt", yesNo(r.Recommendations.UseSalt))
		field(&b, "Rinse aid", string(r.Recommendations.RinseAidSetting))
		field(&b, "Maintenance", r.Recommendations.MaintenanceFrequency)
		field(&b, "First step", r.Recommendations.FirstStep)
		list(&b, "Tips", r.Recommendations.Tips)
	case []model.PreRinseClassification:
		heading(&b, "Scrape or leave")
		for _, c := range r {
			fmt.Fprintf(&b, "  %-8s %s\n", c.Action, c.Text)
		}
	case model.DetergentRecommendation:
		heading(&b, "Recommended detergent: "+string(r.RecommendedFormat))
		b.WriteString(r.Reasoning + "\n")
		numbered(&b, "How to use it", r.UsageInstructions)
		field(&b, "Cost", r.CostComparison)
		if r.AlternativeFormat != "" {
			field(&b, "Alternative", fmt.Sprintf("%s - %s", r.AlternativeFormat, r.AlternativeReason))
		}
		warnings(&b, r.Warnings)
	case detergent.FormatGuide:
		heading(&b, "Detergent formats")
		for _, f := range r.Formats {
			fmt.Fprintf(&b, "  %-8s %-22s enzymes=%s prewash=%s\n", f.Format, f.CostPerWash, f.EnzymeContent, yesNo(f.PrewashCapable))
		}
		b.WriteString("\n" + labelStyle.Render(r.WhyPowderBeatsPods.Headline) + "\n")
		b.WriteString(r.WhyPowderBeatsPods.Summary + "\n")
	case model.FormatComparison:
		heading(&b, fmt.Sprintf("%s vs %s", r.Format1.Format, r.Format2.Format))
		field(&b, "Winner", string(r.Winner))
		b.WriteString(r.WhyWinner + "\n")
	case model.RinseAidRecommendation:
		heading(&b, "Rinse aid setting: "+string(r.SettingRecommendation))
		b.WriteString(r.Reasoning + "\n")
		if len(r.UrgentActions) > 0 {
			b.WriteString("\n" + warnStyle.Render("Do this first") + "\n")
			bullets(&b, r.UrgentActions)
		}
		list(&b, "Tips", r.UsageTips)
	case model.SpotDiagnosis:
		heading(&b, "Likely cause: "+string(r.LikelyCause))
		if r.IsPermanent {
			b.WriteString(warnStyle.Render("This damage is permanent; prevention is all that helps now.") + "\n")
		}
		list(&b, "Solutions", r.Solutions)
		list(&b, "Prevention", r.PreventionTips)
	case model.CycleInfo:
		renderCycle(&b, r)
	case []model.CycleInfo:
		heading(&b, "Wash cycles")
		for _, c := range r {
			fmt.Fprintf(&b, "  %-10s %-12s %-10s %s\n", c.Cycle, c.Duration, c.Temperature, c.Description)
		}
	case model.CycleComparison:
		heading(&b, fmt.Sprintf("%s vs %s", r.Cycle1.Name, r.Cycle2.Name))
		fmt.Fprintf(&b, "  %-10s %-12s %s\n", r.Cycle1.Cycle, r.Cycle1.Duration, r.Cycle1.Temperature)
		fmt.Fprintf(&b, "  %-10s %-12s %s\n", r.Cycle2.Cycle, r.Cycle2.Duration, r.Cycle2.Temperature)
		field(&b, "Pick", string(r.Recommendation))
		b.WriteString(r.Reason + "\n")
	case model.CycleChoice:
		heading(&b, "Suggested cycle: "+string(r.Cycle))
		b.WriteString(r.Reason + "\n")
	case []model.RuleInfo:
		heading(&b, "Decision rules")
		for _, ri := range r {
			fmt.Fprintf(&b, "  %-22s %2d  %-22s %s\n", ri.Engine, ri.Order, ri.ID, ri.Outcome)
		}
	case profile.View:
		heading(&b, "Household profile")
		field(&b, "File", r.Path)
		field(&b, "Water hardness", string(r.Profile.WaterHardness))
		field(&b, "Effective hardness", string(r.EffectiveHardness))
		field(&b, "City", r.Profile.City)
		field(&b, "Loads per week", fmt.Sprint(r.Profile.LoadsPerWeek))
		field(&b, "Detergent", string(r.Profile.DetergentFormat))
		field(&b, "Usage", string(r.Profile.UsagePattern))
	default:
		return "", false
	}
	return strings.TrimRight(b.String(), "\n"), true
}

func renderDiagnosis(b *strings.Builder, d troubleshoot.Diagnosis) {
	switch step := d.Current.(type) {
	case model.QuestionStep:
		heading(b, step.Question)
		for _, o := range step.Options {
			fmt.Fprintf(b, "  --answer %-22s %s\n", o.Value, o.Label)
		}
	case model.DiagnosisTerminal:
		heading(b, "Diagnosis")
		b.WriteString(step.Diagnosis + "\n")
	case model.SolutionTerminal:
		b.WriteString(renderSolution(step.Solution) + "\n")
	}
}

func renderCycle(b *strings.Builder, c model.CycleInfo) {
	heading(b, c.Name)
	b.WriteString(c.Description + "\n")
	field(b, "Duration", c.Duration)
	field(b, "Temperature", c.Temperature)
	field(b, "Energy", string(c.EnergyUsage))
	field(b, "Enzyme friendly", yesNo(c.EnzymeFriendly))
	list(b, "Best for", c.BestFor)
	list(b, "Not suitable for", c.NotSuitableFor)
}

func heading(b *strings.Builder, s string) {
	b.WriteString(headingStyle.Render(s) + "\n")
}

func field(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render(label+":"), value)
}

func list(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + labelStyle.Render(title) + "\n")
	bullets(b, items)
}

func numbered(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + labelStyle.Render(title) + "\n")
	for i, it := range items {
		fmt.Fprintf(b, "  %d. %s\n", i+1, it)
	}
}

func bullets(b *strings.Builder, items []string) {
	for _, it := range items {
		b.WriteString("  • " + it + "\n")
	}
}

func warnings(b *strings.Builder, ws []string) {
	if len(ws) == 0 {
		return
	}
	b.WriteString("\n" + warnStyle.Render("Warnings") + "\n")
	bullets(b, ws)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
