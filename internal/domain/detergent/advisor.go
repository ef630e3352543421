package detergent

import (
	"fmt"
	"math"
	"strings"

	"dishmate/internal/domain/model"
)

const (
	WarnPodsNoPrewash  = "Your current pods cannot help with the pre-wash phase. This is likely causing your greasy dish issues."
	WarnPodsGreasy     = "If you start seeing greasy residue, switch to powder - pods can't help with pre-wash."
	WarnHardWaterExtra = "In hard water areas, you'll need about 50% more detergent than packet recommendations."
)

// Situation is the derived view of a DetergentInput the rules match on.
type Situation struct {
	Input     model.DetergentInput
	HeavySoil bool
}

// FormatRule is one entry of the recommendation precedence list.
type FormatRule struct {
	ID     string
	Format model.DetergentFormat
	Match  func(s Situation) bool
	Advise func(s Situation, rec *model.DetergentRecommendation)
}

// FormatRules returns the precedence list evaluated by Recommend. The first
// matching rule decides the format; the last rule always matches.
func FormatRules() []FormatRule {
	return []FormatRule{
		{
			ID:     "greasy_issues",
			Format: model.FormatPowder,
			Match:  func(s Situation) bool { return s.Input.HasGreasyIssues },
			Advise: func(s Situation, rec *model.DetergentRecommendation) {
				rec.Reasoning = "Greasy dishes need pre-wash detergent. Powder is the only format that lets you add " +
					"detergent to the pre-wash phase. This is critical because your dishwasher runs a pre-wash " +
					"BEFORE opening the dispenser - pods sit there doing nothing while plain water fails to cut grease."
				if s.Input.CurrentFormat == model.FormatPods {
					rec.Warnings = append(rec.Warnings, WarnPodsNoPrewash)
				}
			},
		},
		{
			ID:     "residue_issues",
			Format: model.FormatPowder,
			Match:  func(s Situation) bool { return s.Input.HasResidueIssues },
			Advise: func(s Situation, rec *model.DetergentRecommendation) {
				switch {
				case s.Input.WaterHardness == model.HardnessHard:
					rec.Reasoning = "Residue in hard water areas usually means you need MORE detergent. Powder lets you " +
						"adjust the dose - try doubling what you currently use. Pods give you a fixed amount that's " +
						"often not enough for hard water."
				case s.Input.CurrentFormat == model.FormatPods || s.Input.CurrentFormat == model.FormatLiquid:
					rec.Reasoning = "White residue from pods often means they're not dissolving fully. Powder dissolves " +
						"instantly and lets you control the amount. With soft water, you might actually need less detergent."
				default:
					rec.Reasoning = "Powder gives you the control to adjust dosing until you find the right amount for your water."
				}
			},
		},
		{
			ID:     "convenience_easy_conditions",
			Format: model.FormatPods,
			Match: func(s Situation) bool {
				return s.Input.MainConcern == model.ConcernConvenience && !s.HeavySoil &&
					s.Input.WaterHardness != model.HardnessHard
			},
			Advise: func(_ Situation, rec *model.DetergentRecommendation) {
				rec.Reasoning = "Pods work fine for lightly soiled dishes in soft/moderate water areas. They're convenient " +
					"and give consistent results for everyday loads."
				rec.AlternativeFormat = model.FormatPowder
				rec.AlternativeReason = "Switch to powder if you ever need to tackle greasy or heavily soiled items - pods can't handle the pre-wash."
				rec.Warnings = append(rec.Warnings, WarnPodsGreasy)
			},
		},
		{
			ID:     "cost",
			Format: model.FormatPowder,
			Match:  func(s Situation) bool { return s.Input.MainConcern == model.ConcernCost },
			Advise: func(_ Situation, rec *model.DetergentRecommendation) {
				rec.Reasoning = "Powder is the most cost-effective option at $0.10-0.20 per wash compared to $0.25-0.50 for pods. " +
					"It also cleans better because you can add pre-wash detergent and adjust for load size."
			},
		},
		{
			ID:     "eco",
			Format: model.FormatPowder,
			Match:  func(s Situation) bool { return s.Input.MainConcern == model.ConcernEco },
			Advise: func(_ Situation, rec *model.DetergentRecommendation) {
				rec.Reasoning = "Powder typically has the lowest environmental impact: less packaging, more concentrated, " +
					"and no plastic pod coatings. You can also use less for light loads, reducing waste."
			},
		},
		{
			ID:     "heavy_soil",
			Format: model.FormatPowder,
			Match:  func(s Situation) bool { return s.HeavySoil },
			Advise: func(_ Situation, rec *model.DetergentRecommendation) {
				rec.Reasoning = "For heavy soil (baked-on, greasy, protein), powder is essential. You need the pre-wash " +
					"capability and ability to use more detergent. Pods will leave you with dirty dishes."
			},
		},
		{
			ID:     "hard_water",
			Format: model.FormatPowder,
			Match:  func(s Situation) bool { return s.Input.WaterHardness == model.HardnessHard },
			Advise: func(_ Situation, rec *model.DetergentRecommendation) {
				rec.Reasoning = "Hard water needs more detergent than pods provide. With powder, you can increase the dose " +
					"50-100% to compensate. Pods give you a fixed amount that's often insufficient."
				rec.Warnings = append(rec.Warnings, WarnHardWaterExtra)
			},
		},
		{
			ID:     "default",
			Format: model.FormatPowder,
			Match:  func(Situation) bool { return true },
			Advise: func(s Situation, rec *model.DetergentRecommendation) {
				rec.Reasoning = "Powder gives you the best combination of cleaning power, flexibility, and value. " +
					"It's the only format that works with the pre-wash phase, and you can adjust the dose for each load."
				if s.Input.MainConcern == model.ConcernCleanDishes {
					rec.AlternativeFormat = model.FormatTablets
					rec.AlternativeReason = "Tablets are a reasonable middle ground if you want some convenience, but powder still cleans better."
				}
			},
		},
	}
}

// HasHeavySoil reports whether any soil type needs pre-wash strength.
func HasHeavySoil(soils []model.SoilType) bool {
	for _, s := range soils {
		switch s {
		case model.SoilHeavy, model.SoilGreasy, model.SoilProtein:
			return true
		}
	}
	return false
}

// MatchFormatRule returns the first rule that matches in and its index.
func MatchFormatRule(in model.DetergentInput) (FormatRule, int) {
	s := Situation{Input: in, HeavySoil: HasHeavySoil(in.TypicalSoilTypes)}
	rules := FormatRules()
	for i, r := range rules {
		if r.Match(s) {
			return r, i
		}
	}
	return rules[len(rules)-1], len(rules) - 1
}

// Recommend picks a detergent format for the household and explains how to
// use it. Warnings stays nil when there is nothing to warn about.
func Recommend(in model.DetergentInput) model.DetergentRecommendation {
	s := Situation{Input: in, HeavySoil: HasHeavySoil(in.TypicalSoilTypes)}
	r, _ := MatchFormatRule(in)

	rec := model.DetergentRecommendation{RecommendedFormat: r.Format}
	r.Advise(s, &rec)
	rec.UsageInstructions = UsageInstructions(rec.RecommendedFormat, in.WaterHardness, s.HeavySoil)
	rec.CostComparison = CostComparison(rec.RecommendedFormat, in.UsagePattern)
	return rec
}

func UsageInstructions(f model.DetergentFormat, hardness model.WaterHardness, heavySoil bool) []string {
	var out []string
	switch f {
	case model.FormatPowder:
		out = append(out,
			"PRE-WASH: Put 1-1.5 tablespoons loose in the door or on the tub floor before closing.",
			"MAIN WASH: Put 1.5-2 tablespoons in the dispenser compartment.",
		)
		if hardness == model.HardnessHard {
			out = append(out, "HARD WATER: Increase both doses by 50% (so about 2 tbsp pre-wash, 3 tbsp main).")
		}
		if heavySoil {
			out = append(out, "HEAVY SOIL: Use the maximum doses and run Intensive or Normal cycle (not Quick).")
		}
		out = append(out, "STORAGE: Keep in a dry place with lid sealed to prevent clumping.")
	case model.FormatPods, model.FormatTablets:
		out = append(out,
			"Place one pod/tablet in the dispenser compartment before running.",
			"Make sure the dispenser door isn't blocked by dishes.",
			"Use Normal or longer cycles - Quick may not dissolve them fully.",
			"Handle with dry hands - moisture makes them sticky.",
		)
		if hardness == model.HardnessHard {
			out = append(out, "NOTE: Pods may not provide enough detergent for hard water. Consider switching to powder if you see residue.")
		}
	case model.FormatLiquid:
		out = append(out,
			"Fill dispenser to the line marked for your load size.",
			"Don't overfill - liquid spreads easily.",
			"Can add a small amount to the door for pre-wash if needed.",
			"Best for light loads and quick cycles.",
		)
	}
	return out
}

// LoadsPerYear estimates yearly washes from a usage pattern.
func LoadsPerYear(p model.UsagePattern) int {
	perWeek := 2
	switch p {
	case model.UsageDaily:
		perWeek = 7
	case model.UsageRegular:
		perWeek = 5
	}
	return perWeek * 52
}

// CostComparison estimates the yearly spend on f, and for anything but pods,
// how much that saves against pods.
func CostComparison(f model.DetergentFormat, p model.UsagePattern) string {
	loads := LoadsPerYear(p)
	low, high := yearlyCost(f, loads)
	if f == model.FormatPods {
		return fmt.Sprintf("Estimated cost: ~$%d-%d/year (%d loads).", low, high, loads)
	}
	podLow, podHigh := yearlyCost(model.FormatPods, loads)
	return fmt.Sprintf("%s costs ~$%d-%d/year (%d loads). That's $%d-%d less than pods.",
		capitalize(string(f)), low, high, loads, podLow-high, podHigh-low)
}

func yearlyCost(f model.DetergentFormat, loads int) (low, high int) {
	band := costBands[f]
	return int(math.Round(band.low * float64(loads))), int(math.Round(band.high * float64(loads)))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
