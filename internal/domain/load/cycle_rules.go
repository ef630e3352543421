package load

import "dishmate/internal/domain/model"

// CycleRule is one entry of the cycle precedence list.
type CycleRule struct {
	ID    string
	Match func(calc model.LoadCalculation, urgency model.Urgency) bool
	Cycle model.CycleType
}

// CycleRules returns the precedence list evaluated by SelectCycle. The first
// matching rule wins; the final rule always matches.
func CycleRules() []CycleRule {
	return []CycleRule{
		{
			ID:    "sanitise_baby_items",
			Match: func(c model.LoadCalculation, _ model.Urgency) bool { return c.NeedsSanitise && !c.NeedsGentle },
			Cycle: model.CycleSanitise,
		},
		{
			// Gentle items override sanitise and urgency.
			ID:    "gentle_items",
			Match: func(c model.LoadCalculation, _ model.Urgency) bool { return c.NeedsGentle },
			Cycle: model.CycleDelicate,
		},
		{
			ID: "fast_light_soil",
			Match: func(c model.LoadCalculation, u model.Urgency) bool {
				return u == model.UrgencyNeedFast && c.SoilScore <= 2
			},
			Cycle: model.CycleQuick,
		},
		{
			// Quick cannot handle soil above 2; Recommend adds a warning.
			ID: "fast_heavy_soil",
			Match: func(c model.LoadCalculation, u model.Urgency) bool {
				return u == model.UrgencyNeedFast && c.SoilScore > 2
			},
			Cycle: model.CycleNormal,
		},
		{
			ID:    "heavy_or_greasy",
			Match: func(c model.LoadCalculation, _ model.Urgency) bool { return c.SoilScore >= 4 },
			Cycle: model.CycleIntensive,
		},
		{
			ID: "no_rush_moderate_soil",
			Match: func(c model.LoadCalculation, u model.Urgency) bool {
				return u == model.UrgencyNoRush && c.SoilScore <= 3
			},
			Cycle: model.CycleEco,
		},
		{
			ID:    "protein_needs_enzyme_time",
			Match: func(c model.LoadCalculation, _ model.Urgency) bool { return c.SoilScore == 3 },
			Cycle: model.CycleNormal,
		},
		{
			ID:    "default",
			Match: func(model.LoadCalculation, model.Urgency) bool { return true },
			Cycle: model.CycleNormal,
		},
	}
}

var cycleRules = CycleRules()

func SelectCycle(calc model.LoadCalculation, urgency model.Urgency) model.CycleType {
	rule, _ := MatchCycleRule(calc, urgency)
	return rule.Cycle
}

// MatchCycleRule returns the winning rule and its position in CycleRules.
func MatchCycleRule(calc model.LoadCalculation, urgency model.Urgency) (CycleRule, int) {
	for i, r := range cycleRules {
		if r.Match(calc, urgency) {
			return r, i
		}
	}
	return cycleRules[len(cycleRules)-1], len(cycleRules) - 1
}
