// Package reference serves the read-only wash cycle tables, the educational
// explainers and the quick start material.
package reference

import (
	"slices"

	"dishmate/internal/domain/model"
)

// CycleInfo returns a copy of the table entry for c.
func CycleInfo(c model.CycleType) (model.CycleInfo, bool) {
	info, ok := cycles[c]
	if !ok {
		return model.CycleInfo{}, false
	}
	return cloneCycle(info), true
}

// AllCycles lists every cycle in model.CycleTypes order.
func AllCycles() []model.CycleInfo {
	out := make([]model.CycleInfo, 0, len(cycles))
	for _, c := range model.CycleTypes() {
		out = append(out, cloneCycle(cycles[c]))
	}
	return out
}

func cloneCycle(info model.CycleInfo) model.CycleInfo {
	info.HowItWorks = slices.Clone(info.HowItWorks)
	info.BestFor = slices.Clone(info.BestFor)
	info.NotSuitableFor = slices.Clone(info.NotSuitableFor)
	return info
}

type cyclePreference struct {
	a, b   model.CycleType
	winner model.CycleType
	reason string
}

// cyclePreferences are the pairings with a fixed answer, in either order.
var cyclePreferences = []cyclePreference{
	{model.CycleQuick, model.CycleEco, model.CycleEco,
		"Eco is better for cleaning because it gives enzymes time to work. Quick should only be used for very lightly soiled items when time is critical."},
	{model.CycleQuick, model.CycleNormal, model.CycleNormal,
		"Normal provides better cleaning for most loads. Quick often leaves residue on anything beyond water-marked glasses."},
	{model.CycleEco, model.CycleNormal, model.CycleEco,
		"For everyday loads, Eco saves energy while cleaning just as well (or better) thanks to longer enzyme time. Use Normal when you need dishes faster."},
	{model.CycleNormal, model.CycleIntensive, model.CycleNormal,
		"Normal handles most loads well. Only use Intensive for heavily baked-on or burnt food - it uses significantly more energy."},
	{model.CycleDelicate, model.CycleNormal, model.CycleNormal,
		"Normal is suitable for most items. Only use Delicate for fine glassware, crystal, or china that could be damaged by regular cycles."},
}

// CompareCycles recommends one of two cycles. Pairings without a fixed
// preference go to the lower energy cycle, ties to c1. Both cycles must be
// known.
func CompareCycles(c1, c2 model.CycleType) model.CycleComparison {
	info1, ok1 := cycles[c1]
	info2, ok2 := cycles[c2]
	if !ok1 || !ok2 {
		panic("reference: unknown cycle " + string(c1) + "/" + string(c2))
	}
	cmp := model.CycleComparison{Cycle1: cloneCycle(info1), Cycle2: cloneCycle(info2)}

	for _, p := range cyclePreferences {
		if (c1 == p.a && c2 == p.b) || (c1 == p.b && c2 == p.a) {
			cmp.Recommendation = p.winner
			cmp.Reason = p.reason
			return cmp
		}
	}

	lower := info1
	if info1.EnergyUsage.Rank() > info2.EnergyUsage.Rank() {
		lower = info2
	}
	cmp.Recommendation = lower.Cycle
	cmp.Reason = lower.Name + " uses less energy while providing adequate cleaning for most loads."
	return cmp
}

// CycleForSoil suggests a cycle for a load dominated by one soil type.
func CycleForSoil(s model.SoilType) model.CycleChoice {
	switch s {
	case model.SoilLight:
		return model.CycleChoice{Cycle: model.CycleQuick, Reason: "Light soil only needs a quick wash - saves time and energy."}
	case model.SoilEveryday:
		return model.CycleChoice{Cycle: model.CycleEco, Reason: "Everyday soil cleans well in Eco mode - enzymes handle it with time."}
	case model.SoilStarchy:
		return model.CycleChoice{Cycle: model.CycleEco, Reason: "Starch dissolves well with enzyme time. Eco's longer cycle is perfect."}
	case model.SoilProtein:
		return model.CycleChoice{Cycle: model.CycleEco, Reason: "Protein needs enzyme time to break down. Eco's long, low-temp cycle is ideal."}
	case model.SoilAcidic:
		return model.CycleChoice{Cycle: model.CycleNormal, Reason: "Acidic foods can stain if left too long. Normal cycle runs faster to prevent this."}
	case model.SoilGreasy:
		return model.CycleChoice{Cycle: model.CycleNormal, Reason: "Grease needs heat to emulsify. Normal's higher temperature handles it well."}
	case model.SoilHeavy:
		return model.CycleChoice{Cycle: model.CycleIntensive, Reason: "Baked-on and burnt food needs the high temperature of Intensive cycle."}
	default:
		return model.CycleChoice{Cycle: model.CycleNormal, Reason: "Normal cycle is a good default for unknown soil types."}
	}
}

// CycleForItem suggests a cycle for a load dominated by one item type.
func CycleForItem(i model.ItemType) model.CycleChoice {
	switch i {
	case model.ItemDelicate:
		return model.CycleChoice{Cycle: model.CycleDelicate, Reason: "Delicate items need lower pressure and temperature to prevent damage."}
	case model.ItemBabyItems:
		return model.CycleChoice{Cycle: model.CycleSanitise, Reason: "Baby items benefit from the high-temperature sanitise cycle to kill germs."}
	case model.ItemContainers:
		return model.CycleChoice{Cycle: model.CycleNormal, Reason: "Plastic containers should avoid high heat. Normal is hot enough to clean but won't warp."}
	case model.ItemPots, model.ItemPans, model.ItemBakeware:
		return model.CycleChoice{Cycle: model.CycleIntensive, Reason: "Cookware often has heavy soil. Intensive handles baked-on residue best."}
	case model.ItemGlasses:
		return model.CycleChoice{Cycle: model.CycleNormal, Reason: "Regular glasses are fine in Normal. Use Delicate only for fine crystal or wine glasses."}
	default:
		return model.CycleChoice{Cycle: model.CycleNormal, Reason: "Normal cycle works well for most dish types."}
	}
}
