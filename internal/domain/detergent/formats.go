// Package detergent recommends a detergent format and explains how to use it.
package detergent

import (
	"slices"

	"dishmate/internal/domain/model"
)

var formats = map[model.DetergentFormat]model.DetergentFormatInfo{
	model.FormatPowder: {
		Format: model.FormatPowder,
		Pros: []string{
			"Can add to pre-wash (critical for greasy dishes)",
			"Adjustable dosing for load size and soil level",
			"Generally highest enzyme content",
			"Most cost-effective per wash",
			"Better for hard water (can use more)",
		},
		Cons: []string{
			"Requires measuring",
			"Can clump in humid conditions",
			"Messier than pods",
		},
		BestFor: []string{
			"Greasy dishes",
			"Heavy soil loads",
			"Hard water areas",
			"Budget-conscious households",
			"Users who want optimal results",
		},
		CostPerWash:    "$0.10-0.20",
		PrewashCapable: true,
		EnzymeContent:  model.EnzymeHigh,
	},
	model.FormatPods: {
		Format: model.FormatPods,
		Pros: []string{
			"Convenient - no measuring",
			"Clean and easy to handle",
			"Consistent dosing",
		},
		Cons: []string{
			"Cannot add to pre-wash phase",
			"Fixed dose (can't adjust for load)",
			"More expensive per wash",
			"Can leave residue if not fully dissolved",
			"Short cycles may not dissolve coating",
		},
		BestFor: []string{
			"Lightly soiled dishes only",
			"Users who prioritise convenience",
			"Normal to soft water areas",
		},
		CostPerWash:    "$0.25-0.50",
		PrewashCapable: false,
		EnzymeContent:  model.EnzymeMedium,
	},
	model.FormatTablets: {
		Format: model.FormatTablets,
		Pros: []string{
			"Convenient - no measuring",
			"Generally dissolve faster than pods",
			"Can sometimes be broken in half for light loads",
		},
		Cons: []string{
			"Still cannot add to pre-wash effectively",
			"Fixed dose for most",
			"More expensive than powder",
		},
		BestFor: []string{
			"Light to moderate soil",
			"Users who want balance of convenience and performance",
		},
		CostPerWash:    "$0.20-0.40",
		PrewashCapable: false,
		EnzymeContent:  model.EnzymeMedium,
	},
	model.FormatLiquid: {
		Format: model.FormatLiquid,
		Pros: []string{
			"Easy to measure and pour",
			"Dissolves quickly",
		},
		Cons: []string{
			"Often lower enzyme content",
			"Can leave smeary residue",
			"Less effective on tough soil",
			"Easy to overdose",
		},
		BestFor: []string{
			"Very light soil only",
			"Quick cycles",
		},
		CostPerWash:    "$0.15-0.30",
		PrewashCapable: true,
		EnzymeContent:  model.EnzymeLow,
	},
}

// costBand is the per-wash price range in dollars.
type costBand struct{ low, high float64 }

var costBands = map[model.DetergentFormat]costBand{
	model.FormatPowder:  {0.10, 0.20},
	model.FormatPods:    {0.25, 0.50},
	model.FormatTablets: {0.20, 0.40},
	model.FormatLiquid:  {0.15, 0.30},
}

// FormatInfo returns a copy of the reference entry for f. The boolean is
// false for an unrecognised format.
func FormatInfo(f model.DetergentFormat) (model.DetergentFormatInfo, bool) {
	info, ok := formats[f]
	if !ok {
		return model.DetergentFormatInfo{}, false
	}
	return cloneInfo(info), true
}

// AllFormats lists every format in display order: powder, pods, tablets, liquid.
func AllFormats() []model.DetergentFormatInfo {
	out := make([]model.DetergentFormatInfo, 0, len(formats))
	for _, f := range model.DetergentFormats() {
		out = append(out, cloneInfo(formats[f]))
	}
	return out
}

func cloneInfo(info model.DetergentFormatInfo) model.DetergentFormatInfo {
	info.Pros = slices.Clone(info.Pros)
	info.Cons = slices.Clone(info.Cons)
	info.BestFor = slices.Clone(info.BestFor)
	return info
}

// CompareFormats picks a winner between two formats. Powder beats anything,
// pods beat liquid, and any other pairing goes to f1.
func CompareFormats(f1, f2 model.DetergentFormat) model.FormatComparison {
	cmp := model.FormatComparison{
		Format1: cloneInfo(formats[f1]),
		Format2: cloneInfo(formats[f2]),
	}
	switch {
	case f1 == model.FormatPowder || f2 == model.FormatPowder:
		cmp.Winner = model.FormatPowder
		other := f2
		if f2 == model.FormatPowder {
			other = f1
		}
		switch other {
		case model.FormatPods:
			cmp.WhyWinner = "Powder can be used in pre-wash (pods cannot), has adjustable dosing, and costs less per wash."
		case model.FormatLiquid:
			cmp.WhyWinner = "Powder has higher enzyme content and is more effective on tough soil than liquid."
		default:
			cmp.WhyWinner = "Powder offers better cleaning performance and value than tablets."
		}
	case isPair(f1, f2, model.FormatPods, model.FormatLiquid):
		cmp.Winner = model.FormatPods
		cmp.WhyWinner = "Pods have more consistent dosing and typically better enzyme content than liquid."
	default:
		cmp.Winner = f1
		cmp.WhyWinner = "Both formats have similar performance for light loads."
	}
	return cmp
}

func isPair(f1, f2, a, b model.DetergentFormat) bool {
	return (f1 == a && f2 == b) || (f1 == b && f2 == a)
}

func WhyPowderBeatsPods() model.PowderVsPodsExplanation {
	return model.PowderVsPodsExplanation{
		Headline: "Why Powder Beats Pods",
		Summary: "Your dishwasher runs a PRE-WASH phase before opening the detergent dispenser. " +
			"Pods sit locked in the dispenser during this entire phase, doing nothing. " +
			"That means the pre-wash uses only plain water - no cleaning power.",
		KeyPoints: []model.KeyPoint{
			{
				Title: "The Pre-Wash Problem",
				Explanation: "Most dishwashers spray dishes with water before the main cycle to loosen food. " +
					"This is when grease and heavy soil should be tackled. But with pods, there's no detergent " +
					"in this phase - the pod is still sealed in the dispenser. Plain water can't cut grease, " +
					"so it just spreads around and redeposits on your dishes.",
			},
			{
				Title: "Powder Solution",
				Explanation: "With powder, you can put 1-1.5 tablespoons loose in the door or tub floor BEFORE " +
					"closing the door. This powder dissolves in the pre-wash phase, tackling grease and heavy soil " +
					"when it matters most. Then the dispenser opens for the main wash with fresh detergent for " +
					"the finishing clean.",
			},
			{
				Title: "Adjustable Dosing",
				Explanation: "Pods give you one fixed dose regardless of load size, soil level, or water hardness. " +
					"Powder lets you use less for light loads (saving money) and more for heavy loads or hard water " +
					"(getting cleaner dishes). This flexibility means better results and less waste.",
			},
			{
				Title: "Better Enzymes",
				Explanation: "Quality powder detergents typically have higher concentrations of enzymes (proteases " +
					"for protein, amylases for starch, lipases for fats). These enzymes do the real cleaning work. " +
					"Pods often sacrifice enzyme content to fit everything in a small package.",
			},
			{
				Title: "Cost Savings",
				Explanation: "Powder costs $0.10-0.20 per wash compared to $0.25-0.50 for pods. Over a year of " +
					"daily use, that's $50-100+ in savings - while getting cleaner dishes.",
			},
		},
		Conclusion: "The convenience of pods comes at the cost of cleaning performance. If you're having any " +
			"issues with greasy dishes, residue, or food not coming off, switching to powder and using the " +
			"pre-wash technique will make an immediate difference.",
	}
}
