// Package rinseaid recommends a rinse aid dial setting and diagnoses spotting
// on glassware.
package rinseaid

import (
	"slices"

	"dishmate/internal/domain/model"
)

const RefillAction = "Refill rinse aid dispenser immediately"

var usageTips = []string{
	"Rinse aid typically lasts 1-2 months before needing refill.",
	"The setting dial is usually on the rinse aid dispenser cap.",
	"If you see blue streaks on dishes, reduce the setting.",
	"Open door slightly after cycle to let steam escape and improve drying.",
}

// Recommend derives a dial setting from water hardness and the problems the
// household reports.
func Recommend(in model.RinseAidInput) model.RinseAidRecommendation {
	rec := model.RinseAidRecommendation{UsageTips: slices.Clone(usageTips)}
	if in.DispenserEmpty {
		rec.UrgentActions = []string{RefillAction}
	}

	hasIssue := in.HasSpotIssues || in.HasDryingIssues
	switch in.WaterHardness {
	case model.HardnessHard:
		rec.SettingRecommendation = model.RinseAidMaximum
		rec.Reasoning = "With hard water, maximum rinse aid helps prevent mineral deposits from forming as water dries on dishes."
	case model.HardnessModerate:
		rec.SettingRecommendation = model.RinseAidMedium
		if hasIssue {
			rec.SettingRecommendation = model.RinseAidHigh
		}
		// Only spots change the wording; drying alone still raises the setting.
		rec.Reasoning = "Medium setting works well for moderate water hardness."
		if in.HasSpotIssues {
			rec.Reasoning = "Moderate water with spot issues benefits from increased rinse aid to help water sheet off."
		}
	case model.HardnessSoft:
		if hasIssue {
			rec.SettingRecommendation = model.RinseAidMedium
			rec.Reasoning = "Even with soft water, spot or drying issues indicate you could benefit from more rinse aid."
		} else {
			rec.SettingRecommendation = model.RinseAidLow
			rec.Reasoning = "Soft water needs less rinse aid. Low setting prevents residue from excess rinse aid."
		}
	default:
		rec.SettingRecommendation = model.RinseAidMedium
		rec.Reasoning = "Medium is a good starting point until you test your water hardness. Adjust based on results."
	}
	return rec
}

func Explanation() model.RinseAidExplanation {
	return model.RinseAidExplanation{
		Title:    "How Rinse Aid Works",
		WhatItIs: "Rinse aid is a surfactant that reduces the surface tension of water, helping it sheet off dishes instead of forming droplets.",
		HowItWorks: []string{
			"Water naturally forms droplets due to surface tension.",
			`Rinse aid breaks this surface tension, making water "sheet" off dishes.`,
			"When water sheets off, it takes minerals and residue with it.",
			"Less water remaining on dishes means fewer spots when it dries.",
			"Rinse aid is released during the final rinse, not during washing.",
		},
		Benefits: []string{
			"Reduces water spots on glasses and cutlery",
			"Improves drying - dishes dry faster and more completely",
			"Prevents mineral deposits from hard water",
			"Helps plastic items dry better (they retain less heat)",
			"Makes unloading easier - no towel-drying needed",
		},
		CommonMisconceptions: []model.Misconception{
			{
				Misconception: `Rinse aid is optional if I use pods with "rinse aid included"`,
				Truth:         "Pod rinse aid is minimal and releases during wash, not the rinse. Fill the dispenser for best results.",
			},
			{
				Misconception: "Rinse aid adds chemicals to my dishes",
				Truth:         "Rinse aid is rinsed away with water. The tiny amount remaining evaporates as dishes dry.",
			},
			{
				Misconception: "More rinse aid is always better",
				Truth:         "Too much can leave a blue/oily film on dishes. Adjust to your water hardness.",
			},
			{
				Misconception: "I don't need rinse aid with soft water",
				Truth:         "Even soft water benefits from rinse aid for drying. You just need less of it.",
			},
		},
	}
}

var dryingTips = map[model.ItemCategory][]string{
	model.CategoryPlastic: {
		"Plastic holds less heat than ceramic or glass, so it doesn't dry as well.",
		"Always place plastic on the top rack, away from the heating element.",
		"Plastic containers will likely need a quick hand-dry - this is normal.",
		"Crack the door open after the cycle to let steam escape.",
		"Consider removing plastic items first and letting ceramics/glass dry naturally.",
	},
	model.CategoryGlass: {
		"Glasses should dry well if rinse aid is set correctly.",
		"Angle glasses between tines, not over them, for better water runoff.",
		"Open door slightly after cycle to prevent condensation spots.",
		"If glasses are still spotty, increase rinse aid setting.",
		"For perfect results, unload bottom rack first so drops don't fall on glasses below.",
	},
	model.CategoryCeramic: {
		"Ceramics retain heat well and typically dry fastest.",
		"Angle plates and bowls for water to run off.",
		"Heavy ceramics may have pools in concave areas - tip to drain.",
		"Let the heated dry cycle complete for best results.",
	},
	model.CategoryMixed: {
		"Open the door slightly after the cycle to let steam escape.",
		"Unload bottom rack first so drips don't fall on dry items below.",
		"Plastic will need a quick wipe - this is normal.",
		"Increase rinse aid if glasses or cutlery still have spots.",
		"Make sure rinse aid dispenser is full for best drying.",
	},
}

// DryingTips returns tips for a category. Unrecognised categories get the
// mixed-load list.
func DryingTips(c model.ItemCategory) []string {
	tips, ok := dryingTips[c]
	if !ok {
		tips = dryingTips[model.CategoryMixed]
	}
	return slices.Clone(tips)
}

// DiagnoseSpots tells water spots, mineral deposits and etching apart.
// Spots that wipe off take precedence over the vinegar test; hardness is
// accepted for context but does not change the outcome.
func DiagnoseSpots(in model.SpotInput) model.SpotDiagnosis {
	switch {
	case in.SpotsWipeOff:
		return model.SpotDiagnosis{
			LikelyCause: model.SpotInsufficientRinseAid,
			Solutions: []string{
				"Increase rinse aid setting to maximum.",
				"Check rinse aid dispenser is full.",
				"Open door after cycle to let steam escape.",
				"Make sure items are angled for water to run off.",
			},
			PreventionTips: []string{
				"Keep rinse aid topped up - check monthly.",
				"Set rinse aid dial higher for hard water.",
				"Don't overload - items need space for water to drain.",
			},
		}
	case in.NeedsVinegarToRemove:
		return model.SpotDiagnosis{
			LikelyCause: model.SpotHardWaterDeposits,
			Solutions: []string{
				"Soak affected items in white vinegar for 15-30 minutes.",
				"Increase detergent amount by 50% for hard water.",
				"Use dishwasher salt if your machine has a salt compartment.",
				"Increase rinse aid to maximum.",
				"Run a cleaning cycle with vinegar to clear machine buildup.",
			},
			PreventionTips: []string{
				"Address your water hardness - test and adjust detergent.",
				"Fill salt compartment if available.",
				"Monthly vinegar cleaning cycle prevents buildup.",
				"Consider a water softener for severe hard water.",
			},
		}
	default:
		return model.SpotDiagnosis{
			LikelyCause: model.SpotEtching,
			IsPermanent: true,
			Solutions: []string{
				"Unfortunately, etching is permanent glass damage.",
				"The cloudy surface cannot be removed or restored.",
				"Affected glasses may still be usable but won't look clear.",
			},
			PreventionTips: []string{
				"Use less detergent - excess detergent causes etching over time.",
				"Reduce rinse aid if you have soft water.",
				"Use Delicate cycle for fine glassware.",
				"Hand wash valuable or antique glasses.",
				"Avoid high-temperature cycles for glassware.",
			},
		}
	}
}

func Settings() []model.RinseAidSetting {
	return model.RinseAidSettings()
}
