package load

import (
	"math"
	"strconv"

	"dishmate/internal/domain/model"
)

var soilScores = map[model.SoilType]int{
	model.SoilLight:    1,
	model.SoilEveryday: 2,
	model.SoilStarchy:  2,
	model.SoilAcidic:   2,
	model.SoilProtein:  3,
	model.SoilGreasy:   4,
	model.SoilHeavy:    5,
}

// SoilScore returns the worst severity present, 1 for an empty set.
func SoilScore(soils []model.SoilType) int {
	score := 1
	for _, s := range soils {
		if v, ok := soilScores[s]; ok && v > score {
			score = v
		}
	}
	return score
}

func GreaseFactor(soils []model.SoilType) model.GreaseFactor {
	if containsSoil(soils, model.SoilGreasy) {
		return model.GreaseHigh
	}
	if containsSoil(soils, model.SoilProtein) {
		return model.GreaseMedium
	}
	return model.GreaseLow
}

func Calculate(in model.LoadInput) model.LoadCalculation {
	return model.LoadCalculation{
		NeedsSanitise: containsItem(in.Items, model.ItemBabyItems),
		NeedsGentle:   containsItem(in.Items, model.ItemDelicate),
		SoilScore:     SoilScore(in.SoilTypes),
		GreaseFactor:  GreaseFactor(in.SoilTypes),
		HasAcidicRisk: containsSoil(in.SoilTypes, model.SoilAcidic),
	}
}

var prewashDoses = map[model.GreaseFactor]float64{
	model.GreaseHigh:   1.5,
	model.GreaseMedium: 1,
	model.GreaseLow:    0.5,
}

func mainDoseBase(soilScore int) float64 {
	switch {
	case soilScore >= 4:
		return 2.5
	case soilScore == 3:
		return 2
	case soilScore == 2:
		return 1.5
	default:
		return 1
	}
}

func quantityFactor(q model.LoadQuantity) float64 {
	switch q {
	case model.QuantityLight:
		return 0.75
	case model.QuantityFull:
		return 1.25
	}
	return 1
}

func hardnessFactor(h model.WaterHardness) float64 {
	if h == model.HardnessHard {
		return 1.5
	}
	return 1
}

// FormatDose rounds to the nearest half tablespoon, halves away from zero.
func FormatDose(amount float64, prewash bool) string {
	rounded := math.Round(amount*2) / 2
	unit := "tablespoons"
	if rounded == 1 {
		unit = "tablespoon"
	}
	location := "in dispenser"
	if prewash {
		location = "in the door"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + unit + " " + location
}

// Dosing sizes both detergent doses. An empty hardness is treated as moderate.
func Dosing(soilScore int, grease model.GreaseFactor, cycle model.CycleType, quantity model.LoadQuantity, hardness model.WaterHardness) model.Dosing {
	if cycle == model.CycleQuick {
		main := 1 * hardnessFactor(hardness) * quantityFactor(quantity)
		return model.Dosing{PrewashDose: "None needed", MainDose: FormatDose(main, false)}
	}

	prewash := prewashDoses[grease]
	if cycle == model.CycleDelicate {
		prewash = 0.5
	}
	main := mainDoseBase(soilScore) * quantityFactor(quantity)

	prewash *= hardnessFactor(hardness)
	main *= hardnessFactor(hardness)

	return model.Dosing{PrewashDose: FormatDose(prewash, true), MainDose: FormatDose(main, false)}
}

var prerinseAdvice = map[model.SoilType]string{
	model.SoilHeavy:    "Scrape off large chunks and burnt bits. Don't rinse.",
	model.SoilGreasy:   "Don't rinse - grease helps detergent work. Scrape solids only.",
	model.SoilProtein:  "Light scrape only. Dried protein is fine - enzymes handle it.",
	model.SoilStarchy:  "No rinsing needed. Starch dissolves easily.",
	model.SoilAcidic:   "Run soon - acidic foods can stain if left too long.",
	model.SoilEveryday: "Scrape large food pieces into bin. No rinsing needed.",
	model.SoilLight:    "Scrape large food pieces into bin. No rinsing needed.",
}

var prerinsePriority = []model.SoilType{
	model.SoilHeavy, model.SoilGreasy, model.SoilProtein, model.SoilStarchy, model.SoilAcidic,
}

func PrerinseAdvice(soils []model.SoilType) string {
	for _, s := range prerinsePriority {
		if containsSoil(soils, s) {
			return prerinseAdvice[s]
		}
	}
	return prerinseAdvice[model.SoilEveryday]
}

var itemTips = map[model.ItemType]string{
	model.ItemGlasses:       "Angle glasses between tines, not over them",
	model.ItemBowls:         "Face bowls toward centre, angled down",
	model.ItemPots:          "Place pots and pans on bottom rack, angled for water access",
	model.ItemPans:          "Place pots and pans on bottom rack, angled for water access",
	model.ItemContainers:    "Plastic on top rack only - bottoms warp with heat",
	model.ItemBakeware:      "Angle bakeware to face spray arm, don't lay flat",
	model.ItemUtensils:      "Mix utensil handles up and down to prevent nesting",
	model.ItemMugs:          "Place mugs at an angle to prevent water pooling",
	model.ItemCuttingBoards: "Place cutting boards on sides, don't lay flat",
}

const fullLoadTip = "Don't block spray arm rotation - spin it to check"

func LoadingTips(items []model.ItemType, quantity model.LoadQuantity) []string {
	tips := make([]string, 0, len(items)+1)
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		tip, ok := itemTips[item]
		if !ok {
			continue
		}
		if _, dup := seen[tip]; dup {
			continue
		}
		seen[tip] = struct{}{}
		tips = append(tips, tip)
	}
	if quantity == model.QuantityFull {
		tips = append(tips, fullLoadTip)
	}
	return tips
}

func Reasoning(cycle model.CycleType, soilScore int, grease model.GreaseFactor) string {
	switch cycle {
	case model.CycleQuick:
		return "Quick cycle is fine for lightly soiled items. No pre-wash dose needed since there's minimal grease to tackle."
	case model.CycleEco:
		return "Eco cycle is ideal here. The longer run time at lower temperature gives enzymes plenty of time to work - uses less energy too."
	case model.CycleNormal:
		if soilScore == 3 {
			return "Normal cycle works best because protein residue needs enzyme activation time. The pre-wash detergent will handle any grease before the main wash."
		}
		if grease == model.GreaseHigh {
			return "Normal cycle needed to give enzymes time to work on the grease. Pre-wash detergent is critical."
		}
		return "Normal cycle provides good balance of cleaning power and efficiency for this load."
	case model.CycleIntensive:
		return "Intensive cycle needed for heavy/greasy load. The higher temperature and longer wash time will tackle baked-on and greasy residue."
	case model.CycleDelicate:
		return "Delicate cycle uses lower pressure and temperature to protect fragile items. Handle with care."
	case model.CycleSanitise:
		return "Sanitise cycle uses high-temperature final rinse to eliminate bacteria - important for baby items."
	}
	panic("load: unknown cycle type " + string(cycle))
}

const (
	WarnQuickDowngraded = "Quick cycle won't clean this well - using normal instead."
	WarnHandWash        = "Consider hand washing heavily soiled delicate items."
	WarnAcidic          = "Run soon to prevent staining from acidic foods."
)

// Recommend runs the full advisor for one load.
func Recommend(in model.LoadInput) model.Recommendation {
	calc := Calculate(in)
	cycle := SelectCycle(calc, in.Urgency)

	var warnings []string
	if in.Urgency == model.UrgencyNeedFast && calc.SoilScore > 2 {
		warnings = append(warnings, WarnQuickDowngraded)
	}
	if calc.NeedsGentle && calc.SoilScore > 2 {
		warnings = append(warnings, WarnHandWash)
	}
	if calc.HasAcidicRisk {
		warnings = append(warnings, WarnAcidic)
	}

	hardness := in.WaterHardness
	if hardness == "" {
		hardness = model.HardnessModerate
	}
	dose := Dosing(calc.SoilScore, calc.GreaseFactor, cycle, in.Quantity, hardness)

	return model.Recommendation{
		Cycle:          cycle,
		PrewashDose:    dose.PrewashDose,
		MainDose:       dose.MainDose,
		PrerinseAdvice: PrerinseAdvice(in.SoilTypes),
		LoadingTips:    LoadingTips(in.Items, in.Quantity),
		Reasoning:      Reasoning(cycle, calc.SoilScore, calc.GreaseFactor),
		Warnings:       warnings,
	}
}

func containsSoil(soils []model.SoilType, want model.SoilType) bool {
	for _, s := range soils {
		if s == want {
			return true
		}
	}
	return false
}

func containsItem(items []model.ItemType, want model.ItemType) bool {
	for _, i := range items {
		if i == want {
			return true
		}
	}
	return false
}
