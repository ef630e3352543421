package hardness

import "dishmate/internal/domain/model"

// symptomWeight is what a reported symptom adds when present and when
// explicitly absent.
type symptomWeight struct {
	flag                   func(model.SymptomFlags) *bool
	presentHard, absentSoft int
	presentSoft, absentHard int
}

var symptomWeights = []symptomWeight{
	{flag: func(f model.SymptomFlags) *bool { return f.WhiteResidueOnDishes }, presentHard: 2, absentSoft: 1},
	{flag: func(f model.SymptomFlags) *bool { return f.CloudyGlasses }, presentHard: 1},
	{flag: func(f model.SymptomFlags) *bool { return f.ScaleInKettle }, presentHard: 2, absentSoft: 1},
	{flag: func(f model.SymptomFlags) *bool { return f.SoapLathersEasily }, presentSoft: 2, absentHard: 1},
	{flag: func(f model.SymptomFlags) *bool { return f.SpottyGlassware }, presentHard: 1},
}

// Score sums the hard and soft indicators for the reported symptoms.
func Score(flags model.SymptomFlags) (hard, soft int) {
	for _, w := range symptomWeights {
		v := w.flag(flags)
		if v == nil {
			continue
		}
		if *v {
			hard += w.presentHard
			soft += w.presentSoft
		} else {
			hard += w.absentHard
			soft += w.absentSoft
		}
	}
	return hard, soft
}

type symptomRung struct {
	match         func(hard, soft int) bool
	hardness      model.WaterHardness
	confidence    model.Confidence
	recommendTest bool
}

// symptomLadder is evaluated top down; the last rung always matches.
var symptomLadder = []symptomRung{
	{func(h, _ int) bool { return h >= 4 }, model.HardnessHard, model.ConfidenceHigh, false},
	{func(h, s int) bool { return h >= 2 && s < 2 }, model.HardnessHard, model.ConfidenceMedium, true},
	{func(_, s int) bool { return s >= 3 }, model.HardnessSoft, model.ConfidenceMedium, false},
	{func(h, s int) bool { return s >= 1 && h == 0 }, model.HardnessSoft, model.ConfidenceLow, true},
	{func(int, int) bool { return true }, model.HardnessModerate, model.ConfidenceLow, true},
}

// EstimateFromSymptoms turns everyday observations into a likely hardness.
// Unreported symptoms (nil) contribute nothing.
func EstimateFromSymptoms(flags model.SymptomFlags) model.SymptomEstimate {
	hard, soft := Score(flags)

	var est model.SymptomEstimate
	for _, r := range symptomLadder {
		if r.match(hard, soft) {
			est = model.SymptomEstimate{
				LikelyHardness: r.hardness,
				Confidence:     r.confidence,
				RecommendTest:  r.recommendTest,
			}
			break
		}
	}

	switch {
	case hard >= 4:
		est.Reasoning = "Multiple hard water indicators present: white residue, scale buildup, spotty glassware."
	case soft >= 3:
		est.Reasoning = "Soap lathers easily and no mineral buildup observed - typical of soft water."
	default:
		est.Reasoning = "Mixed or limited indicators. A simple test would give more accurate results."
	}
	return est
}
