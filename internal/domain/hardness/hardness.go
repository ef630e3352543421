// Package hardness estimates household water hardness from home tests,
// symptoms and city data, and turns a hardness level into settings advice.
package hardness

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"dishmate/internal/domain/model"
)

func SoapBottleTest() model.WaterHardnessTest {
	return model.WaterHardnessTest{
		Name:        "Soap Bottle Test",
		Description: "A simple home test to estimate your water hardness using dish soap.",
		Materials: []string{
			"Clear plastic bottle with cap (300-500ml)",
			"Tap water from your kitchen",
			"Liquid dish soap (any brand)",
		},
		Steps: []string{
			"Fill the bottle about 1/3 full with cold tap water.",
			"Add 10 drops of liquid dish soap.",
			"Screw the cap on tightly.",
			"Shake vigorously for 10 seconds.",
			"Let it settle for a moment.",
			"Observe the suds and water clarity.",
		},
		InterpretationGuide: map[string]string{
			"hard":     "Few suds on top, water looks milky or cloudy",
			"moderate": "Some suds, water slightly cloudy",
			"soft":     "Lots of fluffy suds, water is clear beneath them",
		},
	}
}

type testReading struct {
	suds    model.SudsAmount
	clarity model.WaterClarity
}

var testOutcomes = map[testReading]model.TestResult{
	{model.SudsFew, model.ClarityMilky}: {
		Hardness:    model.HardnessHard,
		Confidence:  model.ConfidenceHigh,
		Explanation: "Few suds and milky water strongly indicate hard water. Minerals are interfering with soap.",
	},
	{model.SudsLots, model.ClarityClear}: {
		Hardness:    model.HardnessSoft,
		Confidence:  model.ConfidenceHigh,
		Explanation: "Lots of suds and clear water indicate soft water. Soap lathers easily without minerals interfering.",
	},
	{model.SudsSome, model.ClaritySlightlyCloudy}: {
		Hardness:    model.HardnessModerate,
		Confidence:  model.ConfidenceMedium,
		Explanation: "Moderate suds and slightly cloudy water suggest moderately hard water.",
	},
	{model.SudsSome, model.ClarityMilky}:          leansHard,
	{model.SudsFew, model.ClaritySlightlyCloudy}:  leansHard,
	{model.SudsSome, model.ClarityClear}:          leansSoft,
	{model.SudsLots, model.ClaritySlightlyCloudy}: leansSoft,
}

var (
	leansHard = model.TestResult{
		Hardness:                model.HardnessHard,
		Confidence:              model.ConfidenceLow,
		SuggestProfessionalTest: true,
		Explanation:             "Results suggest hard water but are not definitive. A professional test would be more accurate.",
	}
	leansSoft = model.TestResult{
		Hardness:                model.HardnessModerate,
		Confidence:              model.ConfidenceLow,
		SuggestProfessionalTest: true,
		Explanation:             "Results are mixed. Your water is likely soft to moderate. Consider a professional test for certainty.",
	}
	inconclusive = model.TestResult{
		Hardness:                model.HardnessModerate,
		Confidence:              model.ConfidenceLow,
		SuggestProfessionalTest: true,
		Explanation:             "Results are inconclusive. A professional water test is recommended.",
	}
)

// InterpretTest reads a soap bottle test. Combinations outside the table,
// such as few suds over clear water, are inconclusive.
func InterpretTest(suds model.SudsAmount, clarity model.WaterClarity) model.TestResult {
	if r, ok := testOutcomes[testReading{suds, clarity}]; ok {
		return r
	}
	return inconclusive
}

func Recommendations(h model.WaterHardness) model.HardnessRecommendations {
	switch h {
	case model.HardnessHard:
		return model.HardnessRecommendations{
			DetergentAdjustment:  "Increase by 50-100%. Use about double the packet recommendation.",
			UseSalt:              true,
			RinseAidSetting:      model.RinseAidMaximum,
			MaintenanceFrequency: "Monthly cleaning cycles, fortnightly filter check",
			Tips: []string{
				"Fill the salt compartment if your machine has one - this is critical for hard water.",
				"Increase detergent significantly - the packet dose is for average water.",
				"Set rinse aid to maximum to prevent mineral spots.",
				"Run monthly vinegar cleaning cycles to prevent scale buildup.",
				"Consider a water softener if your water is very hard.",
			},
		}
	case model.HardnessSoft:
		return model.HardnessRecommendations{
			DetergentAdjustment:  "Reduce by 25-50%. Use less than the packet says.",
			RinseAidSetting:      model.RinseAidLow,
			MaintenanceFrequency: "Quarterly cleaning cycles, monthly filter check",
			Tips: []string{
				"Less detergent is better with soft water - excess can etch glasses over time.",
				"Skip the salt compartment - it's not needed with soft water.",
				"Use low rinse aid setting - too much can leave residue.",
				"Be careful with delicate glassware - use Delicate cycle.",
				"You may not need pre-wash detergent for light loads.",
			},
		}
	case model.HardnessModerate:
		return model.HardnessRecommendations{
			DetergentAdjustment:  "Use standard packet recommendations.",
			UseSalt:              true,
			RinseAidSetting:      model.RinseAidMedium,
			MaintenanceFrequency: "Monthly cleaning cycles, monthly filter check",
			Tips: []string{
				"Packet recommendations should work well for you.",
				"Consider using the salt compartment for extra protection.",
				"Medium rinse aid setting is a good starting point.",
				"Adjust based on results - increase detergent if you see spots.",
			},
		}
	default:
		return model.HardnessRecommendations{
			DetergentAdjustment:  "Start with packet recommendations and adjust based on results.",
			UseSalt:              true,
			RinseAidSetting:      model.RinseAidMedium,
			MaintenanceFrequency: "Monthly cleaning cycles until you know your water",
			FirstStep:            "Do the soap bottle test to determine your water hardness.",
			Tips: []string{
				"Test your water hardness first - it affects everything.",
				"Check your local water authority website for hardness data.",
				"Start with medium settings and adjust based on results.",
				"Look for signs: white residue = hard water, over-sudsing = soft water.",
			},
		}
	}
}

type cityData struct {
	hardness model.WaterHardness
	ppmRange string
	source   string
}

var cityHardness = map[string]cityData{
	"sydney":     {model.HardnessSoft, "40-50 ppm", "Sydney Water"},
	"melbourne":  {model.HardnessSoft, "10-40 ppm", "Melbourne Water"},
	"brisbane":   {model.HardnessModerate, "80-120 ppm", "Urban Utilities"},
	"perth":      {model.HardnessModerate, "80-150 ppm", "Water Corporation"},
	"adelaide":   {model.HardnessHard, "150-350 ppm", "SA Water"},
	"hobart":     {model.HardnessSoft, "10-30 ppm", "TasWater"},
	"darwin":     {model.HardnessSoft, "30-50 ppm", "Power and Water"},
	"canberra":   {model.HardnessSoft, "20-40 ppm", "Icon Water"},
	"gold_coast": {model.HardnessModerate, "80-120 ppm", "City of Gold Coast"},
	"newcastle":  {model.HardnessSoft, "40-60 ppm", "Hunter Water"},
}

const unknownCityMessage = "City not in our database. Please test your water or check with your local water authority."

var whitespaceRun = regexp.MustCompile(`\s+`)

// CityHardness looks up one of the Australian cities in the table. Lookup is
// case-insensitive and whitespace runs match underscores.
func CityHardness(city string) model.CityHardnessResult {
	key := whitespaceRun.ReplaceAllString(strings.ToLower(city), "_")
	data, ok := cityHardness[key]
	if !ok {
		return model.CityHardnessResult{
			City:     city,
			Hardness: model.HardnessUnknown,
			Message:  unknownCityMessage,
		}
	}
	return model.CityHardnessResult{
		City:     displayName(city),
		Hardness: data.hardness,
		PPMRange: data.ppmRange,
		Source:   data.source,
	}
}

// Cities lists the known city keys.
func Cities() []string {
	return []string{
		"sydney", "melbourne", "brisbane", "perth", "adelaide",
		"hobart", "darwin", "canberra", "gold_coast", "newcastle",
	}
}

func displayName(city string) string {
	if city == "" {
		return city
	}
	r, size := utf8.DecodeRuneInString(city)
	return strings.ToUpper(string(r)) + strings.ToLower(city[size:])
}

func Explanation() model.HardnessExplanation {
	return model.HardnessExplanation{
		WhatIsIt: "Water hardness measures the amount of dissolved minerals, primarily calcium and magnesium, in your water supply. These minerals are natural and safe to drink, but affect how well soap and detergent work.",
		WhyItMatters: []string{
			"Hard water reduces detergent effectiveness - minerals bind to cleaning agents.",
			"Minerals can deposit on dishes as white spots or film.",
			"Scale builds up inside your dishwasher over time.",
			"You need more detergent with hard water to get the same cleaning.",
			"Soft water needs less detergent - too much can etch glasses.",
		},
		MeasurementUnits: []string{
			"ppm (parts per million) - same as mg/L",
			"gpg (grains per gallon) - older US unit",
			"German degrees (°dH) - European scale",
			"French degrees (°f) - sometimes used in Australia",
		},
		HardnessScale: map[model.WaterHardness]model.HardnessBand{
			model.HardnessSoft: {
				Range:       "0-60 ppm (0-60 mg/L)",
				Description: "Water lathers easily. Use less detergent to avoid residue.",
			},
			model.HardnessModerate: {
				Range:       "61-120 ppm (61-120 mg/L)",
				Description: "Average water. Packet detergent recommendations work well.",
			},
			model.HardnessHard: {
				Range:       "121-180 ppm (121-180 mg/L)",
				Description: "Noticeably hard water. Increase detergent and use salt compartment.",
			},
			model.HardnessUnknown: {
				Range:       "Not tested",
				Description: "Test your water to get accurate recommendations.",
			},
		},
	}
}

func Levels() []model.WaterHardness {
	return model.HardnessLevels()
}
