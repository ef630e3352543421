package model

type SudsAmount string

const (
	SudsFew  SudsAmount = "few"
	SudsSome SudsAmount = "some"
	SudsLots SudsAmount = "lots"
)

func SudsAmounts() []SudsAmount { return []SudsAmount{SudsFew, SudsSome, SudsLots} }

type WaterClarity string

const (
	ClarityMilky          WaterClarity = "milky"
	ClaritySlightlyCloudy WaterClarity = "slightly_cloudy"
	ClarityClear          WaterClarity = "clear"
)

func WaterClarities() []WaterClarity {
	return []WaterClarity{ClarityMilky, ClaritySlightlyCloudy, ClarityClear}
}

type WaterHardnessTest struct {
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Materials           []string          `json:"materials"`
	Steps               []string          `json:"steps"`
	InterpretationGuide map[string]string `json:"interpretation_guide"`
}

type TestResult struct {
	Hardness                WaterHardness `json:"hardness"`
	Confidence              Confidence    `json:"confidence"`
	SuggestProfessionalTest bool          `json:"suggest_professional_test"`
	Explanation             string        `json:"explanation"`
}

// SymptomFlags are tri-state: nil means the symptom was not reported.
type SymptomFlags struct {
	WhiteResidueOnDishes *bool `json:"white_residue_on_dishes,omitempty"`
	CloudyGlasses        *bool `json:"cloudy_glasses,omitempty"`
	ScaleInKettle        *bool `json:"scale_in_kettle,omitempty"`
	SoapLathersEasily    *bool `json:"soap_lathers_easily,omitempty"`
	SpottyGlassware      *bool `json:"spotty_glassware,omitempty"`
}

type SymptomEstimate struct {
	LikelyHardness WaterHardness `json:"likely_hardness"`
	Confidence     Confidence    `json:"confidence"`
	RecommendTest  bool          `json:"recommend_test"`
	Reasoning      string        `json:"reasoning"`
}

type HardnessRecommendations struct {
	DetergentAdjustment  string          `json:"detergent_adjustment"`
	UseSalt              bool            `json:"use_salt"`
	RinseAidSetting      RinseAidSetting `json:"rinse_aid_setting"`
	MaintenanceFrequency string          `json:"maintenance_frequency"`
	FirstStep            string          `json:"first_step,omitempty"`
	Tips                 []string        `json:"tips"`
}

type CityHardnessResult struct {
	City     string        `json:"city"`
	Hardness WaterHardness `json:"hardness"`
	PPMRange string        `json:"ppm_range,omitempty"`
	Source   string        `json:"source,omitempty"`
	Message  string        `json:"message,omitempty"`
}

type HardnessBand struct {
	Range       string `json:"range"`
	Description string `json:"description"`
}

type HardnessExplanation struct {
	WhatIsIt         string                         `json:"what_is_it"`
	WhyItMatters     []string                       `json:"why_it_matters"`
	MeasurementUnits []string                       `json:"measurement_units"`
	HardnessScale    map[WaterHardness]HardnessBand `json:"hardness_scale"`
}
