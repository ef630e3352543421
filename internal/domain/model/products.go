package model

type DetergentFormat string

const (
	FormatPowder  DetergentFormat = "powder"
	FormatPods    DetergentFormat = "pods"
	FormatLiquid  DetergentFormat = "liquid"
	FormatTablets DetergentFormat = "tablets"
)

func DetergentFormats() []DetergentFormat {
	return []DetergentFormat{FormatPowder, FormatPods, FormatTablets, FormatLiquid}
}

type UsagePattern string

const (
	// UsageDaily is one or more loads per day.
	UsageDaily UsagePattern = "daily"
	// UsageRegular is four to six loads per week.
	UsageRegular UsagePattern = "regular"
	// UsageOccasional is one to three loads per week.
	UsageOccasional UsagePattern = "occasional"
)

func UsagePatterns() []UsagePattern {
	return []UsagePattern{UsageDaily, UsageRegular, UsageOccasional}
}

type MainConcern string

const (
	ConcernCleanDishes     MainConcern = "clean_dishes"
	ConcernConvenience     MainConcern = "convenience"
	ConcernCost            MainConcern = "cost"
	ConcernEco             MainConcern = "eco"
	ConcernSpecificProblem MainConcern = "specific_problem"
)

func MainConcerns() []MainConcern {
	return []MainConcern{ConcernCleanDishes, ConcernConvenience, ConcernCost, ConcernEco, ConcernSpecificProblem}
}

func ItemCategories() []ItemCategory {
	return []ItemCategory{CategoryPlastic, CategoryGlass, CategoryCeramic, CategoryMixed}
}

type EnzymeContent string

const (
	EnzymeHigh     EnzymeContent = "high"
	EnzymeMedium   EnzymeContent = "medium"
	EnzymeLow      EnzymeContent = "low"
	EnzymeVariable EnzymeContent = "variable"
)

type DetergentFormatInfo struct {
	Format         DetergentFormat `json:"format"`
	Pros           []string        `json:"pros"`
	Cons           []string        `json:"cons"`
	BestFor        []string        `json:"best_for"`
	CostPerWash    string          `json:"cost_per_wash"`
	PrewashCapable bool            `json:"prewash_capable"`
	EnzymeContent  EnzymeContent   `json:"enzyme_content"`
}

type DetergentInput struct {
	CurrentFormat    DetergentFormat `json:"current_format,omitempty"`
	WaterHardness    WaterHardness   `json:"water_hardness"`
	UsagePattern     UsagePattern    `json:"usage_pattern"`
	MainConcern      MainConcern     `json:"main_concern"`
	TypicalSoilTypes []SoilType      `json:"typical_soil_types"`
	HasGreasyIssues  bool            `json:"has_greasy_issues,omitempty"`
	HasResidueIssues bool            `json:"has_residue_issues,omitempty"`
}

type DetergentRecommendation struct {
	RecommendedFormat DetergentFormat `json:"recommended_format"`
	Reasoning         string          `json:"reasoning"`
	UsageInstructions []string        `json:"usage_instructions"`
	Warnings          []string        `json:"warnings,omitempty"`
	CostComparison    string          `json:"cost_comparison,omitempty"`
	AlternativeFormat DetergentFormat `json:"alternative_format,omitempty"`
	AlternativeReason string          `json:"alternative_reason,omitempty"`
}

type FormatComparison struct {
	Format1   DetergentFormatInfo `json:"format1"`
	Format2   DetergentFormatInfo `json:"format2"`
	Winner    DetergentFormat     `json:"winner"`
	WhyWinner string              `json:"why_winner"`
}

type KeyPoint struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}

type PowderVsPodsExplanation struct {
	Headline   string     `json:"headline"`
	Summary    string     `json:"summary"`
	KeyPoints  []KeyPoint `json:"key_points"`
	Conclusion string     `json:"conclusion"`
}

type RinseAidSetting string

const (
	RinseAidLow     RinseAidSetting = "low"
	RinseAidMedium  RinseAidSetting = "medium"
	RinseAidHigh    RinseAidSetting = "high"
	RinseAidMaximum RinseAidSetting = "maximum"
)

func RinseAidSettings() []RinseAidSetting {
	return []RinseAidSetting{RinseAidLow, RinseAidMedium, RinseAidHigh, RinseAidMaximum}
}

type ItemCategory string

const (
	CategoryPlastic ItemCategory = "plastic"
	CategoryGlass   ItemCategory = "glass"
	CategoryCeramic ItemCategory = "ceramic"
	CategoryMixed   ItemCategory = "mixed"
)

type SpotCause string

const (
	SpotInsufficientRinseAid SpotCause = "insufficient_rinse_aid"
	SpotHardWaterDeposits    SpotCause = "hard_water_deposits"
	SpotEtching              SpotCause = "etching"
)

type RinseAidInput struct {
	WaterHardness   WaterHardness `json:"water_hardness"`
	HasSpotIssues   bool          `json:"has_spot_issues"`
	HasDryingIssues bool          `json:"has_drying_issues"`
	DispenserEmpty  bool          `json:"dispenser_empty,omitempty"`
}

type RinseAidRecommendation struct {
	SettingRecommendation RinseAidSetting `json:"setting_recommendation"`
	Reasoning             string          `json:"reasoning"`
	UsageTips             []string        `json:"usage_tips"`
	UrgentActions         []string        `json:"urgent_actions,omitempty"`
}

type Misconception struct {
	Misconception string `json:"misconception"`
	Truth         string `json:"truth"`
}

type RinseAidExplanation struct {
	Title                string          `json:"title"`
	WhatItIs             string          `json:"what_it_is"`
	HowItWorks           []string        `json:"how_it_works"`
	Benefits             []string        `json:"benefits"`
	CommonMisconceptions []Misconception `json:"common_misconceptions"`
}

type SpotInput struct {
	SpotsWipeOff         bool          `json:"spots_wipe_off"`
	NeedsVinegarToRemove bool          `json:"needs_vinegar_to_remove,omitempty"`
	WaterHardness        WaterHardness `json:"water_hardness"`
}

type SpotDiagnosis struct {
	LikelyCause    SpotCause `json:"likely_cause"`
	Solutions      []string  `json:"solutions"`
	IsPermanent    bool      `json:"is_permanent"`
	PreventionTips []string  `json:"prevention_tips"`
}
