package model

type LoadInput struct {
	Items     []ItemType   `json:"items"`
	SoilTypes []SoilType   `json:"soil_types"`
	Quantity  LoadQuantity `json:"quantity"`
	Urgency   Urgency      `json:"urgency"`
	// WaterHardness defaults to moderate when empty.
	WaterHardness WaterHardness `json:"water_hardness,omitempty"`
}

// LoadCalculation is the intermediate state the cycle rules are evaluated against.
type LoadCalculation struct {
	NeedsSanitise bool         `json:"needs_sanitise"`
	NeedsGentle   bool         `json:"needs_gentle"`
	SoilScore     int          `json:"soil_score"`
	GreaseFactor  GreaseFactor `json:"grease_factor"`
	HasAcidicRisk bool         `json:"has_acidic_risk"`
}

type Dosing struct {
	PrewashDose string `json:"prewash_dose"`
	MainDose    string `json:"main_dose"`
}

type Recommendation struct {
	Cycle          CycleType `json:"cycle"`
	PrewashDose    string    `json:"prewash_dose"`
	MainDose       string    `json:"main_dose"`
	PrerinseAdvice string    `json:"prerinse_advice"`
	LoadingTips    []string  `json:"loading_tips"`
	Reasoning      string    `json:"reasoning"`
	// Warnings is nil, not empty, when nothing applies.
	Warnings []string `json:"warnings,omitempty"`
}
