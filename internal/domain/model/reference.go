package model

// CycleInfo is the fixed description of one wash program.
type CycleInfo struct {
	Cycle          CycleType `json:"cycle"`
	Name           string    `json:"name"`
	Duration       string    `json:"duration"`
	Temperature    string    `json:"temperature"`
	Description    string    `json:"description"`
	HowItWorks     []string  `json:"how_it_works"`
	BestFor        []string  `json:"best_for"`
	NotSuitableFor []string  `json:"not_suitable_for"`
	EnzymeFriendly bool      `json:"enzyme_friendly"`
	EnergyUsage    Tier      `json:"energy_usage"`
	WaterUsage     Tier      `json:"water_usage"`
	DetergentNotes string    `json:"detergent_notes"`
}

type CycleComparison struct {
	Cycle1         CycleInfo `json:"cycle1"`
	Cycle2         CycleInfo `json:"cycle2"`
	Recommendation CycleType `json:"recommendation"`
	Reason         string    `json:"reason"`
}

// CycleChoice is a suggested cycle for a single soil or item type.
type CycleChoice struct {
	Cycle  CycleType `json:"cycle"`
	Reason string    `json:"reason"`
}

type Education struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	KeyTakeaway string `json:"key_takeaway"`
}

type QuickStartSection struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

type QuickStartGuide struct {
	Title    string              `json:"title"`
	Subtitle string              `json:"subtitle"`
	Sections []QuickStartSection `json:"sections"`
}

type OnboardingStep struct {
	StepNumber   int    `json:"step_number"`
	Title        string `json:"title"`
	Action       string `json:"action"`
	WhyItMatters string `json:"why_it_matters"`
}

type QuickWin struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	HowTo          string `json:"how_to"`
	ExpectedResult string `json:"expected_result"`
}

type Mistake struct {
	Mistake         string `json:"mistake"`
	WhyItsWrong     string `json:"why_its_wrong"`
	WhatToDoInstead string `json:"what_to_do_instead"`
}

type ActionPlan struct {
	Tonight  []string `json:"tonight"`
	ThisWeek []string `json:"this_week"`
	Ongoing  []string `json:"ongoing"`
}

type WashPhase struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	KeyInsight  string `json:"key_insight,omitempty"`
}

type DishwasherBasics struct {
	HowItWorks    []string    `json:"how_it_works"`
	Phases        []WashPhase `json:"phases"`
	DetergentRole string      `json:"detergent_role"`
	RinseAidRole  string      `json:"rinse_aid_role"`
}
