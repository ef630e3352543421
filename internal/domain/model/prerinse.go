package model

type PreRinseItem struct {
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

type Myth struct {
	Myth    string `json:"myth"`
	Reality string `json:"reality"`
}

type PreRinseGuide struct {
	Summary      string         `json:"summary"`
	KeyTakeaway  string         `json:"key_takeaway"`
	WhatToLeave  []PreRinseItem `json:"what_to_leave"`
	WhatToScrape []PreRinseItem `json:"what_to_scrape"`
	CommonMyths  []Myth         `json:"common_myths"`
}

type PreRinseAction string

const (
	ActionScrape  PreRinseAction = "scrape"
	ActionLeave   PreRinseAction = "leave"
	ActionUnknown PreRinseAction = "unknown"
)

type PreRinseClassification struct {
	Text   string         `json:"text"`
	Action PreRinseAction `json:"action"`
}
