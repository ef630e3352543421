package model

import "time"

type ItemType string

const (
	ItemPlates        ItemType = "plates"
	ItemBowls         ItemType = "bowls"
	ItemGlasses       ItemType = "glasses"
	ItemMugs          ItemType = "mugs"
	ItemPots          ItemType = "pots"
	ItemPans          ItemType = "pans"
	ItemBakeware      ItemType = "bakeware"
	ItemUtensils      ItemType = "utensils"
	ItemContainers    ItemType = "containers"
	ItemBabyItems     ItemType = "baby_items"
	ItemCuttingBoards ItemType = "cutting_boards"
	// ItemDelicate covers fine glasses, crystal and china.
	ItemDelicate ItemType = "delicate"
)

func ItemTypes() []ItemType {
	return []ItemType{
		ItemPlates, ItemBowls, ItemGlasses, ItemMugs, ItemPots, ItemPans,
		ItemBakeware, ItemUtensils, ItemContainers, ItemBabyItems, ItemCuttingBoards, ItemDelicate,
	}
}

type SoilType string

const (
	SoilLight    SoilType = "light"
	SoilEveryday SoilType = "everyday"
	SoilHeavy    SoilType = "heavy"
	SoilGreasy   SoilType = "greasy"
	SoilProtein  SoilType = "protein"
	SoilStarchy  SoilType = "starchy"
	SoilAcidic   SoilType = "acidic"
)

func SoilTypes() []SoilType {
	return []SoilType{SoilLight, SoilEveryday, SoilHeavy, SoilGreasy, SoilProtein, SoilStarchy, SoilAcidic}
}

type LoadQuantity string

const (
	QuantityLight  LoadQuantity = "light"
	QuantityNormal LoadQuantity = "normal"
	QuantityFull   LoadQuantity = "full"
)

func LoadQuantities() []LoadQuantity {
	return []LoadQuantity{QuantityLight, QuantityNormal, QuantityFull}
}

type Urgency string

const (
	UrgencyNoRush    Urgency = "no_rush"
	UrgencyNeedToday Urgency = "need_today"
	UrgencyNeedFast  Urgency = "need_fast"
)

func Urgencies() []Urgency {
	return []Urgency{UrgencyNoRush, UrgencyNeedToday, UrgencyNeedFast}
}

type CycleType string

const (
	CycleQuick     CycleType = "quick"
	CycleEco       CycleType = "eco"
	CycleNormal    CycleType = "normal"
	CycleIntensive CycleType = "intensive"
	CycleDelicate  CycleType = "delicate"
	CycleSanitise  CycleType = "sanitise"
)

func CycleTypes() []CycleType {
	return []CycleType{CycleQuick, CycleEco, CycleNormal, CycleIntensive, CycleDelicate, CycleSanitise}
}

type GreaseFactor string

const (
	GreaseLow    GreaseFactor = "low"
	GreaseMedium GreaseFactor = "medium"
	GreaseHigh   GreaseFactor = "high"
)

type WaterHardness string

const (
	HardnessSoft     WaterHardness = "soft"
	HardnessModerate WaterHardness = "moderate"
	HardnessHard     WaterHardness = "hard"
	HardnessUnknown  WaterHardness = "unknown"
)

func HardnessLevels() []WaterHardness {
	return []WaterHardness{HardnessSoft, HardnessModerate, HardnessHard, HardnessUnknown}
}

// Tier is a coarse low/medium/high rating used for energy and water usage.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

func (t Tier) Rank() int {
	switch t {
	case TierLow:
		return 1
	case TierMedium:
		return 2
	case TierHigh:
		return 3
	}
	return 0
}

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

type CommandResult struct {
	SchemaVersion string    `json:"schema_version"`
	Command       string    `json:"command"`
	Timestamp     time.Time `json:"timestamp"`
	DurationMS    int64     `json:"duration_ms"`
	Result        any       `json:"result,omitempty"`
}

type AdviceLogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id"`
	Command    string    `json:"command"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	DurationMS int64     `json:"duration_ms"`
}
