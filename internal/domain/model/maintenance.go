package model

import "time"

type MaintenanceTaskID string

const (
	TaskCleanFilter      MaintenanceTaskID = "clean_filter"
	TaskCleanSprayArms   MaintenanceTaskID = "clean_spray_arms"
	TaskCleanDoorSeal    MaintenanceTaskID = "clean_door_seal"
	TaskRunCleaningCycle MaintenanceTaskID = "run_cleaning_cycle"
	TaskCheckRinseAid    MaintenanceTaskID = "check_rinse_aid"
	TaskCheckSalt        MaintenanceTaskID = "check_salt"
	TaskWipeExterior     MaintenanceTaskID = "wipe_exterior"
	TaskCheckDrain       MaintenanceTaskID = "check_drain"
)

// Frequency values are ordered from most to least frequent.
type Frequency string

const (
	FrequencyWeekly      Frequency = "weekly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyQuarterly   Frequency = "quarterly"
	FrequencyAsNeeded    Frequency = "as_needed"
)

func Frequencies() []Frequency {
	return []Frequency{FrequencyWeekly, FrequencyFortnightly, FrequencyMonthly, FrequencyQuarterly, FrequencyAsNeeded}
}

type Importance string

const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceMedium   Importance = "medium"
	ImportanceLow      Importance = "low"
)

func ImportanceLevels() []Importance {
	return []Importance{ImportanceCritical, ImportanceHigh, ImportanceMedium, ImportanceLow}
}

// Rank orders importance levels, critical first.
func (i Importance) Rank() int {
	switch i {
	case ImportanceCritical:
		return 0
	case ImportanceHigh:
		return 1
	case ImportanceMedium:
		return 2
	case ImportanceLow:
		return 3
	}
	return 4
}

type UsageLevel string

const (
	UsageLight    UsageLevel = "light"
	UsageModerate UsageLevel = "moderate"
	UsageHeavy    UsageLevel = "heavy"
)

type MaintenanceTaskInfo struct {
	ID              MaintenanceTaskID `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Frequency       Frequency         `json:"frequency"`
	ImportanceLevel Importance        `json:"importance_level"`
	TimeMinutes     int               `json:"time_minutes"`
	Steps           []string          `json:"steps"`
	Tools           []string          `json:"tools"`
	Tips            []string          `json:"tips"`
	SignsNeeded     []string          `json:"signs_needed"`
}

type ScheduledTask struct {
	Task              MaintenanceTaskInfo `json:"task"`
	AdjustedFrequency Frequency           `json:"adjusted_frequency"`
	Reason            string              `json:"reason,omitempty"`
}

type MaintenanceSchedule struct {
	WaterHardness WaterHardness   `json:"water_hardness"`
	UsageLevel    UsageLevel      `json:"usage_level"`
	Tasks         []ScheduledTask `json:"tasks"`
	NextActions   []string        `json:"next_actions"`
}

type CheckStatus string

const (
	CheckGood           CheckStatus = "good"
	CheckNeedsAttention CheckStatus = "needs_attention"
	CheckUrgent         CheckStatus = "urgent"
)

type MaintenanceCheck struct {
	Score           int         `json:"score"`
	Status          CheckStatus `json:"status"`
	Issues          []string    `json:"issues"`
	Recommendations []string    `json:"recommendations"`
}

type MaintenanceInput struct {
	LoadsPerWeek     int           `json:"loads_per_week"`
	WaterHardness    WaterHardness `json:"water_hardness"`
	HasSmellIssues   bool          `json:"has_smell_issues,omitempty"`
	HasResidueIssues bool          `json:"has_residue_issues,omitempty"`
	// nil means never done or not known.
	LastFilterClean *time.Time `json:"last_filter_clean,omitempty"`
	LastDeepClean   *time.Time `json:"last_deep_clean,omitempty"`
}

type CheckInput struct {
	FilterCleanedWithin30Days bool `json:"filter_cleaned_within_30_days"`
	DeepCleanWithin60Days     bool `json:"deep_clean_within_60_days"`
	RinseAidFull              bool `json:"rinse_aid_full"`
	NoSmellIssues             bool `json:"no_smell_issues"`
	NoResidueIssues           bool `json:"no_residue_issues"`
	NoDirtyDishIssues         bool `json:"no_dirty_dish_issues"`
}
