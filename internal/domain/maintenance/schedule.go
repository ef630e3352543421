package maintenance

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"dishmate/internal/domain/model"
)

const (
	ReasonHeavyUsage = "More frequent due to heavy usage"
	ReasonLightUsage = "Less frequent due to light usage"
	ReasonHardWater  = "More frequent due to hard water"

	staleFilterDays = 45
	staleDeepDays   = 60
)

// UsageLevel buckets loads per week. Zero and negative counts are light.
func UsageLevel(loadsPerWeek int) model.UsageLevel {
	switch {
	case loadsPerWeek <= 3:
		return model.UsageLight
	case loadsPerWeek <= 6:
		return model.UsageModerate
	default:
		return model.UsageHeavy
	}
}

// FrequencyRule shifts a task's position on the frequency scale. Negative
// shifts are more frequent.
type FrequencyRule struct {
	ID     string
	Match  func(usage model.UsageLevel, hardness model.WaterHardness, task model.MaintenanceTaskID) bool
	Shift  int
	Reason string
}

// FrequencyRules are applied in order. Every matching rule moves the index;
// the reason of the last matching rule is the one reported.
func FrequencyRules() []FrequencyRule {
	return []FrequencyRule{
		{
			ID: "heavy_usage",
			Match: func(u model.UsageLevel, _ model.WaterHardness, id model.MaintenanceTaskID) bool {
				return u == model.UsageHeavy && (id == model.TaskCleanFilter || id == model.TaskRunCleaningCycle)
			},
			Shift:  -1,
			Reason: ReasonHeavyUsage,
		},
		{
			ID: "light_usage",
			Match: func(u model.UsageLevel, _ model.WaterHardness, id model.MaintenanceTaskID) bool {
				return u == model.UsageLight && id != model.TaskCleanFilter
			},
			Shift:  1,
			Reason: ReasonLightUsage,
		},
		{
			ID: "hard_water",
			Match: func(_ model.UsageLevel, h model.WaterHardness, id model.MaintenanceTaskID) bool {
				return h == model.HardnessHard && (id == model.TaskRunCleaningCycle || id == model.TaskCheckSalt)
			},
			Shift:  -1,
			Reason: ReasonHardWater,
		},
	}
}

var frequencyRules = FrequencyRules()

// AdjustFrequency applies FrequencyRules to base. Shifts towards more
// frequent stop at weekly; shifts towards less frequent stop at quarterly, so
// as_needed is never assigned by a rule.
func AdjustFrequency(base model.Frequency, usage model.UsageLevel, hardness model.WaterHardness, task model.MaintenanceTaskID) (model.Frequency, string) {
	scale := model.Frequencies()
	idx := slices.Index(scale, base)
	if idx < 0 {
		panic("maintenance: unknown frequency " + string(base))
	}

	var reason string
	for _, r := range frequencyRules {
		if !r.Match(usage, hardness, task) {
			continue
		}
		if r.Shift < 0 {
			idx = max(0, idx+r.Shift)
		} else {
			idx = min(len(scale)-2, idx+r.Shift)
		}
		reason = r.Reason
	}
	return scale[idx], reason
}

// GenerateSchedule adjusts every task for the household and orders them by
// importance. now is the reference time for the elapsed-day checks.
func GenerateSchedule(in model.MaintenanceInput, now time.Time) model.MaintenanceSchedule {
	usage := UsageLevel(in.LoadsPerWeek)

	scheduled := make([]model.ScheduledTask, 0, len(tasks))
	for _, task := range AllTasks() {
		freq, reason := AdjustFrequency(task.Frequency, usage, in.WaterHardness, task.ID)
		scheduled = append(scheduled, model.ScheduledTask{
			Task:              task,
			AdjustedFrequency: freq,
			Reason:            reason,
		})
	}
	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].Task.ImportanceLevel.Rank() < scheduled[j].Task.ImportanceLevel.Rank()
	})

	return model.MaintenanceSchedule{
		WaterHardness: in.WaterHardness,
		UsageLevel:    usage,
		Tasks:         scheduled,
		NextActions:   nextActions(in, now),
	}
}

func nextActions(in model.MaintenanceInput, now time.Time) []string {
	var actions []string

	if in.HasSmellIssues {
		actions = append(actions,
			"Clean the filter immediately - this is the most likely cause of smell.",
			"Run a cleaning cycle with vinegar after cleaning the filter.",
			"Check and clean the door seal for mould.",
		)
	}

	if in.HasResidueIssues {
		actions = append(actions, "Run a cleaning cycle to dissolve buildup.")
		if in.WaterHardness == model.HardnessHard || in.WaterHardness == model.HardnessUnknown {
			actions = append(actions, "Check and refill dishwasher salt if your machine has a salt compartment.")
		}
		actions = append(actions, "Clean the spray arms - blocked holes cause uneven cleaning.")
	}

	if in.LastFilterClean != nil {
		if days := daysSince(*in.LastFilterClean, now); days > staleFilterDays {
			actions = append(actions, fmt.Sprintf("Filter hasn't been cleaned in %d days - clean it soon.", days))
		}
	} else {
		actions = append(actions, "If you've never cleaned the filter, do that first - it's the most important task.")
	}

	if in.LastDeepClean != nil {
		if days := daysSince(*in.LastDeepClean, now); days > staleDeepDays {
			actions = append(actions, fmt.Sprintf("It's been %d days since your last cleaning cycle - schedule one soon.", days))
		}
	}

	if len(actions) == 0 {
		actions = append(actions, "Your maintenance is on track. Keep up with the schedule above.")
	}
	return actions
}

// daysSince floors towards negative infinity, so a future date gives a
// negative count.
func daysSince(then, now time.Time) int {
	ms := now.Sub(then).Milliseconds()
	const msPerDay = 24 * 60 * 60 * 1000
	days := ms / msPerDay
	if ms%msPerDay != 0 && ms < 0 {
		days--
	}
	return int(days)
}
