package maintenance

import (
	"slices"

	"dishmate/internal/domain/model"
)

// Task returns the task with id.
func Task(id model.MaintenanceTaskID) (model.MaintenanceTaskInfo, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return cloneTask(t), true
		}
	}
	return model.MaintenanceTaskInfo{}, false
}

// AllTasks returns copies of every task in table order.
func AllTasks() []model.MaintenanceTaskInfo {
	out := make([]model.MaintenanceTaskInfo, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, cloneTask(t))
	}
	return out
}

func TasksByImportance(level model.Importance) []model.MaintenanceTaskInfo {
	var out []model.MaintenanceTaskInfo
	for _, t := range tasks {
		if t.ImportanceLevel == level {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

func CriticalTasks() []model.MaintenanceTaskInfo {
	return TasksByImportance(model.ImportanceCritical)
}

type checkItem struct {
	ok             func(model.CheckInput) bool
	penalty        int
	issue          string
	recommendation string
}

var checkItems = []checkItem{
	{
		ok:             func(in model.CheckInput) bool { return in.FilterCleanedWithin30Days },
		penalty:        30,
		issue:          "Filter needs cleaning",
		recommendation: "Clean the filter - it's the most important maintenance task.",
	},
	{
		ok:             func(in model.CheckInput) bool { return in.DeepCleanWithin60Days },
		penalty:        20,
		issue:          "Due for a cleaning cycle",
		recommendation: "Run an empty hot cycle with vinegar to dissolve buildup.",
	},
	{
		ok:             func(in model.CheckInput) bool { return in.RinseAidFull },
		penalty:        10,
		issue:          "Rinse aid low",
		recommendation: "Refill rinse aid for spot-free drying.",
	},
	{
		ok:             func(in model.CheckInput) bool { return in.NoSmellIssues },
		penalty:        20,
		issue:          "Smell issues reported",
		recommendation: "Clean filter, door seal, and run cleaning cycle.",
	},
	{
		ok:             func(in model.CheckInput) bool { return in.NoResidueIssues },
		penalty:        15,
		issue:          "Residue issues reported",
		recommendation: "Check water hardness settings and run cleaning cycle.",
	},
	{
		ok:             func(in model.CheckInput) bool { return in.NoDirtyDishIssues },
		penalty:        15,
		issue:          "Cleaning performance issues",
		recommendation: "Check filter, spray arms, and detergent amount.",
	},
}

// QuickCheck scores upkeep out of 100.
func QuickCheck(in model.CheckInput) model.MaintenanceCheck {
	check := model.MaintenanceCheck{
		Score:           100,
		Issues:          []string{},
		Recommendations: []string{},
	}
	for _, item := range checkItems {
		if item.ok(in) {
			continue
		}
		check.Score -= item.penalty
		check.Issues = append(check.Issues, item.issue)
		check.Recommendations = append(check.Recommendations, item.recommendation)
	}

	switch {
	case check.Score >= 80:
		check.Status = model.CheckGood
	case check.Score >= 50:
		check.Status = model.CheckNeedsAttention
	default:
		check.Status = model.CheckUrgent
	}

	if len(check.Issues) == 0 {
		check.Recommendations = append(check.Recommendations, "Your dishwasher maintenance is up to date!")
	}
	return check
}

func cloneTask(t model.MaintenanceTaskInfo) model.MaintenanceTaskInfo {
	t.Steps = slices.Clone(t.Steps)
	t.Tools = slices.Clone(t.Tools)
	t.Tips = slices.Clone(t.Tips)
	t.SignsNeeded = slices.Clone(t.SignsNeeded)
	return t
}
