package maintenance

import (
	"context"
	"fmt"
	"time"

	"dishmate/internal/app/common"
	"dishmate/internal/domain/maintenance"
	"dishmate/internal/domain/model"
)

type Service struct {
	now func() time.Time
}

func NewService() Service { return Service{} }

func (s Service) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// Schedule adjusts every task for the household. Elapsed days are counted
// from the service clock.
func (s Service) Schedule(ctx context.Context, app *common.AppContext, in model.MaintenanceInput) (model.CommandResult, error) {
	start := time.Now()
	sched := maintenance.GenerateSchedule(in, s.clock())

	detail := fmt.Sprintf("loads_per_week=%d hardness=%s next_actions=%d", in.LoadsPerWeek, in.WaterHardness, len(sched.NextActions))
	return common.Envelope(ctx, app, "maintenance schedule", start, string(sched.UsageLevel), detail, sched), nil
}

func (s Service) Check(ctx context.Context, app *common.AppContext, in model.CheckInput) (model.CommandResult, error) {
	start := time.Now()
	check := maintenance.QuickCheck(in)

	detail := fmt.Sprintf("score=%d issues=%d", check.Score, len(check.Issues))
	return common.Envelope(ctx, app, "maintenance check", start, string(check.Status), detail, check), nil
}

// Tasks lists the task catalogue, filtered to one importance level unless
// level is empty.
func (s Service) Tasks(ctx context.Context, app *common.AppContext, level model.Importance) (model.CommandResult, error) {
	start := time.Now()
	tasks := maintenance.AllTasks()
	if level != "" {
		tasks = maintenance.TasksByImportance(level)
	}

	outcome := "all"
	if level != "" {
		outcome = string(level)
	}
	return common.Envelope(ctx, app, "maintenance tasks", start, outcome, fmt.Sprintf("count=%d", len(tasks)), tasks), nil
}
