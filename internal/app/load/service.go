package load

import (
	"context"
	"fmt"
	"time"

	"dishmate/internal/app/common"
	advisor "dishmate/internal/domain/load"
	"dishmate/internal/domain/model"
)

type Service struct{}

func NewService() Service { return Service{} }

// Run recommends a cycle for one load. The log detail names the rule that
// picked the cycle.
func (Service) Run(ctx context.Context, app *common.AppContext, in model.LoadInput) (model.CommandResult, error) {
	start := time.Now()
	calc := advisor.Calculate(in)
	rule, _ := advisor.MatchCycleRule(calc, in.Urgency)
	rec := advisor.Recommend(in)

	detail := fmt.Sprintf("rule=%s soil_score=%d grease=%s warnings=%d", rule.ID, calc.SoilScore, calc.GreaseFactor, len(rec.Warnings))
	return common.Envelope(ctx, app, "load", start, string(rec.Cycle), detail, rec), nil
}
