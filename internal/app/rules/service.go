package rules

import (
	"context"
	"fmt"
	"time"

	"dishmate/internal/app/common"
	"dishmate/internal/domain/model"
	"dishmate/internal/domain/rules"
)

type Service struct{}

func NewService() Service { return Service{} }

// Run lists the rule catalog, limited to one engine unless engine is empty.
func (Service) Run(ctx context.Context, app *common.AppContext, engine model.RuleEngine) (model.CommandResult, error) {
	start := time.Now()
	list := rules.Catalog()
	outcome := "all"
	if engine != "" {
		list = rules.ForEngine(engine)
		outcome = string(engine)
	}
	return common.Envelope(ctx, app, "rules", start, outcome, fmt.Sprintf("count=%d", len(list)), list), nil
}
