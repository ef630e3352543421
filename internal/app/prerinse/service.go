package prerinse

import (
	"context"
	"fmt"
	"time"

	"dishmate/internal/app/common"
	"dishmate/internal/domain/model"
	"dishmate/internal/domain/prerinse"
)

type Service struct{}

func NewService() Service { return Service{} }

// Classify sorts each described bit of food into scrape, leave or unknown,
// keeping input order.
func (Service) Classify(ctx context.Context, app *common.AppContext, texts []string) (model.CommandResult, error) {
	start := time.Now()
	out := make([]model.PreRinseClassification, 0, len(texts))
	counts := map[model.PreRinseAction]int{}
	for _, text := range texts {
		c := prerinse.Classify(text)
		counts[c.Action]++
		out = append(out, c)
	}

	detail := fmt.Sprintf("scrape=%d leave=%d unknown=%d",
		counts[model.ActionScrape], counts[model.ActionLeave], counts[model.ActionUnknown])
	return common.Envelope(ctx, app, "prerinse classify", start, fmt.Sprintf("classified=%d", len(out)), detail, out), nil
}

func (Service) Guide(ctx context.Context, app *common.AppContext) (model.CommandResult, error) {
	start := time.Now()
	return common.Envelope(ctx, app, "prerinse guide", start, "guide", "", prerinse.Guide()), nil
}
