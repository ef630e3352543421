package detergent

import (
	"context"
	"fmt"
	"time"

	"dishmate/internal/app/common"
	"dishmate/internal/domain/detergent"
	"dishmate/internal/domain/model"
)

type Service struct{}

type FormatGuide struct {
	Formats            []model.DetergentFormatInfo   `json:"formats"`
	WhyPowderBeatsPods model.PowderVsPodsExplanation `json:"why_powder_beats_pods"`
}

func NewService() Service { return Service{} }

func (Service) Recommend(ctx context.Context, app *common.AppContext, in model.DetergentInput) (model.CommandResult, error) {
	start := time.Now()
	rec := detergent.Recommend(in)

	rule, _ := detergent.MatchFormatRule(in)
	detail := fmt.Sprintf("rule=%s usage=%s concern=%s", rule.ID, in.UsagePattern, in.MainConcern)
	return common.Envelope(ctx, app, "detergent recommend", start, string(rec.RecommendedFormat), detail, rec), nil
}

func (Service) Formats(ctx context.Context, app *common.AppContext) (model.CommandResult, error) {
	start := time.Now()
	guide := FormatGuide{
		Formats:            detergent.AllFormats(),
		WhyPowderBeatsPods: detergent.WhyPowderBeatsPods(),
	}
	return common.Envelope(ctx, app, "detergent formats", start, "listed", fmt.Sprintf("count=%d", len(guide.Formats)), guide), nil
}

func (Service) Compare(ctx context.Context, app *common.AppContext, f1, f2 model.DetergentFormat) (model.CommandResult, error) {
	start := time.Now()
	cmp := detergent.CompareFormats(f1, f2)
	return common.Envelope(ctx, app, "detergent compare", start, string(cmp.Winner), fmt.Sprintf("%s vs %s", f1, f2), cmp), nil
}

