package rinseaid

import (
	"context"
	"fmt"
	"time"

	"dishmate/internal/app/common"
	"dishmate/internal/domain/model"
	"dishmate/internal/domain/rinseaid"
)

type Service struct{}

type DryingAdvice struct {
	Category model.ItemCategory `json:"category"`
	Tips     []string           `json:"tips"`
}

type Guide struct {
	Explanation model.RinseAidExplanation `json:"explanation"`
	Settings    []model.RinseAidSetting   `json:"settings"`
}

func NewService() Service { return Service{} }

func (Service) Recommend(ctx context.Context, app *common.AppContext, in model.RinseAidInput) (model.CommandResult, error) {
	start := time.Now()
	rec := rinseaid.Recommend(in)

	detail := fmt.Sprintf("hardness=%s spots=%t drying=%t empty=%t", in.WaterHardness, in.HasSpotIssues, in.HasDryingIssues, in.DispenserEmpty)
	return common.Envelope(ctx, app, "rinseaid recommend", start, string(rec.SettingRecommendation), detail, rec), nil
}

func (Service) Spots(ctx context.Context, app *common.AppContext, in model.SpotInput) (model.CommandResult, error) {
	start := time.Now()
	diag := rinseaid.DiagnoseSpots(in)

	detail := fmt.Sprintf("wipes_off=%t vinegar=%t permanent=%t", in.SpotsWipeOff, in.NeedsVinegarToRemove, diag.IsPermanent)
	return common.Envelope(ctx, app, "rinseaid spots", start, string(diag.LikelyCause), detail, diag), nil
}

func (Service) Drying(ctx context.Context, app *common.AppContext, c model.ItemCategory) (model.CommandResult, error) {
	start := time.Now()
	if c == "" {
		c = model.CategoryMixed
	}
	advice := DryingAdvice{Category: c, Tips: rinseaid.DryingTips(c)}
	return common.Envelope(ctx, app, "rinseaid drying", start, string(c), fmt.Sprintf("tips=%d", len(advice.Tips)), advice), nil
}

func (Service) Guide(ctx context.Context, app *common.AppContext) (model.CommandResult, error) {
	start := time.Now()
	g := Guide{Explanation: rinseaid.Explanation(), Settings: rinseaid.Settings()}
	return common.Envelope(ctx, app, "rinseaid guide", start, "guide", "", g), nil
}
