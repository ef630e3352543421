package hardness

import (
	"context"
	"fmt"
	"time"

	"dishmate/internal/app/common"
	"dishmate/internal/domain/hardness"
	"dishmate/internal/domain/model"
)

type Service struct{}

// Advice pairs the settings advice for a hardness level with where that
// level sits on the scale.
type Advice struct {
	Hardness        model.WaterHardness           `json:"hardness"`
	Band            model.HardnessBand            `json:"band"`
	Recommendations model.HardnessRecommendations `json:"recommendations"`
}

func NewService() Service { return Service{} }

func (Service) Instructions(ctx context.Context, app *common.AppContext) (model.CommandResult, error) {
	start := time.Now()
	return common.Envelope(ctx, app, "hardness test", start, "instructions", "", hardness.SoapBottleTest()), nil
}

func (Service) Test(ctx context.Context, app *common.AppContext, suds model.SudsAmount, clarity model.WaterClarity) (model.CommandResult, error) {
	start := time.Now()
	res := hardness.InterpretTest(suds, clarity)

	detail := fmt.Sprintf("suds=%s clarity=%s confidence=%s", suds, clarity, res.Confidence)
	return common.Envelope(ctx, app, "hardness test", start, string(res.Hardness), detail, res), nil
}

func (Service) Symptoms(ctx context.Context, app *common.AppContext, flags model.SymptomFlags) (model.CommandResult, error) {
	start := time.Now()
	est := hardness.EstimateFromSymptoms(flags)
	hard, soft := hardness.Score(flags)

	detail := fmt.Sprintf("hard_points=%d soft_points=%d confidence=%s", hard, soft, est.Confidence)
	return common.Envelope(ctx, app, "hardness symptoms", start, string(est.LikelyHardness), detail, est), nil
}

func (Service) City(ctx context.Context, app *common.AppContext, city string) (model.CommandResult, error) {
	start := time.Now()
	res := hardness.CityHardness(city)
	return common.Envelope(ctx, app, "hardness city", start, string(res.Hardness), "city="+city, res), nil
}

func (Service) Advice(ctx context.Context, app *common.AppContext, h model.WaterHardness) (model.CommandResult, error) {
	start := time.Now()
	if h == "" {
		h = model.HardnessUnknown
	}
	advice := Advice{
		Hardness:        h,
		Band:            hardness.Explanation().HardnessScale[h],
		Recommendations: hardness.Recommendations(h),
	}
	return common.Envelope(ctx, app, "hardness advice", start, string(h), "", advice), nil
}

func (Service) Explain(ctx context.Context, app *common.AppContext) (model.CommandResult, error) {
	start := time.Now()
	return common.Envelope(ctx, app, "hardness explain", start, "explained", "", hardness.Explanation()), nil
}
