package hardness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishmate/internal/app/common"
	"dishmate/internal/domain/model"
)

type captureLogger struct {
	entries []model.AdviceLogEntry
}

func (c *captureLogger) Log(_ context.Context, e model.AdviceLogEntry) error {
	c.entries = append(c.entries, e)
	return nil
}

func (c *captureLogger) Sync() error { return nil }

func TestTestLogsHardnessOutcome(t *testing.T) {
	logger := &captureLogger{}
	app := &common.AppContext{Logger: logger}

	res, err := NewService().Test(context.Background(), app, model.SudsFew, model.ClarityMilky)
	require.NoError(t, err)
	assert.Equal(t, "hardness test", res.Command)
	assert.Equal(t, model.HardnessHard, res.Result.(model.TestResult).Hardness)

	require.Len(t, logger.entries, 1)
	assert.Equal(t, "hard", logger.entries[0].Outcome)
	assert.Equal(t, "suds=few clarity=milky confidence=high", logger.entries[0].Detail)
}

func TestSymptomsDetailCarriesScores(t *testing.T) {
	logger := &captureLogger{}
	yes := true
	res, err := NewService().Symptoms(context.Background(), &common.AppContext{Logger: logger}, model.SymptomFlags{ScaleInKettle: &yes})
	require.NoError(t, err)
	assert.Equal(t, model.HardnessHard, res.Result.(model.SymptomEstimate).LikelyHardness)
	assert.Contains(t, logger.entries[0].Detail, "hard_points=2 soft_points=0")
}

func TestAdviceIncludesBand(t *testing.T) {
	res, err := NewService().Advice(context.Background(), nil, model.HardnessSoft)
	require.NoError(t, err)
	advice := res.Result.(Advice)
	assert.Equal(t, "0-60 ppm (0-60 mg/L)", advice.Band.Range)
	assert.False(t, advice.Recommendations.UseSalt)

	res, err = NewService().Advice(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, model.HardnessUnknown, res.Result.(Advice).Hardness)
	assert.Equal(t, "Not tested", res.Result.(Advice).Band.Range)
}

func TestCityUnknown(t *testing.T) {
	res, err := NewService().City(context.Background(), nil, "Auckland")
	require.NoError(t, err)
	city := res.Result.(model.CityHardnessResult)
	assert.Equal(t, model.HardnessUnknown, city.Hardness)
	assert.NotEmpty(t, city.Message)
}
