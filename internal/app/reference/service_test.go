package reference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishmate/internal/domain/model"
)

func TestCycles(t *testing.T) {
	svc := NewService()
	res, err := svc.Cycles(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Len(t, res.Result.([]model.CycleInfo), 6)

	res, err = svc.Cycles(context.Background(), nil, model.CycleEco)
	require.NoError(t, err)
	assert.Equal(t, "Eco / Energy Saver", res.Result.(model.CycleInfo).Name)

	_, err = svc.Cycles(context.Background(), nil, "turbo")
	require.Error(t, err)
}

func TestCompareRejectsUnknownCycle(t *testing.T) {
	_, err := NewService().Compare(context.Background(), nil, model.CycleEco, "turbo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"turbo"`)

	res, err := NewService().Compare(context.Background(), nil, model.CycleQuick, model.CycleEco)
	require.NoError(t, err)
	assert.Equal(t, model.CycleEco, res.Result.(model.CycleComparison).Recommendation)
}

func TestSuggest(t *testing.T) {
	svc := NewService()
	res, err := svc.Suggest(context.Background(), nil, model.SoilHeavy, model.ItemDelicate)
	require.NoError(t, err)
	assert.Equal(t, model.CycleIntensive, res.Result.(model.CycleChoice).Cycle)

	res, err = svc.Suggest(context.Background(), nil, "", model.ItemBabyItems)
	require.NoError(t, err)
	assert.Equal(t, model.CycleSanitise, res.Result.(model.CycleChoice).Cycle)

	_, err = svc.Suggest(context.Background(), nil, "", "")
	require.Error(t, err)
}

func TestLearn(t *testing.T) {
	svc := NewService()
	res, err := svc.Learn(context.Background(), nil, "")
	require.NoError(t, err)
	lessons := res.Result.([]Lesson)
	require.Len(t, lessons, len(Topics()))
	for _, l := range lessons {
		assert.NotNil(t, l.Content, l.Topic)
	}

	res, err = svc.Learn(context.Background(), nil, " Enzymes ")
	require.NoError(t, err)
	lessons = res.Result.([]Lesson)
	require.Len(t, lessons, 1)
	edu, ok := lessons[0].Content.(model.Education)
	require.True(t, ok)
	assert.Contains(t, edu.KeyTakeaway, "Enzymes need time")

	_, err = svc.Learn(context.Background(), nil, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enzymes, prewash")
}
