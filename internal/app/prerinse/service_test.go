package prerinse

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

func TestClassifyKeepsOrderAndCounts(t *testing.T) {
	logger := &captureLogger{}
	res, err := NewService().Classify(context.Background(), &common.AppContext{Logger: logger},
		[]string{"chicken bones", "dried egg", "a spoon", "tomato sauce"})
	require.NoError(t, err)

	got := res.Result.([]model.PreRinseClassification)
	require.Len(t, got, 4)
	assert.Equal(t, []model.PreRinseAction{model.ActionScrape, model.ActionLeave, model.ActionUnknown, model.ActionLeave},
		[]model.PreRinseAction{got[0].Action, got[1].Action, got[2].Action, got[3].Action})

	require.Len(t, logger.entries, 1)
	assert.Equal(t, "classified=4", logger.entries[0].Outcome)
	assert.Equal(t, "scrape=1 leave=2 unknown=1", logger.entries[0].Detail)
}

func TestClassifyEmptyInput(t *testing.T) {
	res, err := NewService().Classify(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Result.([]model.PreRinseClassification))
}

func TestGuide(t *testing.T) {
	res, err := NewService().Guide(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "prerinse guide", res.Command)
	assert.Len(t, res.Result.(model.PreRinseGuide).WhatToScrape, 5)
}
