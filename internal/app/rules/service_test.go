package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishmate/internal/domain/model"
)

func TestRunAllEngines(t *testing.T) {
	res, err := NewService().Run(context.Background(), nil, "")
	require.NoError(t, err)
	list := res.Result.([]model.RuleInfo)
	assert.Len(t, list, 8+3+8)
	assert.Equal(t, model.EngineCycle, list[0].Engine)
}

func TestRunOneEngine(t *testing.T) {
	res, err := NewService().Run(context.Background(), nil, model.EngineFrequency)
	require.NoError(t, err)
	list := res.Result.([]model.RuleInfo)
	require.Len(t, list, 3)
	for _, r := range list {
		assert.Equal(t, model.EngineFrequency, r.Engine)
	}
}
