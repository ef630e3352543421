package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishmate/internal/domain/model"
	"dishmate/internal/infra/config"
)

type captureLogger struct {
	entries []model.AdviceLogEntry
	err     error
}

func (c *captureLogger) Log(_ context.Context, entry model.AdviceLogEntry) error {
	c.entries = append(c.entries, entry)
	return c.err
}

func (c *captureLogger) Sync() error { return nil }

func TestParseSoilTypes(t *testing.T) {
	got, err := ParseSoilTypes([]string{"greasy,Protein", " heavy ", ""})
	require.NoError(t, err)
	assert.Equal(t, []model.SoilType{model.SoilGreasy, model.SoilProtein, model.SoilHeavy}, got)

	_, err = ParseSoilTypes([]string{"greasy", "muddy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid soil type "muddy"`)
	assert.Contains(t, err.Error(), "light, everyday, heavy")
}

func TestParseItemTypesAcceptsHyphens(t *testing.T) {
	got, err := ParseItemTypes([]string{"baby-items", "cutting_boards"})
	require.NoError(t, err)
	assert.Equal(t, []model.ItemType{model.ItemBabyItems, model.ItemCuttingBoards}, got)

	empty, err := ParseItemTypes(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseScalars(t *testing.T) {
	h, err := ParseHardness("HARD")
	require.NoError(t, err)
	assert.Equal(t, model.HardnessHard, h)

	c, err := ParseClarity("slightly-cloudy")
	require.NoError(t, err)
	assert.Equal(t, model.ClaritySlightlyCloudy, c)

	i, err := ParseImportance("Critical")
	require.NoError(t, err)
	assert.Equal(t, model.ImportanceCritical, i)

	e, err := ParseRuleEngine("maintenance-frequency")
	require.NoError(t, err)
	assert.Equal(t, model.EngineFrequency, e)

	u, err := ParseUrgency("need_fast")
	require.NoError(t, err)
	assert.Equal(t, model.UrgencyNeedFast, u)

	for name, parse := range map[string]func(string) error{
		"quantity": func(s string) error { _, err := ParseQuantity(s); return err },
		"cycle":    func(s string) error { _, err := ParseCycle(s); return err },
		"category": func(s string) error { _, err := ParseCategory(s); return err },
		"format":   func(s string) error { _, err := ParseFormat(s); return err },
		"usage":    func(s string) error { _, err := ParseUsagePattern(s); return err },
		"concern":  func(s string) error { _, err := ParseConcern(s); return err },
		"items":    func(s string) error { _, err := ParseItemCategory(s); return err },
		"suds":     func(s string) error { _, err := ParseSuds(s); return err },
	} {
		assert.Error(t, parse("bogus"), name)
	}
}

func TestResolveHardness(t *testing.T) {
	lookup := func(city string) model.WaterHardness {
		if city == "Adelaide" {
			return model.HardnessHard
		}
		return model.HardnessUnknown
	}

	h, err := ResolveHardness("soft", config.Profile{WaterHardness: model.HardnessHard}, lookup)
	require.NoError(t, err)
	assert.Equal(t, model.HardnessSoft, h)

	h, err = ResolveHardness("", config.Profile{WaterHardness: model.HardnessModerate, City: "Adelaide"}, lookup)
	require.NoError(t, err)
	assert.Equal(t, model.HardnessModerate, h)

	h, err = ResolveHardness("", config.Profile{WaterHardness: model.HardnessUnknown, City: " Adelaide "}, lookup)
	require.NoError(t, err)
	assert.Equal(t, model.HardnessHard, h)

	h, err = ResolveHardness("", config.Profile{City: "Auckland"}, lookup)
	require.NoError(t, err)
	assert.Equal(t, model.HardnessUnknown, h)

	_, err = ResolveHardness("chalky", config.Profile{}, lookup)
	assert.Error(t, err)
}

func TestRequireNonNegative(t *testing.T) {
	assert.NoError(t, RequireNonNegative("loads-per-week", 0))
	err := RequireNonNegative("loads-per-week", -1)
	require.Error(t, err)
	assert.Equal(t, "--loads-per-week must be >= 0", err.Error())
}

func TestLogAdvice(t *testing.T) {
	logger := &captureLogger{}
	require.NoError(t, LogAdvice(context.Background(), logger, "load", "eco", "soil=2", 1500*time.Millisecond))
	require.Len(t, logger.entries, 1)

	e := logger.entries[0]
	assert.Equal(t, "load", e.Command)
	assert.Equal(t, "eco", e.Outcome)
	assert.Equal(t, int64(1500), e.DurationMS)
	assert.False(t, e.Timestamp.IsZero())
	_, err := uuid.Parse(e.RequestID)
	assert.NoError(t, err)

	assert.NoError(t, LogAdvice(context.Background(), nil, "load", "eco", "", 0))
}

func TestEnvelopeIgnoresLoggerErrors(t *testing.T) {
	logger := &captureLogger{err: errors.New("disk full")}
	app := &AppContext{Logger: logger}

	res := Envelope(context.Background(), app, "rinseaid recommend", time.Now(), "maximum", "", "payload")
	assert.Equal(t, SchemaVersion, res.SchemaVersion)
	assert.Equal(t, "rinseaid recommend", res.Command)
	assert.Equal(t, "payload", res.Result)
	assert.Len(t, logger.entries, 1)
}

func TestFromCommand(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	_, err := FromCommand(cmd)
	assert.Error(t, err)

	want := &AppContext{Options: GlobalOptions{JSON: true}}
	cmd.SetContext(context.WithValue(context.Background(), ContextKeyApp, want))
	got, err := FromCommand(cmd)
	require.NoError(t, err)
	assert.Same(t, want, got)
}
