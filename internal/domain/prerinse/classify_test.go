package prerinse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dishmate/internal/domain/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestShouldScrape(t *testing.T) {
	for _, text := range []string{
		"bones", "chicken bones", "BONES", "Bones", "seeds", "olive pips",
		"napkin", "paper", "label", "coffee grounds", "tea leaves",
		"large food pieces", "big chunks", "large food chunks with bones",
	} {
		assert.True(t, ShouldScrape(text), text)
	}
	for _, text := range []string{"sauce", "grease", "dried food", ""} {
		assert.False(t, ShouldScrape(text), text)
	}
}

func TestShouldLeave(t *testing.T) {
	for _, text := range []string{
		"grease", "oil", "butter", "dried sauce", "tomato sauce", "egg", "cheese",
		"dried milk", "pasta residue", "rice", "potato", "dried tomato sauce residue", "SMEAR",
	} {
		assert.True(t, ShouldLeave(text), text)
	}
	for _, text := range []string{"bones", "paper", "coffee grounds", "", "a fork"} {
		assert.False(t, ShouldLeave(text), text)
	}
}

func TestScrapeAndLeaveAreExclusive(t *testing.T) {
	inputs := []string{
		"", "bones in butter sauce", "greasy paper", "rice with seeds", "egg", "toothpick in cheese",
		"large chunk of potato", "tea leaves and milk", "oil", "label residue",
	}
	for _, w := range WhatToLeave() {
		inputs = append(inputs, w.Item)
	}
	for _, w := range WhatToScrape() {
		inputs = append(inputs, w.Item)
	}
	for _, text := range inputs {
		assert.False(t, ShouldScrape(text) && ShouldLeave(text), text)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, model.ActionScrape, Classify("bones in butter sauce").Action)
	assert.Equal(t, model.ActionLeave, Classify("dried egg").Action)
	assert.Equal(t, model.ActionUnknown, Classify("a spoon").Action)
	assert.Equal(t, "dried egg", Classify("dried egg").Text)
}

func TestGuide(t *testing.T) {
	g := Guide()
	assert.Contains(t, g.Summary, "Scrape, don't rinse")
	assert.Contains(t, g.KeyTakeaway, "enzymes")
	require.Len(t, g.WhatToLeave, 5)
	require.Len(t, g.WhatToScrape, 5)
	require.Len(t, g.CommonMyths, 5)

	g.WhatToLeave[0].Item = "tampered"
	assert.Equal(t, "Grease and oil", WhatToLeave()[0].Item)
}
