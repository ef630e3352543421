// Package prerinse decides whether a described bit of food should be scraped
// off before loading or left for the detergent.
package prerinse

import (
	"regexp"
	"slices"

	"dishmate/internal/domain/model"
)

var scrapePatterns = compileAll(
	`bone`, `seed`, `pip`, `toothpick`, `label`, `paper`, `napkin`,
	`coffee.*ground`, `tea.*lea`, `grounds`, `leaves`,
	`large.*chunk`, `big.*chunk`, `large.*piece`, `large.*food`,
)

var leavePatterns = compileAll(
	`grease`, `oil`, `butter`, `fat`, `sauce`, `residue`, `dried`,
	`egg`, `cheese`, `milk`, `dairy`, `protein`,
	`pasta`, `rice`, `potato`, `starch`, `smear`,
)

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

func matchesAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// ShouldScrape reports whether text names debris that will not dissolve.
func ShouldScrape(text string) bool {
	return matchesAny(scrapePatterns, text)
}

// ShouldLeave reports whether text names residue the detergent handles.
// Anything that should be scraped is never left.
func ShouldLeave(text string) bool {
	if ShouldScrape(text) {
		return false
	}
	return matchesAny(leavePatterns, text)
}

func Classify(text string) model.PreRinseClassification {
	action := model.ActionUnknown
	switch {
	case ShouldScrape(text):
		action = model.ActionScrape
	case ShouldLeave(text):
		action = model.ActionLeave
	}
	return model.PreRinseClassification{Text: text, Action: action}
}

func WhatToLeave() []model.PreRinseItem  { return slices.Clone(whatToLeave) }
func WhatToScrape() []model.PreRinseItem { return slices.Clone(whatToScrape) }
func CommonMyths() []model.Myth          { return slices.Clone(commonMyths) }

func Guide() model.PreRinseGuide {
	return model.PreRinseGuide{
		Summary:      guideSummary,
		KeyTakeaway:  guideKeyTakeaway,
		WhatToLeave:  WhatToLeave(),
		WhatToScrape: WhatToScrape(),
		CommonMyths:  CommonMyths(),
	}
}
