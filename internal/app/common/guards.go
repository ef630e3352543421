package common

import (
	"fmt"
	"slices"
	"strings"

	"dishmate/internal/domain/model"
	"dishmate/internal/infra/config"
)

// parseEnum accepts a value case-insensitively from a closed set. Hyphens
// are read as underscores so "baby-items" matches "baby_items".
func parseEnum[T ~string](field, raw string, allowed []T) (T, error) {
	v := T(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
	if slices.Contains(allowed, v) {
		return v, nil
	}
	return "", fmt.Errorf("invalid %s %q: must be one of %s", field, raw, joinEnum(allowed))
}

func parseEnumList[T ~string](field string, raw []string, allowed []T) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			v, err := parseEnum(field, part, allowed)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func ParseItemTypes(raw []string) ([]model.ItemType, error) {
	return parseEnumList("item type", raw, model.ItemTypes())
}

func ParseSoilTypes(raw []string) ([]model.SoilType, error) {
	return parseEnumList("soil type", raw, model.SoilTypes())
}

func ParseQuantity(raw string) (model.LoadQuantity, error) {
	return parseEnum("quantity", raw, model.LoadQuantities())
}

func ParseUrgency(raw string) (model.Urgency, error) {
	return parseEnum("urgency", raw, model.Urgencies())
}

func ParseHardness(raw string) (model.WaterHardness, error) {
	return parseEnum("water hardness", raw, model.HardnessLevels())
}

func ParseCycle(raw string) (model.CycleType, error) {
	return parseEnum("cycle", raw, model.CycleTypes())
}

func ParseCategory(raw string) (model.TroubleshootCategory, error) {
	return parseEnum("category", raw, model.TroubleshootCategories())
}

func ParseFormat(raw string) (model.DetergentFormat, error) {
	return parseEnum("detergent format", raw, model.DetergentFormats())
}

func ParseUsagePattern(raw string) (model.UsagePattern, error) {
	return parseEnum("usage pattern", raw, model.UsagePatterns())
}

func ParseConcern(raw string) (model.MainConcern, error) {
	return parseEnum("main concern", raw, model.MainConcerns())
}

func ParseItemCategory(raw string) (model.ItemCategory, error) {
	return parseEnum("item category", raw, model.ItemCategories())
}

func ParseSuds(raw string) (model.SudsAmount, error) {
	return parseEnum("suds", raw, model.SudsAmounts())
}

func ParseClarity(raw string) (model.WaterClarity, error) {
	return parseEnum("clarity", raw, model.WaterClarities())
}

func ParseImportance(raw string) (model.Importance, error) {
	return parseEnum("importance", raw, model.ImportanceLevels())
}

func ParseRuleEngine(raw string) (model.RuleEngine, error) {
	return parseEnum("rule engine", raw, model.RuleEngines())
}

// ResolveHardness picks the hardness to advise on. An explicit flag wins,
// then the profile's own hardness, then the hardness of the profile city.
func ResolveHardness(flag string, profile config.Profile, cityLookup func(string) model.WaterHardness) (model.WaterHardness, error) {
	if strings.TrimSpace(flag) != "" {
		return ParseHardness(flag)
	}
	if profile.WaterHardness != "" && profile.WaterHardness != model.HardnessUnknown {
		return profile.WaterHardness, nil
	}
	if city := strings.TrimSpace(profile.City); city != "" && cityLookup != nil {
		if h := cityLookup(city); h != model.HardnessUnknown {
			return h, nil
		}
	}
	return model.HardnessUnknown, nil
}

// RequireNonNegative rejects negative counts at the flag boundary.
func RequireNonNegative(flag string, v int) error {
	if v < 0 {
		return fmt.Errorf("--%s must be >= 0", flag)
	}
	return nil
}
