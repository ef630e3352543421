package cmd

import (
	"dishmate/internal/app/common"
	"dishmate/internal/domain/hardness"
	"dishmate/internal/domain/model"
)

func cityHardness(city string) model.WaterHardness {
	return hardness.CityHardness(city).Hardness
}

// resolveHardness applies the flag over the profile and its city.
func resolveHardness(app *common.AppContext, flag string) (model.WaterHardness, error) {
	return common.ResolveHardness(flag, app.Profile, cityHardness)
}
