package cmd

import (
	"github.com/spf13/cobra"

	"dishmate/internal/app/common"
	"dishmate/internal/app/load"
	"dishmate/internal/domain/model"
)

var loadFlags struct {
	items    []string
	soil     []string
	quantity string
	urgency  string
	hardness string
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Pick a wash cycle and detergent dose for a load",
	Example: "  dishmate load --items plates,pots --soil greasy,protein --urgency no_rush\n" +
		"  dishmate load --items baby-items --soil everyday --json",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}

		items, err := common.ParseItemTypes(loadFlags.items)
		if err != nil {
			return err
		}
		soils, err := common.ParseSoilTypes(loadFlags.soil)
		if err != nil {
			return err
		}
		quantity, err := common.ParseQuantity(loadFlags.quantity)
		if err != nil {
			return err
		}
		urgency, err := common.ParseUrgency(loadFlags.urgency)
		if err != nil {
			return err
		}
		h, err := resolveHardness(app, loadFlags.hardness)
		if err != nil {
			return err
		}

		result, err := load.NewService().Run(cmd.Context(), app, model.LoadInput{
			Items:         items,
			SoilTypes:     soils,
			Quantity:      quantity,
			Urgency:       urgency,
			WaterHardness: h,
		})
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

func init() {
	loadCmd.Flags().StringSliceVar(&loadFlags.items, "items", nil, "Item types in the load (comma separated)")
	loadCmd.Flags().StringSliceVar(&loadFlags.soil, "soil", nil, "Soil types on the dishes (comma separated)")
	loadCmd.Flags().StringVar(&loadFlags.quantity, "quantity", string(model.QuantityNormal), "How full the machine is: light, normal, full")
	loadCmd.Flags().StringVar(&loadFlags.urgency, "urgency", string(model.UrgencyNeedToday), "When you need the dishes: no_rush, need_today, need_fast")
	loadCmd.Flags().StringVar(&loadFlags.hardness, "hardness", "", "Water hardness (defaults to the profile)")
}
