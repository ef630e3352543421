package cmd

import (
	"github.com/spf13/cobra"

	"dishmate/internal/app/common"
	"dishmate/internal/app/reference"
	"dishmate/internal/domain/model"
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles",
	Short: "Understand what each wash cycle does",
}

var cyclesInfoCmd = &cobra.Command{
	Use:   "info [cycle]",
	Short: "Describe one cycle, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		var cycle model.CycleType
		if len(args) == 1 {
			if cycle, err = common.ParseCycle(args[0]); err != nil {
				return err
			}
		}
		result, err := reference.NewService().Cycles(cmd.Context(), app, cycle)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var cyclesCompareCmd = &cobra.Command{
	Use:     "compare <cycle> <cycle>",
	Short:   "Pick between two cycles",
	Example: "  dishmate cycles compare quick eco",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		c1, err := common.ParseCycle(args[0])
		if err != nil {
			return err
		}
		c2, err := common.ParseCycle(args[1])
		if err != nil {
			return err
		}
		result, err := reference.NewService().Compare(cmd.Context(), app, c1, c2)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var suggestFlags struct {
	soil string
	item string
}

var cyclesSuggestCmd = &cobra.Command{
	Use:     "suggest",
	Short:   "Suggest a cycle for one kind of soil or item",
	Example: "  dishmate cycles suggest --soil protein\n  dishmate cycles suggest --item baby-items",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		var (
			soil model.SoilType
			item model.ItemType
		)
		if suggestFlags.soil != "" {
			soils, err := common.ParseSoilTypes([]string{suggestFlags.soil})
			if err != nil {
				return err
			}
			if len(soils) > 0 {
				soil = soils[0]
			}
		}
		if suggestFlags.item != "" {
			items, err := common.ParseItemTypes([]string{suggestFlags.item})
			if err != nil {
				return err
			}
			if len(items) > 0 {
				item = items[0]
			}
		}
		result, err := reference.NewService().Suggest(cmd.Context(), app, soil, item)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

func init() {
	cyclesSuggestCmd.Flags().StringVar(&suggestFlags.soil, "soil", "", "Soil type that dominates the load")
	cyclesSuggestCmd.Flags().StringVar(&suggestFlags.item, "item", "", "Item type that dominates the load")

	cyclesCmd.AddCommand(cyclesInfoCmd)
	cyclesCmd.AddCommand(cyclesCompareCmd)
	cyclesCmd.AddCommand(cyclesSuggestCmd)
}
