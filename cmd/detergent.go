package cmd

import (
	"github.com/spf13/cobra"

	"dishmate/internal/app/common"
	"dishmate/internal/app/detergent"
	"dishmate/internal/domain/model"
)

var detergentCmd = &cobra.Command{
	Use:   "detergent",
	Short: "Choose a detergent format and learn how to dose it",
}

var detergentFlags struct {
	current  string
	hardness string
	usage    string
	concern  string
	soil     []string
	greasy   bool
	residue  bool
}

var detergentRecommendCmd = &cobra.Command{
	Use:     "recommend",
	Short:   "Recommend a detergent format for your household",
	Example: "  dishmate detergent recommend --current pods --greasy --usage daily",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}

		current := app.Profile.DetergentFormat
		if detergentFlags.current != "" {
			if current, err = common.ParseFormat(detergentFlags.current); err != nil {
				return err
			}
		}
		usage := app.Profile.UsagePattern
		if detergentFlags.usage != "" {
			if usage, err = common.ParseUsagePattern(detergentFlags.usage); err != nil {
				return err
			}
		}
		if usage == "" {
			usage = model.UsageRegular
		}
		concern, err := common.ParseConcern(detergentFlags.concern)
		if err != nil {
			return err
		}
		soils, err := common.ParseSoilTypes(detergentFlags.soil)
		if err != nil {
			return err
		}
		h, err := resolveHardness(app, detergentFlags.hardness)
		if err != nil {
			return err
		}

		result, err := detergent.NewService().Recommend(cmd.Context(), app, model.DetergentInput{
			CurrentFormat:    current,
			WaterHardness:    h,
			UsagePattern:     usage,
			MainConcern:      concern,
			TypicalSoilTypes: soils,
			HasGreasyIssues:  detergentFlags.greasy,
			HasResidueIssues: detergentFlags.residue,
		})
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var detergentFormatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Pros and cons of powder, pods, tablets and liquid",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		result, err := detergent.NewService().Formats(cmd.Context(), app)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var detergentCompareCmd = &cobra.Command{
	Use:     "compare <format> <format>",
	Short:   "Compare two detergent formats",
	Example: "  dishmate detergent compare pods powder",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		f1, err := common.ParseFormat(args[0])
		if err != nil {
			return err
		}
		f2, err := common.ParseFormat(args[1])
		if err != nil {
			return err
		}
		result, err := detergent.NewService().Compare(cmd.Context(), app, f1, f2)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

func init() {
	f := detergentRecommendCmd.Flags()
	f.StringVar(&detergentFlags.current, "current", "", "Format you use now (defaults to the profile)")
	f.StringVar(&detergentFlags.hardness, "hardness", "", "Water hardness (defaults to the profile)")
	f.StringVar(&detergentFlags.usage, "usage", "", "How often you run the machine: daily, regular, occasional")
	f.StringVar(&detergentFlags.concern, "concern", string(model.ConcernCleanDishes), "What matters most: clean_dishes, convenience, cost, eco, specific_problem")
	f.StringSliceVar(&detergentFlags.soil, "soil", nil, "Typical soil types (comma separated)")
	f.BoolVar(&detergentFlags.greasy, "greasy", false, "Dishes come out greasy")
	f.BoolVar(&detergentFlags.residue, "residue", false, "Dishes come out with white residue")

	detergentCmd.AddCommand(detergentRecommendCmd)
	detergentCmd.AddCommand(detergentFormatsCmd)
	detergentCmd.AddCommand(detergentCompareCmd)
}
