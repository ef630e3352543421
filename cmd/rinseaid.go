package cmd

import (
	"github.com/spf13/cobra"

	"dishmate/internal/app/common"
	"dishmate/internal/app/rinseaid"
	"dishmate/internal/domain/model"
)

var rinseaidCmd = &cobra.Command{
	Use:     "rinseaid",
	Aliases: []string{"rinse-aid"},
	Short:   "Rinse aid settings, drying and spots",
}

var rinseaidFlags struct {
	hardness string
	spots    bool
	drying   bool
	empty    bool
}

var rinseaidRecommendCmd = &cobra.Command{
	Use:     "recommend",
	Short:   "Recommend a rinse aid dial setting",
	Example: "  dishmate rinseaid recommend --hardness moderate --spots",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		h, err := resolveHardness(app, rinseaidFlags.hardness)
		if err != nil {
			return err
		}
		result, err := rinseaid.NewService().Recommend(cmd.Context(), app, model.RinseAidInput{
			WaterHardness:   h,
			HasSpotIssues:   rinseaidFlags.spots,
			HasDryingIssues: rinseaidFlags.drying,
			DispenserEmpty:  rinseaidFlags.empty,
		})
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var spotFlags struct {
	wipesOff bool
	vinegar  bool
	hardness string
}

var rinseaidSpotsCmd = &cobra.Command{
	Use:   "spots",
	Short: "Work out what is causing spots or cloudiness on glasses",
	Long: "Pass --wipes-off if the spots rub off with a finger, or --vinegar if they only come off after a vinegar soak. " +
		"Neither means the cloudiness is permanent etching.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		h, err := resolveHardness(app, spotFlags.hardness)
		if err != nil {
			return err
		}
		result, err := rinseaid.NewService().Spots(cmd.Context(), app, model.SpotInput{
			SpotsWipeOff:         spotFlags.wipesOff,
			NeedsVinegarToRemove: spotFlags.vinegar,
			WaterHardness:        h,
		})
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var rinseaidDryingCmd = &cobra.Command{
	Use:   "drying [plastic|glass|ceramic|mixed]",
	Short: "Tips for getting a category of items dry",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		var category model.ItemCategory
		if len(args) == 1 {
			if category, err = common.ParseItemCategory(args[0]); err != nil {
				return err
			}
		}
		result, err := rinseaid.NewService().Drying(cmd.Context(), app, category)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var rinseaidGuideCmd = &cobra.Command{
	Use:   "guide",
	Short: "How rinse aid works and the dial settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		result, err := rinseaid.NewService().Guide(cmd.Context(), app)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

func init() {
	r := rinseaidRecommendCmd.Flags()
	r.StringVar(&rinseaidFlags.hardness, "hardness", "", "Water hardness (defaults to the profile)")
	r.BoolVar(&rinseaidFlags.spots, "spots", false, "Glasses or cutlery come out spotty")
	r.BoolVar(&rinseaidFlags.drying, "drying", false, "Dishes come out wet")
	r.BoolVar(&rinseaidFlags.empty, "empty", false, "The rinse aid dispenser is empty")

	s := rinseaidSpotsCmd.Flags()
	s.BoolVar(&spotFlags.wipesOff, "wipes-off", false, "Spots wipe off with a finger")
	s.BoolVar(&spotFlags.vinegar, "vinegar", false, "Spots only come off with vinegar")
	s.StringVar(&spotFlags.hardness, "hardness", "", "Water hardness (defaults to the profile)")

	rinseaidCmd.AddCommand(rinseaidRecommendCmd)
	rinseaidCmd.AddCommand(rinseaidSpotsCmd)
	rinseaidCmd.AddCommand(rinseaidDryingCmd)
	rinseaidCmd.AddCommand(rinseaidGuideCmd)
}
