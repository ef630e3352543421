package cmd

import (
	"github.com/spf13/cobra"

	"dishmate/internal/app/common"
	"dishmate/internal/app/prerinse"
)

var prerinseCmd = &cobra.Command{
	Use:   "prerinse",
	Short: "Decide what to scrape off and what to leave for the detergent",
}

var prerinseClassifyCmd = &cobra.Command{
	Use:     "classify <food> [food...]",
	Short:   "Say whether each bit of food should be scraped or left",
	Example: `  dishmate prerinse classify "chicken bones" "dried egg" "tomato sauce"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		result, err := prerinse.NewService().Classify(cmd.Context(), app, args)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var prerinseGuideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Why you should scrape but not rinse",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		result, err := prerinse.NewService().Guide(cmd.Context(), app)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

func init() {
	prerinseCmd.AddCommand(prerinseClassifyCmd)
	prerinseCmd.AddCommand(prerinseGuideCmd)
}
