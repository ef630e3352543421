package cmd

import (
	"github.com/spf13/cobra"

	"dishmate/internal/app/common"
	"dishmate/internal/app/troubleshoot"
	"dishmate/internal/domain/model"
)

var troubleshootFlags struct {
	category    string
	answers     []string
	interactive bool
}

var troubleshootCmd = &cobra.Command{
	Use:   "troubleshoot",
	Short: "Diagnose a dishwashing problem step by step",
	Long: "Walks the troubleshooting questions for a problem. Pass each answer with --answer to replay a path, " +
		"or use --interactive to answer in the terminal and step back with esc.",
	Example: "  dishmate troubleshoot --category white_residue --answer powdery --answer yes_hard\n" +
		"  dishmate troubleshoot --interactive",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}

		var category model.TroubleshootCategory
		if troubleshootFlags.category != "" {
			category, err = common.ParseCategory(troubleshootFlags.category)
			if err != nil {
				return err
			}
		}

		answers := troubleshootFlags.answers
		if troubleshootFlags.interactive {
			walked, ok, err := runTroubleshootWalker(category)
			if err != nil || !ok {
				return err
			}
			category, answers = walked.category, walked.answers
		}

		result, err := troubleshoot.NewService().Run(cmd.Context(), app, category, answers)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var troubleshootCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the problems troubleshooting can start from",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		result, err := troubleshoot.NewService().Categories(cmd.Context(), app)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

func init() {
	troubleshootCmd.Flags().StringVar(&troubleshootFlags.category, "category", "", "Problem category to start from")
	troubleshootCmd.Flags().StringArrayVar(&troubleshootFlags.answers, "answer", nil, "Answer to the next question (repeatable)")
	troubleshootCmd.Flags().BoolVarP(&troubleshootFlags.interactive, "interactive", "i", false, "Answer questions in the terminal")

	troubleshootCmd.AddCommand(troubleshootCategoriesCmd)
}
