package cmd

import (
	"github.com/spf13/cobra"

	"dishmate/internal/app/common"
	"dishmate/internal/app/rules"
	"dishmate/internal/domain/model"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [engine]",
	Short: "Show the order advice rules are checked in",
	Long:  "Engines: cycle, maintenance_frequency, detergent_format. The first matching rule decides the advice.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		var engine model.RuleEngine
		if len(args) == 1 {
			if engine, err = common.ParseRuleEngine(args[0]); err != nil {
				return err
			}
		}
		result, err := rules.NewService().Run(cmd.Context(), app, engine)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}
