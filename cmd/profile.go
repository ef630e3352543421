package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"dishmate/internal/app/common"
	"dishmate/internal/app/profile"
	"dishmate/internal/infra/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Save household defaults used by every command",
	Long: "The profile lives in $XDG_CONFIG_HOME/dishmate/profile.yaml. DISHMATE_* environment variables " +
		"override it, and command flags override both.",
}

var profileFlags struct {
	hardness     string
	city         string
	loadsPerWeek int
	detergent    string
	usage        string
	force        bool
}

var profileInitCmd = &cobra.Command{
	Use:     "init",
	Short:   "Write the household profile",
	Example: "  dishmate profile init --city adelaide --loads-per-week 7 --detergent powder --usage daily",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		store, err := config.NewStore()
		if err != nil {
			return err
		}

		p := app.Profile
		flags := cmd.Flags()
		if flags.Changed("hardness") {
			if p.WaterHardness, err = common.ParseHardness(profileFlags.hardness); err != nil {
				return err
			}
		}
		if flags.Changed("city") {
			p.City = strings.TrimSpace(profileFlags.city)
		}
		if flags.Changed("loads-per-week") {
			if err := common.RequireNonNegative("loads-per-week", profileFlags.loadsPerWeek); err != nil {
				return err
			}
			p.LoadsPerWeek = profileFlags.loadsPerWeek
		}
		if flags.Changed("detergent") {
			if p.DetergentFormat, err = common.ParseFormat(profileFlags.detergent); err != nil {
				return err
			}
		}
		if flags.Changed("usage") {
			if p.UsagePattern, err = common.ParseUsagePattern(profileFlags.usage); err != nil {
				return err
			}
		}

		result, err := profile.NewService(store).Init(cmd.Context(), app, p, profileFlags.force)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the household profile and where it is stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		store, err := config.NewStore()
		if err != nil {
			return err
		}
		result, err := profile.NewService(store).Show(cmd.Context(), app)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

func init() {
	f := profileInitCmd.Flags()
	f.StringVar(&profileFlags.hardness, "hardness", "", "Water hardness: soft, moderate, hard, unknown")
	f.StringVar(&profileFlags.city, "city", "", "City used to look up hardness")
	f.IntVar(&profileFlags.loadsPerWeek, "loads-per-week", 0, "Loads run per week")
	f.StringVar(&profileFlags.detergent, "detergent", "", "Detergent format you use")
	f.StringVar(&profileFlags.usage, "usage", "", "How often you run the machine: daily, regular, occasional")
	f.BoolVar(&profileFlags.force, "force", false, "Overwrite an existing profile")

	profileCmd.AddCommand(profileInitCmd)
	profileCmd.AddCommand(profileShowCmd)
}
