package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dishmate/internal/app/common"
	"dishmate/internal/app/hardness"
	"dishmate/internal/domain/model"
)

var hardnessCmd = &cobra.Command{
	Use:   "hardness",
	Short: "Work out your water hardness and what it means for settings",
}

var testFlags struct {
	suds    string
	clarity string
}

var hardnessTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Read a soap bottle test, or show how to run one",
	Example: "  dishmate hardness test\n" +
		"  dishmate hardness test --suds few --clarity milky",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		svc := hardness.NewService()
		if testFlags.suds == "" && testFlags.clarity == "" {
			result, err := svc.Instructions(cmd.Context(), app)
			if err != nil {
				return err
			}
			return printResult(result)
		}

		suds, err := common.ParseSuds(testFlags.suds)
		if err != nil {
			return err
		}
		clarity, err := common.ParseClarity(testFlags.clarity)
		if err != nil {
			return err
		}
		result, err := svc.Test(cmd.Context(), app, suds, clarity)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var symptomFlags struct {
	whiteResidue  bool
	cloudyGlasses bool
	kettleScale   bool
	soapLathers   bool
	spottyGlasses bool
}

var hardnessSymptomsCmd = &cobra.Command{
	Use:   "symptoms",
	Short: "Estimate hardness from everyday signs",
	Long: "Only the symptoms you pass count. Use --kettle-scale=false to report that a symptom is absent; " +
		"leave a flag out if you are not sure.",
	Example: "  dishmate hardness symptoms --white-residue --kettle-scale --soap-lathers=false",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		reported := func(name string, v bool) *bool {
			if !flags.Changed(name) {
				return nil
			}
			return &v
		}
		result, err := hardness.NewService().Symptoms(cmd.Context(), app, model.SymptomFlags{
			WhiteResidueOnDishes: reported("white-residue", symptomFlags.whiteResidue),
			CloudyGlasses:        reported("cloudy-glasses", symptomFlags.cloudyGlasses),
			ScaleInKettle:        reported("kettle-scale", symptomFlags.kettleScale),
			SoapLathersEasily:    reported("soap-lathers", symptomFlags.soapLathers),
			SpottyGlassware:      reported("spotty-glasses", symptomFlags.spottyGlasses),
		})
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var hardnessCityCmd = &cobra.Command{
	Use:   "city [name]",
	Short: "Look up the water hardness of an Australian city",
	Long:  "Looks up the named city, or the profile city when no name is given.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		city := strings.TrimSpace(strings.Join(args, " "))
		if city == "" {
			city = strings.TrimSpace(app.Profile.City)
		}
		if city == "" {
			return fmt.Errorf("name a city or set one with `dishmate profile init --city`")
		}
		result, err := hardness.NewService().City(cmd.Context(), app, city)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var adviceHardness string

var hardnessAdviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Detergent, salt and rinse aid settings for a hardness level",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		h, err := resolveHardness(app, adviceHardness)
		if err != nil {
			return err
		}
		result, err := hardness.NewService().Advice(cmd.Context(), app, h)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var hardnessExplainCmd = &cobra.Command{
	Use:   "explain",
	Short: "What water hardness is and why it matters",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		result, err := hardness.NewService().Explain(cmd.Context(), app)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

func init() {
	hardnessTestCmd.Flags().StringVar(&testFlags.suds, "suds", "", "Amount of suds: few, some, lots")
	hardnessTestCmd.Flags().StringVar(&testFlags.clarity, "clarity", "", "Water under the suds: milky, slightly_cloudy, clear")

	s := hardnessSymptomsCmd.Flags()
	s.BoolVar(&symptomFlags.whiteResidue, "white-residue", false, "White residue on dishes")
	s.BoolVar(&symptomFlags.cloudyGlasses, "cloudy-glasses", false, "Glasses come out cloudy")
	s.BoolVar(&symptomFlags.kettleScale, "kettle-scale", false, "Scale builds up in the kettle")
	s.BoolVar(&symptomFlags.soapLathers, "soap-lathers", false, "Soap lathers easily")
	s.BoolVar(&symptomFlags.spottyGlasses, "spotty-glasses", false, "Spots on glassware")

	hardnessAdviceCmd.Flags().StringVar(&adviceHardness, "hardness", "", "Water hardness (defaults to the profile)")

	hardnessCmd.AddCommand(hardnessTestCmd)
	hardnessCmd.AddCommand(hardnessSymptomsCmd)
	hardnessCmd.AddCommand(hardnessCityCmd)
	hardnessCmd.AddCommand(hardnessAdviceCmd)
	hardnessCmd.AddCommand(hardnessExplainCmd)
}
