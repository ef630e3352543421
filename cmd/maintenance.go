package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dishmate/internal/app/common"
	"dishmate/internal/app/maintenance"
	"dishmate/internal/domain/model"
)

const dateLayout = "2006-01-02"

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Plan and check dishwasher upkeep",
}

var scheduleFlags struct {
	loadsPerWeek    int
	hardness        string
	smell           bool
	residue         bool
	lastFilterClean string
	lastDeepClean   string
}

var maintenanceScheduleCmd = &cobra.Command{
	Use:     "schedule",
	Short:   "Build a maintenance schedule for your household",
	Example: "  dishmate maintenance schedule --loads-per-week 8 --hardness hard --last-filter-clean 2024-03-01",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}

		loads := app.Profile.LoadsPerWeek
		if cmd.Flags().Changed("loads-per-week") {
			loads = scheduleFlags.loadsPerWeek
		}
		if err := common.RequireNonNegative("loads-per-week", loads); err != nil {
			return err
		}
		h, err := resolveHardness(app, scheduleFlags.hardness)
		if err != nil {
			return err
		}
		filter, err := parseDate("last-filter-clean", scheduleFlags.lastFilterClean)
		if err != nil {
			return err
		}
		deep, err := parseDate("last-deep-clean", scheduleFlags.lastDeepClean)
		if err != nil {
			return err
		}

		result, err := maintenance.NewService().Schedule(cmd.Context(), app, model.MaintenanceInput{
			LoadsPerWeek:     loads,
			WaterHardness:    h,
			HasSmellIssues:   scheduleFlags.smell,
			HasResidueIssues: scheduleFlags.residue,
			LastFilterClean:  filter,
			LastDeepClean:    deep,
		})
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var checkFlags struct {
	filterCleaned bool
	deepCleaned   bool
	rinseAidFull  bool
	smell         bool
	residue       bool
	dirtyDishes   bool
}

var maintenanceCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Score your upkeep out of 100",
	Long: "Answers are flags: report what you have done with --filter-cleaned, --deep-cleaned and --rinse-aid-full, " +
		"and any problems with --smell, --residue and --dirty-dishes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		result, err := maintenance.NewService().Check(cmd.Context(), app, model.CheckInput{
			FilterCleanedWithin30Days: checkFlags.filterCleaned,
			DeepCleanWithin60Days:     checkFlags.deepCleaned,
			RinseAidFull:              checkFlags.rinseAidFull,
			NoSmellIssues:             !checkFlags.smell,
			NoResidueIssues:           !checkFlags.residue,
			NoDirtyDishIssues:         !checkFlags.dirtyDishes,
		})
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var tasksImportance string

var maintenanceTasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List maintenance tasks with steps and tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}
		var level model.Importance
		if tasksImportance != "" {
			if level, err = common.ParseImportance(tasksImportance); err != nil {
				return err
			}
		}
		result, err := maintenance.NewService().Tasks(cmd.Context(), app, level)
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

// parseDate reads a YYYY-MM-DD flag in local time. Empty means not known.
func parseDate(flag, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return nil, fmt.Errorf("--%s must be a date like 2024-03-01: %w", flag, err)
	}
	return &t, nil
}

func init() {
	f := maintenanceScheduleCmd.Flags()
	f.IntVar(&scheduleFlags.loadsPerWeek, "loads-per-week", 0, "Loads run per week (defaults to the profile)")
	f.StringVar(&scheduleFlags.hardness, "hardness", "", "Water hardness (defaults to the profile)")
	f.BoolVar(&scheduleFlags.smell, "smell", false, "The machine smells")
	f.BoolVar(&scheduleFlags.residue, "residue", false, "Dishes come out with residue")
	f.StringVar(&scheduleFlags.lastFilterClean, "last-filter-clean", "", "Date the filter was last cleaned (YYYY-MM-DD)")
	f.StringVar(&scheduleFlags.lastDeepClean, "last-deep-clean", "", "Date of the last cleaning cycle (YYYY-MM-DD)")

	c := maintenanceCheckCmd.Flags()
	c.BoolVar(&checkFlags.filterCleaned, "filter-cleaned", false, "Filter cleaned in the last 30 days")
	c.BoolVar(&checkFlags.deepCleaned, "deep-cleaned", false, "Cleaning cycle run in the last 60 days")
	c.BoolVar(&checkFlags.rinseAidFull, "rinse-aid-full", false, "Rinse aid dispenser is full")
	c.BoolVar(&checkFlags.smell, "smell", false, "The machine smells")
	c.BoolVar(&checkFlags.residue, "residue", false, "Dishes come out with residue")
	c.BoolVar(&checkFlags.dirtyDishes, "dirty-dishes", false, "Dishes come out dirty")

	maintenanceTasksCmd.Flags().StringVar(&tasksImportance, "importance", "", "Only tasks of this importance: critical, high, medium, low")

	maintenanceCmd.AddCommand(maintenanceScheduleCmd)
	maintenanceCmd.AddCommand(maintenanceCheckCmd)
	maintenanceCmd.AddCommand(maintenanceTasksCmd)
}
