package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"dishmate/internal/app/common"
	"dishmate/internal/infra/config"
	"dishmate/internal/infra/logging"
)

var (
	opts common.GlobalOptions
	// activeApp is flushed by Execute once the command returns.
	activeApp *common.AppContext
)

var rootCmd = &cobra.Command{
	Use:   "dishmate",
	Short: "Dishmate helps you get clean dishes out of your dishwasher",
	Long: "Dishmate picks wash cycles and detergent doses for a load, walks through troubleshooting, " +
		"plans maintenance and explains water hardness, detergent and rinse aid.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		stdin, _ := os.Stdin.Stat()
		stdout, _ := os.Stdout.Stat()
		if opts.JSON || stdin == nil || stdout == nil || !shouldUseInteractive(stdin.Mode(), stdout.Mode(), os.Getenv("TERM")) {
			return cmd.Help()
		}
		return runInteractiveMenu()
	},
}

func Execute() error {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		appCtx, err := buildAppContext(ctx, !isProfileCommand(cmd))
		if err != nil {
			return err
		}
		activeApp = appCtx
		cmd.SetContext(context.WithValue(ctx, common.ContextKeyApp, appCtx))
		return nil
	}

	err := rootCmd.Execute()
	if activeApp != nil && activeApp.Logger != nil {
		_ = activeApp.Logger.Sync()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Echo advice log entries to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&opts.NoLog, "no-log", false, "Disable the advice log")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(troubleshootCmd)
	rootCmd.AddCommand(maintenanceCmd)
	rootCmd.AddCommand(hardnessCmd)
	rootCmd.AddCommand(prerinseCmd)
	rootCmd.AddCommand(detergentCmd)
	rootCmd.AddCommand(rinseaidCmd)
	rootCmd.AddCommand(cyclesCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(profileCmd)
}

func printResult(v any) error {
	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	if line, ok := v.(fmt.Stringer); ok {
		fmt.Println(line.String())
		return nil
	}

	if text, ok := renderHuman(v); ok {
		fmt.Println(text)
		return nil
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

// buildAppContext loads the household profile and the advice logger. With
// strict unset a broken profile falls back to defaults so it can be
// rewritten.
func buildAppContext(ctx context.Context, strict bool) (*common.AppContext, error) {
	profile := config.DefaultProfile()
	store, err := config.NewStore()
	if err == nil {
		loaded, loadErr := store.Load(ctx)
		switch {
		case loadErr == nil:
			profile = loaded
		case strict:
			return nil, fmt.Errorf("%w (fix it or run `dishmate profile init --force`)", loadErr)
		}
	}

	logDisabled := opts.NoLog || os.Getenv("DISHMATE_NO_LOG") == "1"
	logger, err := logging.NewAdviceLogger(ctx, logging.Options{
		Disabled: logDisabled,
		Debug:    opts.Debug,
		DebugOut: os.Stderr,
	})
	if err != nil {
		logger = logging.NewNoopLogger()
	}

	return &common.AppContext{
		Options: opts,
		Profile: profile,
		Logger:  logger,
	}, nil
}

func isProfileCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == profileCmd {
			return true
		}
	}
	return false
}

func isCharDevice(mode os.FileMode) bool {
	return mode&os.ModeCharDevice != 0
}

func isDumbTerm(term string) bool {
	t := strings.ToLower(strings.TrimSpace(term))
	return t == "" || t == "dumb"
}

func shouldUseInteractive(stdin, stdout os.FileMode, term string) bool {
	return isCharDevice(stdin) && isCharDevice(stdout) && !isDumbTerm(term)
}

// runSelf re-runs this binary with args so each menu choice gets a fresh
// command tree and flag state.
func runSelf(args ...string) error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	c := exec.Command(exe, args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
