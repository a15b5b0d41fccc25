package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/handlecheck/pkg/metrics"
)

// flags are shared by every subcommand.
type flags struct {
	envFiles    []string
	logLevel    string
	logFormat   string
	json        bool
	seed        int64
	metricsFile string
}

// openFunc builds the app for a subcommand. Without the service only config,
// logging and metrics are set up.
type openFunc func(cmd *cobra.Command, withService bool) (*app, error)

func newRootCmd() *cobra.Command {
	f := &flags{}
	var a *app

	root := &cobra.Command{
		Use:           "handlecheck",
		Short:         "Check username availability and suggest alternatives",
		Long:          `handlecheck validates usernames against a registered-users directory and a restricted word list, and proposes decorated alternatives for rejected ones.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a == nil || f.metricsFile == "" {
				return nil
			}
			if err := metrics.WriteTextfile(f.metricsFile, a.registry); err != nil {
				return err
			}
			a.log.DebugContext(cmd.Context(), "metrics written", "path", f.metricsFile)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringSliceVar(&f.envFiles, "env-file", nil, "Load environment from file (repeatable)")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&f.logFormat, "log-format", "", "Log format: text or json")
	pf.BoolVar(&f.json, "json", false, "Print results as JSON lines")
	pf.Int64Var(&f.seed, "seed", 0, "Random seed for suggestions (0 uses RANDOM_SEED or the clock)")
	pf.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after the run")

	// open builds the app once per invocation and keeps it for the post-run hook.
	var open openFunc = func(cmd *cobra.Command, withService bool) (*app, error) {
		var err error
		a, err = newApp(cmd.Context(), f, cmd.ErrOrStderr(), withService)
		if err != nil {
			return nil, err
		}
		cmd.SetContext(a.ctx)
		return a, nil
	}

	root.AddCommand(
		newCheckCmd(f, open),
		newSuggestCmd(open),
		newMigrateCmd(open),
		newConfigCmd(f, open),
	)
	return root
}
