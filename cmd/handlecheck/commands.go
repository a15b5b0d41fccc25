package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/handlecheck/pkg/pg"
	"github.com/dmitrymomot/handlecheck/svc/username"
)

func newCheckCmd(f *flags, open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "check <username>...",
		Short: "Check whether usernames can be registered",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, "No username provided")
				return nil
			}

			a, err := open(cmd, true)
			if err != nil {
				return err
			}
			defer a.close()

			for _, res := range a.service.CheckUsernames(cmd.Context(), args...) {
				if err := printResult(out, res, f.json); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newSuggestCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <seed>",
		Short: "Print suggestions derived from a seed username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd, true)
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			for _, s := range a.service.Suggest(cmd.Context(), args[0]) {
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}
}

func newMigrateCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the Postgres usernames table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd, false)
			if err != nil {
				return err
			}
			defer a.close()

			pool, err := pg.Connect(cmd.Context(), a.cfg.Postgres)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := pg.Migrate(cmd.Context(), pool, a.cfg.Postgres, a.log); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}
}

func newConfigCmd(f *flags, open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective rules and directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd, true)
			if err != nil {
				return err
			}
			defer a.close()

			health := make(map[string]string, len(a.health))
			for name, check := range a.health {
				health[name] = "ok"
				if err := check(cmd.Context()); err != nil {
					health[name] = err.Error()
				}
			}

			summary := configSummary{
				Environment:     a.cfg.Environment().String(),
				MinLength:       a.rules.MinLength(),
				RestrictedWords: len(a.rules.RestrictedWords()),
				DirectorySize:   a.dir.Len(),
				Sources:         a.cfg.Sources,
				Health:          health,
			}
			if f.json {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(summary)
			}
			return summary.print(cmd.OutOrStdout())
		},
	}
}

type configSummary struct {
	Environment     string            `json:"environment"`
	MinLength       int               `json:"min_length"`
	RestrictedWords int               `json:"restricted_words"`
	DirectorySize   int               `json:"directory_size"`
	Sources         []string          `json:"sources"`
	Health          map[string]string `json:"health,omitempty"`
}

func (s configSummary) print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "environment:\t%s\n", s.Environment)
	fmt.Fprintf(tw, "min length:\t%d\n", s.MinLength)
	fmt.Fprintf(tw, "restricted words:\t%d\n", s.RestrictedWords)
	fmt.Fprintf(tw, "directory size:\t%d\n", s.DirectorySize)
	fmt.Fprintf(tw, "sources:\t%s\n", strings.Join(s.Sources, ", "))
	for _, name := range s.Sources {
		if status, ok := s.Health[name]; ok {
			fmt.Fprintf(tw, "health %s:\t%s\n", name, status)
		}
	}
	return tw.Flush()
}

func printResult(w io.Writer, res username.Result, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(res)
	}
	_, err := fmt.Fprintln(w, res.String())
	return err
}
