package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"trucktrack/internal/config"
	"trucktrack/internal/domain"
	"trucktrack/internal/router"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func newRoutesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(opts)
			if err != nil {
				return err
			}
			defer a.cleanup()

			rt := router.DefaultTable(router.ConflictMode(a.cfg.RouteConflictMode))
			t := newTable("PATTERN", "VIEW")
			for _, r := range rt.Routes() {
				t.Row(r.Pattern, string(r.View))
			}
			t.Row("*", string(rt.NotFound()))

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			fmt.Fprintf(cmd.OutOrStdout(), "conflict mode: %s\n", rt.Mode())
			return nil
		},
	}
}

func newResolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Show which view a path opens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(opts)
			if err != nil {
				return err
			}
			defer a.cleanup()

			rt := router.DefaultTable(router.ConflictMode(a.cfg.RouteConflictMode))
			m := rt.Resolve(args[0])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "view:    %s\n", m.View)
			if m.NotFound {
				fmt.Fprintln(out, "pattern: (no match)")
				return nil
			}
			fmt.Fprintf(out, "pattern: %s\n", m.Pattern)

			keys := make([]string, 0, len(m.Params))
			for k := range m.Params {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "param:   %s=%s\n", k, m.Params[k])
			}
			return nil
		},
	}
}

func newTrucksCmd(opts *rootOptions) *cobra.Command {
	var cuisine string

	cmd := &cobra.Command{
		Use:   "trucks [query]",
		Short: "Search the truck catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(opts)
			if err != nil {
				return err
			}
			defer a.cleanup()

			query := strings.Join(args, " ")
			trucks := a.store.Search(query, domain.CuisineID(strings.ToLower(cuisine)))
			if len(trucks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no trucks match")
				return nil
			}

			t := newTable("ID", "NAME", "CUISINE", "RATING", "LOCATION")
			for _, tr := range trucks {
				t.Row(tr.ID, tr.Name, string(tr.Cuisine), fmt.Sprintf("%.1f", tr.Rating), tr.Location)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.Flags().StringVar(&cuisine, "cuisine", "", "only show this cuisine (mexican, asian, bbq, ...)")
	return cmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), opts.resolvedConfigPath())
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The existing file is not loaded, so a broken one can be replaced
			path := opts.resolvedConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.NewConfigServiceAt(path, nil).Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	return configCmd
}
