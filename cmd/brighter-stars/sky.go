package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/brighter-stars/internal/skycatalog"
	"github.com/litescript/brighter-stars/internal/ui"
)

func newSkyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sky",
		Short: "Plot the objects of one type on an interactive sky view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("brighter-stars sky requires a TTY (terminal)")
			}

			mjd, err := mjdFlag(cmd)
			if err != nil {
				return err
			}
			region, coll, err := a.load(cmd, mjd)
			if err != nil {
				return err
			}
			rows, err := skycatalog.Summarize(coll, mjd)
			if err != nil {
				return err
			}
			a.logger.Debug("plotting %d %s objects in %s", len(rows), coll.ObjectType(), region)

			model := ui.New(a.raw.CatalogName(), coll.ObjectType(), region, rows)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
	addQueryFlags(cmd)
	return cmd
}
