package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/litescript/brighter-stars/internal/skycatalog"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered object types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := newTable("TYPE", "CUSTOM LOAD", "DESCRIPTION")
			for _, name := range a.catalog.Registry().Names() {
				st, _ := a.catalog.Registry().Lookup(name)
				t.Row(st.Name, strconv.FormatBool(st.CustomLoad), st.Description)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())

			var unused []string
			for _, name := range skycatalog.PluginNames() {
				if _, ok := a.catalog.Registry().Lookup(name); !ok {
					unused = append(unused, name)
				}
			}
			if len(unused) > 0 {
				dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
				fmt.Fprintln(cmd.OutOrStdout(), dim.Render(fmt.Sprintf("available but not configured: %v", unused)))
			}
			return nil
		},
	}
}

// newTable returns a bordered table with a bold header row.
func newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("60"))).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
