package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/litescript/brighter-stars/internal/skycatalog"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the objects of one type in a region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mjd, err := mjdFlag(cmd)
			if err != nil {
				return err
			}
			_, coll, err := a.load(cmd, mjd)
			if err != nil {
				return err
			}
			rows, err := skycatalog.Summarize(coll, mjd)
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			t := newTable("#", "ID", "RA", "DEC", "BASE MAG", "MAG", "FLUX SCALE")
			for _, r := range rows {
				t.Row(
					strconv.Itoa(r.Index),
					r.ID,
					fmt.Sprintf("%.3f", r.RA),
					fmt.Sprintf("%+.3f", r.Dec),
					fmt.Sprintf("%.2f", r.BaseMag),
					fmt.Sprintf("%.2f", r.Mag),
					fmt.Sprintf("%.4g", r.FluxScale),
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s objects\n", len(rows), coll.ObjectType())
			return nil
		},
	}
	addQueryFlags(cmd)
	cmd.Flags().Bool("json", false, "print objects as JSON")
	return cmd
}
