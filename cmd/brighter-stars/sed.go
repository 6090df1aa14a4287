package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/brighter-stars/internal/astro"
	"github.com/litescript/brighter-stars/internal/skycatalog"
)

func newSEDCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sed",
		Short: "Print the observer-frame SED of one object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mjd, err := mjdFlag(cmd)
			if err != nil {
				return err
			}
			if mjd == nil {
				now := astro.ModifiedJulianDate(time.Now())
				mjd = &now
			}
			_, coll, err := a.load(cmd, mjd)
			if err != nil {
				return err
			}

			index, _ := cmd.Flags().GetInt("index")
			obj, err := coll.At(index)
			if err != nil {
				return err
			}
			obsSED, err := skycatalog.ObserverSED(obj, mjd)
			if err != nil {
				return err
			}

			every, _ := cmd.Flags().GetInt("every")
			if every < 1 {
				every = 1
			}
			wl, flux := obsSED.Wavelength(), obsSED.Flux()
			t := newTable("WAVELENGTH (nm)", "F_NU (erg/s/cm²/Hz)")
			for i := 0; i < len(wl); i += every {
				t.Row(fmt.Sprintf("%.1f", wl[i]), fmt.Sprintf("%.4e", flux[i]))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  RA %.3f  Dec %+.3f  MJD %.5f\n", obj.ID(), obj.RA(), obj.Dec(), *mjd)
			fmt.Fprintln(out, t.Render())
			fmt.Fprintf(out, "AB magnitude %.3f\n", obsSED.ABMagnitude())
			return nil
		},
	}
	addQueryFlags(cmd)
	cmd.Flags().Int("index", 0, "object index within the loaded collection")
	cmd.Flags().Int("every", 10, "print every Nth wavelength sample")
	return cmd
}
