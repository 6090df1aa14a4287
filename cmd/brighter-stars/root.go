package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/brighter-stars/internal/config"
	"github.com/litescript/brighter-stars/internal/logging"
	"github.com/litescript/brighter-stars/internal/skycatalog"
	"github.com/litescript/brighter-stars/internal/version"
)

// app holds what every subcommand needs once the config has been read.
type app struct {
	configPath string
	logLevel   string

	raw     config.Raw
	logger  *logging.Logger
	catalog *skycatalog.SkyCatalog
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "brighter-stars",
		Short:         "Sky catalog with brightened star objects",
		Long:          "brighter-stars builds a sky catalog from the bundled bright star table and the brighter_stars object type, whose objects are native stars with their SEDs scaled by 10^(-delta_magnorm/2.5).",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./skycatalog.yaml or $HOME/skycatalog.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides log_level from config")

	root.AddCommand(
		newTypesCmd(a),
		newListCmd(a),
		newSEDCmd(a),
		newSkyCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	raw, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.raw = raw

	level := raw.LogLevel()
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}
	a.logger = logging.New(logging.ParseLevel(level))
	a.logger.SetOutput(cmd.ErrOrStderr())

	cat, err := skycatalog.New(raw, skycatalog.BuiltinStars(), a.logger)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}
	a.catalog = cat
	return nil
}

// mjdFlag returns the --mjd value when the flag was given.
func mjdFlag(cmd *cobra.Command) (*float64, error) {
	if !cmd.Flags().Changed("mjd") {
		return nil, nil
	}
	mjd, err := cmd.Flags().GetFloat64("mjd")
	if err != nil {
		return nil, err
	}
	return &mjd, nil
}

// load resolves the --region and --type flags shared by list, sed and sky.
func (a *app) load(cmd *cobra.Command, mjd *float64) (skycatalog.Region, skycatalog.Collection, error) {
	regionFlag, _ := cmd.Flags().GetString("region")
	objectType, _ := cmd.Flags().GetString("type")

	region, err := skycatalog.ParseRegion(regionFlag)
	if err != nil {
		return nil, nil, err
	}
	coll, err := a.catalog.GetObjectTypeByRegion(region, objectType, mjd)
	if err != nil {
		return nil, nil, err
	}
	return region, coll, nil
}

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().String("region", "all", `sky region: "all", "disk:ra,dec,radius" or "box:ramin,ramax,decmin,decmax" (degrees)`)
	cmd.Flags().String("type", "brighter_stars", "object type to load")
	cmd.Flags().Float64("mjd", 0, "observation epoch as a modified Julian date")
}
