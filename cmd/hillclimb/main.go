// Command hillclimb finds the fewest steps up an elevation map.
//
//	hillclimb path input.txt          # from the S marker
//	hillclimb any input.txt --trim    # from the best lowest cell
//	hillclimb run --config hill.yaml  # mode taken from the config file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/hillclimb/config"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool
	maxClimb   int
	show       bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "hillclimb",
		Short: "Shortest climbing routes over letter-encoded elevation maps",
		Long: `hillclimb reads a terrain map where 'a'..'z' are heights, S is the start
and E is the goal, and reports the fewest steps to E when every step may
climb at most one level (see --max-climb) and drop any amount.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&a.maxClimb, "max-climb", 1, "largest height gain allowed per step")
	pf.BoolVar(&a.show, "show", false, "print the route over the map")

	root.AddCommand(a.pathCmd(), a.anyCmd(), a.runCmd())

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("max-climb") {
		cfg.MaxClimb = a.maxClimb
	}
	if flags.Changed("show") {
		cfg.Show = a.show
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}

// buildLogger turns a LogConfig into a zap logger writing to stderr.
func buildLogger(lc config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Encoding == "console" {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
