// Package cli wires configuration, logging and the settlement engine into the
// severance command.
package cli

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"severance-engine/internal/config"
	"severance-engine/internal/engine"
	"severance-engine/internal/logging"
	"severance-engine/internal/taxregistry"
)

type app struct {
	configPath string
	verbose    bool

	cfg      *config.Config
	logger   *zap.Logger
	registry *taxregistry.Registry
}

// NewRootCommand builds the severance command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "severance",
		Short: "Brazilian severance settlement calculator",
		Long: `Estimates the amounts due when an employment contract ends under
Brazilian labor rules: salary balance, notice period, 13th salary, vacation,
INSS and IRRF withholding, and FGTS withdrawal and penalty.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "severance.yaml", "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newServeCommand(a), newCalcCommand(a))
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging.Level, a.verbose)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	if cfg.Taxes.RegistryURL != "" {
		a.registry = taxregistry.New(cfg.Taxes.RegistryURL)
	}
	return nil
}

// engine builds the settlement engine, preferring the registry tables for the
// current year when a registry is configured.
func (a *app) engine() *engine.Engine {
	cfg := *a.cfg
	if a.registry != nil {
		year := time.Now().Year()
		taxes, err := a.registry.Tables(year, cfg.Taxes)
		if err != nil {
			a.logger.Warn("tax registry unavailable, using local tables",
				zap.Int("year", year), zap.Error(err))
		}
		cfg.Taxes = taxes
	}
	return engine.New(cfg.Settler(), a.logger)
}
