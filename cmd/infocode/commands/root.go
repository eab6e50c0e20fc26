package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/infocode/config"
)

var (
	cfgPath string
	outDir  string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "infocode",
		Short:         "Prefix codes and Hamming(7,4) error correction for texts",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfgPath != "" {
				cfg, err = config.Load(cfgPath)
				if err != nil {
					return err
				}
			} else {
				cfg = config.Default()
			}
			if outDir != "" {
				cfg.OutputDir = outDir
			}

			zc := zap.NewProductionConfig()
			level, err := zapcore.ParseLevel(cfg.Logging.Level)
			if err != nil {
				return err
			}
			if verbose {
				level = zapcore.DebugLevel
			}
			zc.Level = zap.NewAtomicLevelAt(level)
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVarP(&outDir, "out", "o", "", "directory for CSV reports (overrides output_dir)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(fanoCmd(), hammingCmd(), analyzeCmd())
	return root
}
