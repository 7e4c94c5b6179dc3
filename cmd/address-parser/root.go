package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ehdc-llpg/housenumber/internal/address"
	"github.com/ehdc-llpg/housenumber/internal/config"
	"github.com/ehdc-llpg/housenumber/internal/logging"
)

// app holds what every subcommand needs once flags and config are resolved.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	errorLog *logging.ErrorLog
	factory  *address.Factory
	debug    bool
}

func newRootCmd() *cobra.Command {
	var (
		configFile     string
		logFile        string
		strictKeywords bool
		debugEnabled   bool
	)
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "address-parser",
		Short:         "Extract street and house number from single-line addresses",
		Long:          `Splits an address on a comma or a Flat/House/No/Building keyword, or scans it for a house-number token, and prints {"street", "housenumber"}.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-file") {
				cfg.Log.ErrorFile = logFile
			}
			if cmd.Flags().Changed("strict-keywords") {
				cfg.Parser.StrictKeywords = strictKeywords
			}
			if debugEnabled {
				cfg.Log.Level = "debug"
			}

			logger, err := logging.NewAppLogger(cfg.Log.Level)
			if err != nil {
				return err
			}
			errorLog, err := logging.NewErrorLog(cfg.Log.ErrorFile, "address")
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logger
			a.errorLog = errorLog
			a.debug = debugEnabled
			a.factory = address.NewFactory(address.FactoryConfig{
				StrictKeywords: cfg.Parser.StrictKeywords,
				MatchTimeout:   cfg.Parser.MatchTimeout,
				Logger:         errorLog,
			})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.errorLog != nil {
				_ = a.errorLog.Close()
			}
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logging.DefaultErrorFile, "File faults are appended to")
	rootCmd.PersistentFlags().BoolVar(&strictKeywords, "strict-keywords", false, "Only split on Flat/House/No/Building when they are whole words")
	rootCmd.PersistentFlags().BoolVar(&debugEnabled, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(createParseCmd(a))
	rootCmd.AddCommand(createBatchCmd(a))
	rootCmd.AddCommand(createServeCmd(a))
	rootCmd.AddCommand(createCompareCmd(a))

	return rootCmd
}

func validateFormat(format string) error {
	switch format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json or text)", format)
	}
}
