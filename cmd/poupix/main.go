// Package main is the poupix entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joselucas77/poupix/internal/common"
	"github.com/joselucas77/poupix/internal/config"
	"github.com/joselucas77/poupix/internal/ledger"
	"github.com/joselucas77/poupix/internal/tui"
	"github.com/joselucas77/poupix/internal/tui/themes"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "poupix",
		Short: "Personal finance dashboard for the terminal",
		Long: `poupix tracks your debts and goals against your monthly salary:
add transactions, filter and search them, and see at a glance how much
of the month's salary is left.`,
		PersistentPreRunE: initConfig,
		RunE:              runDashboard,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default: %s/config.yaml)", config.Dir()))
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of discarding them")
	rootCmd.PersistentFlags().String("theme", "default", "color theme (default, catppuccin-mocha)")
	rootCmd.Flags().Bool("empty", false, "start with an empty ledger instead of the demo data")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("empty", rootCmd.Flags().Lookup("empty"))

	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.Dir())
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("POUPIX")
	viper.AutomaticEnv()

	config.SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// No config file is fine, defaults apply.
		case cfgFile != "" && os.IsNotExist(err):
			return fmt.Errorf("%w: %s", common.ErrMissingConfig, cfgFile)
		default:
			return common.NewUserError("failed to read config", err)
		}
	}

	cfg, err := config.FromViper()
	if err != nil {
		return err
	}

	return setupLogging(cfg)
}

// setupLogging routes logs away from the terminal: the dashboard owns the
// screen, so output goes to the configured file or nowhere.
func setupLogging(cfg config.Config) error {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return common.NewUserError("failed to open log file", err)
		}
		w = f
	}

	common.SetupLogger(w, level, cfg.LogFormat)
	return nil
}

func runDashboard(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromViper()
	if err != nil {
		return err
	}

	seed := ledger.SeedTransactions()
	if cfg.Empty {
		seed = nil
	}
	store := ledger.NewStore(cfg.Salary, seed)

	common.LogInfo("starting dashboard", common.Fields{
		"theme":        cfg.Theme,
		"salary":       cfg.Salary,
		"transactions": len(seed),
	})

	if err := tui.Run(tui.Config{Store: store, Theme: themes.GetTheme(cfg.Theme)}); err != nil {
		common.LogError(err, "dashboard exited", nil)
		return err
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("poupix %s\n", version)
		},
	}
}
