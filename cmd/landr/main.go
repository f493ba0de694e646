package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reviewlab/landr/internal/config"
	"github.com/reviewlab/landr/internal/utils"
	"github.com/reviewlab/landr/internal/version"
)

var (
	home, _        = os.UserHomeDir()
	configFileName = "config"
)

var rootCmd = &cobra.Command{
	Use:     "landr",
	Short:   "Land approved review revisions into a Subversion working copy",
	Version: version.Detailed(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultConfigPath, "landr config file")
	rootCmd.PersistentFlags().StringP("owner", "o", "", "review server account whose revisions are landed")
	rootCmd.PersistentFlags().StringP("server", "s", "", "review server URL")
	rootCmd.PersistentFlags().StringP("working-copy", "w", "", "subversion working copy root")
}

func main() {
	logFile := config.DefaultLogFilePath
	if err := utils.EnsureDir(filepath.Dir(logFile)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// terminal gets the tinted stream, the log file keeps plain text
	stderrHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "15:04:05",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
	fileHandler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(utils.NewMultiLogHandler(stderrHandler, fileHandler)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) error {
	// config path
	if cfgFlag := cmd.Flag("config"); cfgFlag != nil && cfgFlag.Changed {
		viper.SetConfigFile(cfgFlag.Value.String())
	} else {
		viper.AddConfigPath(filepath.Join(home, ".landr"))
		viper.SetConfigName(configFileName)
		viper.SetConfigType("json")
	}

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		enoent := errors.Is(err, os.ErrNotExist)
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !enoent && !notFound {
			return fmt.Errorf("config read '%s': %w", viper.ConfigFileUsed(), err)
		}
	}

	// Bind flags to viper
	viper.BindPFlag("owner", cmd.Flag("owner"))
	viper.BindPFlag("server_url", cmd.Flag("server"))
	viper.BindPFlag("working_copy", cmd.Flag("working-copy"))

	// Set up environment variables
	viper.SetEnvPrefix("LANDR")
	viper.AutomaticEnv()

	return nil
}

// currentConfig assembles and validates the effective config from file, env
// and flags. A missing or incomplete config gets a bootstrap hint.
func currentConfig() (*config.Config, error) {
	cfg := &config.Config{
		Path:        viper.ConfigFileUsed(),
		Owner:       viper.GetString("owner"),
		ServerURL:   viper.GetString("server_url"),
		WorkingCopy: viper.GetString("working_copy"),
		CommitHooks: viper.GetBool("commit_hooks"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w\nrun `landr init` or create %s with {\"owner\": ..., \"server_url\": ..., \"working_copy\": ...}",
			err, config.DefaultConfigPath)
	}

	return cfg, nil
}
