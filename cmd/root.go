package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/faith"
	"github.com/faithboard/faithboard/internal/history"
	"github.com/faithboard/faithboard/internal/outwriter"
	"github.com/faithboard/faithboard/schema"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// envFile is loaded into the environment before the FAITHBOARD_ variables are read.
const envFile = ".env"

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// writer renders every report.
var writer = outwriter.NewOutWriter()

// newProvider builds the statistics source of the commands. Tests replace it.
var newProvider = func(c *contract.Config) contract.StatsProvider {
	return faith.NewService(c)
}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "faithboard",
	Short:              "Track Bible memorization, reading, prayer and church attendance.",
	Long:               `Faithboard combines Anki, KOReader, prayer and Arc Timeline data into one dashboard of your spiritual habits.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// A missing .env is the common case.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		contract.LogWarn("Could not load "+envFile, err)
	}

	setConfigFile()

	// Set environment variable prefix
	viper.SetEnvPrefix("FAITHBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("view", schema.VersesView)
	viper.SetDefault("unit", schema.MinutesUnit)
	viper.SetDefault("days", contract.DefaultDays)
	viper.SetDefault("weeks", contract.DefaultWeeks)
	viper.SetDefault("places-days", contract.DefaultPlacesDays)
	viper.SetDefault("limit", contract.DefaultPlacesLimit)
	viper.SetDefault("history-backend", schema.SQLiteBackend)
	viper.SetDefault("history-db-connect", "")
	viper.SetDefault("addr", contract.DefaultAddr)
	viper.SetDefault("emoji", "no")
	viper.SetDefault("color", "yes")
}

// setConfigFile points viper at --config or the default .faithboard.yaml.
func setConfigFile() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		return
	}
	viper.SetConfigName(".faithboard") // Name of config file (without extension)
	viper.SetConfigType("yaml")        // We'll use YAML format
	viper.AddConfigPath(".")           // Look in the current directory
	viper.AddConfigPath("$HOME")       // Look in the home directory
}

// loadConfigFile reads the config file if present.
func loadConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}
	return nil
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := loadConfigFile(); err != nil {
		return err
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	// 4. Initialize the history store with the validated config.
	if err := history.Init(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// historyParams are the settings recorded with each history run.
func historyParams() map[string]any {
	return map[string]any{
		"view":          cfg.View,
		"unit":          cfg.Unit,
		"days":          cfg.Days,
		"weeks":         cfg.Weeks,
		"time_zone":     cfg.TimeZone,
		"rollover_hour": cfg.RolloverHour,
		"as_of":         cfg.Now().Format(contract.DateTimeFormat),
		"deck":          strings.ReplaceAll(cfg.DeckName, "\x1f", "::"),
	}
}

// Execute runs the root command.
func Execute() error {
	defer history.Close()
	return rootCmd.Execute()
}
