// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the polesplit CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/polesplit/internal/config"
	"github.com/pdiddy/polesplit/internal/logging"
	"github.com/pdiddy/polesplit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger and cfg are set in PersistentPreRunE.
var (
	logger = slog.Default()
	cfg    types.Config
)

// rootCmd is the base command for the polesplit CLI.
var rootCmd = &cobra.Command{
	Use:   "polesplit",
	Short: "Split pole transfer marker data into marker, engine and pole columns",
	Long: `polesplit reads utility work-order spreadsheets (CSV or Excel), splits the
free-form marker column into Marker_Name, Engine_Number and Pole_Number,
drops job-number rows and duplicate poles, and writes the result with a
summary report.

Marker text has the form "[Marker Name] <7-digit engine> - <pole>", for
example "POLE TRANSFER 1237876 - 07613020" or "3584096 - 10823022".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = c
		l, err := logging.Setup(cfg.Logging, os.Stderr)
		if err != nil {
			return err
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", "path", f)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./polesplit.yaml or ~/.config/polesplit/polesplit.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("polesplit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "polesplit"))
		}
	}

	viper.SetEnvPrefix("POLESPLIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
