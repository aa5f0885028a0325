// Copyright Hadayhoc Technology, 2026. All rights reserved.

// Package main is the entry point for the nanglucso CLI, a pipeline that
// integrates digital-competence requirements into lesson-plan documents:
// ingest, prompt, model fallback invocation, preview, export.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hadayhoc-tech/nanglucso/internal/secrets"
	"github.com/hadayhoc-tech/nanglucso/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

var rootCmd = &cobra.Command{
	Use:   "nanglucso",
	Short: "Integrate digital-competence requirements into lesson plans",
	Long: `nanglucso merges a digital-competence requirements appendix into a
lesson plan (.docx) by delegating content synthesis to the Gemini API with
an ordered model fallback chain.

Each pipeline stage is a subcommand: convert ingests a document for
inspection, integrate runs the full orchestration, models lists the
candidate catalog, and settings manages the persisted preferences.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nanglucso.yaml or ~/.config/nanglucso/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nanglucso")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nanglucso"))
		}
	}

	viper.SetEnvPrefix("NANGLUCSO")
	viper.AutomaticEnv()

	viper.SetDefault("generation.timeout", 5*time.Minute)
	viper.SetDefault("generation.user_agent", "nanglucso/"+version)
	viper.SetDefault("generation.attempt_timeout", 2*time.Minute)
	viper.SetDefault("ingest.image", "mammoth:latest")
	viper.SetDefault("export.output_dir", ".")
	viper.SetDefault("settings.path", "nanglucso.db")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the pipeline configuration from viper.
func loadConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Ingest: types.IngestConfig{
			Image: viper.GetString("ingest.image"),
		},
		Generation: types.GenerationConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("generation.timeout"),
				UserAgent: viper.GetString("generation.user_agent"),
			},
			APIKey:         viper.GetString("generation.api_key"),
			Model:          viper.GetString("generation.model"),
			AttemptTimeout: viper.GetDuration("generation.attempt_timeout"),
		},
		Export: types.ExportConfig{
			OutputDir: viper.GetString("export.output_dir"),
		},
		Settings: types.SettingsConfig{
			Path: viper.GetString("settings.path"),
		},
	}
}

// resolveAPIKey picks the credential: explicit flag first, then the secrets
// directory, then the config file.
func resolveAPIKey(flagValue string, cfg types.GenerationConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if v, ok := loadedSecrets[secrets.KeyGeminiAPIKey]; ok {
		return v
	}
	return cfg.APIKey
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
