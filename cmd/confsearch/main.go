// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the confsearch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/confsearch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the confsearch CLI.
var rootCmd = &cobra.Command{
	Use:   "confsearch",
	Short: "Search academic security-conference papers via DBLP",
	Long: `confsearch translates structured search requests into DBLP queries and
maps the results back onto a fixed security-conference taxonomy (tier,
short and full name, per-year conference site).

Run it directly with the search, conferences, and stats subcommands, or
expose the same operations to an agent with "confsearch serve", which
speaks the Model Context Protocol over stdio.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./confsearch.yaml or ~/.config/confsearch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("confsearch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "confsearch"))
		}
	}

	viper.SetDefault("search.timeout", 30*time.Second)
	viper.SetDefault("search.user_agent", "confsearch/"+version)
	viper.SetDefault("search.max_results", 50)

	viper.SetEnvPrefix("CONFSEARCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// searchConfig assembles the search settings from config file, env, and
// defaults.
func searchConfig() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("search.timeout"),
			UserAgent: viper.GetString("search.user_agent"),
		},
		MaxResults: viper.GetInt("search.max_results"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
