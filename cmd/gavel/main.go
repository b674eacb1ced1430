// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gavel CLI, the command-line
// client for the GAVEL legal AI services. Each dashboard is a subcommand:
// summarize, verify, search, and draft. All intelligence lives in the
// backend services; the CLI encodes input, drives the workflow, and
// renders the normalized result.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gavelhq/gavel-workbench/internal/gateway"
	"github.com/gavelhq/gavel-workbench/internal/secrets"
	"github.com/gavelhq/gavel-workbench/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Store

// rootCmd is the base command for the gavel CLI.
var rootCmd = &cobra.Command{
	Use:   "gavel",
	Short: "Command-line client for the GAVEL legal AI services",
	Long: `gavel drives the four GAVEL backend services from the terminal: judgment
summarization, contract authenticity verification, precedent search, and
document drafting. Each service is a subcommand that submits a document or
text, normalizes the response, and renders the resulting dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env first so endpoint overrides reach viper's env layer.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
		}
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gavel.yaml or ~/.config/gavel/config.yaml)")
	rootCmd.PersistentFlags().String("gateway", "", "base URL of the backend gateway (default: "+types.DefaultGatewayBase+")")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gavel")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gavel"))
		}
	}

	viper.SetEnvPrefix("GAVEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// gatewayConfig assembles the gateway configuration from flags, config
// file, environment, and secrets, in that order of precedence.
func gatewayConfig() types.GatewayConfig {
	base := viper.GetString("gateway.base_url")
	if flagBase, _ := rootCmd.PersistentFlags().GetString("gateway"); flagBase != "" {
		base = flagBase
	}
	if base == "" {
		base = types.DefaultGatewayBase
	}
	base = strings.TrimRight(base, "/")

	endpoint := func(key, path string) string {
		if url := viper.GetString(key); url != "" {
			return url
		}
		return base + path
	}

	timeout := viper.GetDuration("gateway.timeout")
	if flagTimeout, _ := rootCmd.PersistentFlags().GetDuration("timeout"); flagTimeout > 0 {
		timeout = flagTimeout
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	apiKey := viper.GetString("gateway.api_key")
	if apiKey == "" {
		apiKey = loadedSecrets.APIKey()
	}

	return types.GatewayConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: "gavel-workbench/" + version,
		},
		SummarizeURL: endpoint("gateway.summarize_url", "/summarize"),
		VerifyURL:    endpoint("gateway.verify_url", "/verify"),
		SearchURL:    endpoint("gateway.search_url", "/search"),
		DraftURL:     endpoint("gateway.draft_url", "/draft"),
		APIKey:       apiKey,
	}
}

// newGatewayClient builds the gateway client with diagnostics on stderr.
func newGatewayClient() *gateway.Client {
	client := gateway.New(gatewayConfig())
	client.Diag = os.Stderr
	return client
}

// promptConfirm asks a yes/no question on stderr and reads the answer
// from stdin.
func promptConfirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
