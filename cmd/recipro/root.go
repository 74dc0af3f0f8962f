// recipro is an analyst workbench for reciprocal substitution ciphers.
//
// Usage:
//
//	recipro crack    [--text T | --file F] [--session NAME]
//	recipro freq     [--text T | --file F]
//	recipro decode   (--key KEY | --pairs AB,CD | --session NAME) [--text T | --file F]
//	recipro trigrams [-k N] [--text T | --file F]
//	recipro sessions [--delete NAME]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/recipro/internal/config"
	"github.com/katalvlaran/recipro/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// cfg is resolved once per invocation by the root PersistentPreRunE.
var cfg = config.Default()

var rootFlags struct {
	config    string
	logLevel  string
	logFormat string
	dbPath    string
	policy    string
}

var rootCmd = &cobra.Command{
	Use:   "recipro",
	Short: "Break reciprocal substitution ciphers with frequency analysis",
	Long: "recipro seeds a reciprocal letter pairing from frequency rank and lets\n" +
		"you refine it pair by pair while watching the decoded text and its trigrams.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: loadConfig,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.config, "config", config.DefaultPath, "Path to YAML config file")
	f.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	f.StringVar(&rootFlags.logFormat, "log-format", "", "Log format: text|json")
	f.StringVar(&rootFlags.dbPath, "db", "", "SQLite file for saved sessions")
	f.StringVar(&rootFlags.policy, "policy", "", "Self-pair seeding policy: skip|allow")

	rootCmd.AddCommand(crackCmd)
	rootCmd.AddCommand(freqCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(trigramsCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.Version = version
}

// loadConfig reads the config file, applies explicit flags on top and
// installs the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(rootFlags.config)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = rootFlags.logLevel
	}
	if flags.Changed("log-format") {
		loaded.LogFormat = rootFlags.logFormat
	}
	if flags.Changed("db") {
		loaded.DBPath = rootFlags.dbPath
	}
	if flags.Changed("policy") {
		loaded.SelfPairPolicy = rootFlags.policy
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(loaded.LogLevel)
	logging.Init(level, loaded.LogFormat, cmd.ErrOrStderr())
	cfg = loaded

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
