/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"os"

	"github.com/josephgoksu/selfdiscover/internal/config"
	"github.com/josephgoksu/selfdiscover/internal/llm"
	"github.com/josephgoksu/selfdiscover/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version, overridden at build time.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "selfdiscover [task]",
	Short: "Solve a task with the SELF-DISCOVER prompting pipeline",
	Long: `selfdiscover runs the SELF-DISCOVER prompting pipeline: it composes a
task-specific reasoning structure from a catalog of generic reasoning
modules, then follows that structure to solve the task.

Stage 1 runs three model calls (SELECT, ADAPT, IMPLEMENT) to build the
structure; stage 2 (OUTPUT) solves the task with it. The task is read
from the arguments, or as one line from standard input. Every word
after the flags is part of the task; put the task after -- when it
starts with a dash.

Examples:
  selfdiscover "A motorboat going downstream overcame a raft..."
  echo "How many primes are below 100?" | selfdiscover
  selfdiscover --provider anthropic --format json "Plan a 3-day trip to Rome"
  selfdiscover -- "-5 plus 3, doubled"`,
	Version:           version,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRun,
	RunE:              runDiscover,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		PrintError(rootCmd.ErrOrStderr(), err)
		logger.Sync()
		os.Exit(1)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	cobra.OnInitialize(InitConfig)

	// The root takes free-form tasks, so it has no subcommands: a task such as
	// "help me plan a trip" must not be routed to a built-in command.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("selfdiscover {{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.selfdiscover.yaml or $HOME/.selfdiscover.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("log-json", false, "write diagnostic logs to stderr as JSON")

	rootCmd.Flags().String("provider", "", "LLM provider: openai, anthropic, gemini, ollama (inferred from --model when empty)")
	rootCmd.Flags().String("model", "", "model ID (default depends on provider)")
	rootCmd.Flags().Float64("temperature", llm.DefaultTemperature, "sampling temperature for every stage")
	rootCmd.Flags().Int("max-tokens", llm.DefaultMaxTokens, "maximum tokens per stage response")
	rootCmd.Flags().String("prompts-dir", "", "directory with <stage>_prompt.tmpl overrides")
	rootCmd.Flags().StringP("format", "f", "text", "output format: text, json, yaml")
}

// setupRun fails on configuration errors and configures logging for the run.
func setupRun(cmd *cobra.Command, _ []string) error {
	if configErr != nil {
		return configErr
	}
	if err := logger.Initialize(logger.Options{
		JSON:    GlobalAppConfig.Log.JSON,
		Verbose: GlobalAppConfig.Verbose,
	}); err != nil {
		return err
	}
	logger.SetVersion(version)
	logger.SetBasePath(config.GetCrashLogBasePath())
	return nil
}
