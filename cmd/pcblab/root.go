package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pcblab/internal/api"
	"pcblab/internal/config"
)

var (
	cfgFile      string
	logLevelFlag string
	cfg          *config.Config
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "pcblab",
	Short: "PCB analysis and component sourcing engine",
	Long: `PCB Lab is a mock analysis and catalog engine for electronics repair:
- Simulated board scans from a camera capture or an uploaded image
- Component search with supplier offers, board database and fault patterns
- Resistance calculator and tools panel
- Website forms for login, registration, quotes and plan subscriptions

Run "pcblab serve" to expose everything as a JSON API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd.ErrOrStderr())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (defaults are used when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"log level (debug, info, warn, error); overrides the config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(componentsCmd)
	rootCmd.AddCommand(pcbsCmd)
	rootCmd.AddCommand(faultsCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(ohmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

// initConfig loads the configuration and sets up the global logger
func initConfig(logOut io.Writer) error {
	cfg = config.GetConfig()
	if cfgFile != "" {
		if err := cfg.LoadConfig(cfgFile); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	levelName := cfg.Logging.Level
	if logLevelFlag != "" {
		levelName = logLevelFlag
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Logging.Format == "json" {
		zerolog.TimeFieldFormat = time.RFC3339
		log.Logger = zerolog.New(logOut).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: logOut, TimeFormat: time.RFC3339})
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pcblab version %s\n", api.Version)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for pcblab.

To load completions:

Bash:
  $ source <(pcblab completion bash)

Zsh:
  $ source <(pcblab completion zsh)

Fish:
  $ pcblab completion fish | source
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		default:
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		}
	},
}
