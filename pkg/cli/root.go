package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/getmockd/nominal/internal/cliconfig"
	"github.com/getmockd/nominal/pkg/cli/internal/flags"
	"github.com/getmockd/nominal/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	configFile string
	outputFlag = flags.NewEnum("", cliconfig.OutputText, cliconfig.OutputJSON, cliconfig.OutputYAML)
	logLevel   = flags.NewEnum("", "debug", "info", "warn", "error")
	logFormat  = flags.NewEnum("", "text", "json")

	// cfg and logger are resolved before any subcommand runs.
	cfg    *cliconfig.Config
	logger = logging.Nop()

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nominal",
	Short: "nominal converts and inspects tagged base32 UUIDs",
	Long: `nominal converts UUIDs between the 36-character hyphenated hex form and a
26-character Crockford base32 form, and inspects tagged identifiers such as
user_01h2xcf9jef98r8f243b8xkjy6.

Configuration can be provided via flags, NOMINAL_* environment variables, a
.nominal.yaml file in the current directory, or $XDG_CONFIG_HOME/nominal/config.yaml.`,
	SilenceUsage:      true,
	SilenceErrors:     true, // We handle errors in Run()
	PersistentPreRunE: loadConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Config file (default: .nominal.yaml, then the global config)")
	pf.VarP(outputFlag, "output", "o", "Output format")
	pf.Var(logLevel, "log-level", "Minimum log level")
	pf.Var(logFormat, "log-format", "Log output format")
}

// loadConfig resolves configuration and builds the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := cliconfig.LoadAll(cliconfig.LoadOptions{ConfigFile: configFile})
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	for flag, key := range map[string]string{
		"output":     cliconfig.KeyOutput,
		"log-level":  cliconfig.KeyLogLevel,
		"log-format": cliconfig.KeyLogFormat,
	} {
		if f := fs.Lookup(flag); f != nil && f.Changed {
			loaded.ApplyFlag(key, f.Value.String())
		}
	}
	if f := fs.Lookup("db"); f != nil && f.Changed {
		loaded.ApplyFlag(cliconfig.KeyDatabase, f.Value.String())
	}
	if f := fs.Lookup("tag"); f != nil && f.Changed {
		loaded.ApplyFlag(cliconfig.KeyTag, f.Value.String())
	}

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg = loaded
	logger = logging.FromSettings(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	logger.Debug("configuration loaded", slog.Any("sources", cfg.Sources))
	return nil
}

// outputFormat returns the resolved --output value.
func outputFormat() string {
	if cfg == nil {
		return cliconfig.DefaultOutput
	}
	return cfg.Output
}

// Run executes the root command and returns the process exit code.
func Run() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

// Execute runs the CLI and exits on error.
// This is called by main.main().
func Execute() {
	os.Exit(Run())
}
