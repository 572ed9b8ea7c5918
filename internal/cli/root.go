package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KasperOmsK/fnkit/internal/config"
	"github.com/KasperOmsK/fnkit/internal/formatutil"
	"github.com/KasperOmsK/fnkit/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	debug      bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "fnkit",
		Short:        "fnkit: a walkthrough of functional programming in Go",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML file selecting lessons and settings")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newRunCmd(opts))
	return cmd
}

// setup loads the config and installs the logger. Flags override the file.
func (o *options) setup(stderr io.Writer) (*config.Config, func(), error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if o.debug {
		cfg.LogLevel = config.LogLevelDebug
	}
	if o.noColor {
		cfg.Color = false
	}

	restoreLogger := logger.Setup(logger.Config{Debug: cfg.Debug(), Writer: stderr})
	previousColor := formatutil.ColorEnabled()
	if !cfg.Color {
		formatutil.SetColor(false)
	}
	cleanup := func() {
		formatutil.SetColor(previousColor)
		restoreLogger()
	}
	if src := cfg.SourceFile(); src != "" {
		logger.L().Debug("config.loaded", "path", src)
	}
	return cfg, cleanup, nil
}
