// ABOUTME: Root cobra command, persistent flags and per-command telemetry
// ABOUTME: Every subcommand runs through setup and finish, on success and on failure

// Package cli implements the imagecatalog command tree
package cli

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/nainya/imagecatalog/internal/logger"
	"github.com/nainya/imagecatalog/internal/metrics"
	"github.com/nainya/imagecatalog/pkg/config"
	"github.com/nainya/imagecatalog/pkg/metadata"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

// options carries the persistent flags and the per-invocation telemetry
type options struct {
	configPath      string
	logLevel        string
	pretty          bool
	noColor         bool
	metricsTextfile string

	log      *logger.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "imagecatalog",
		Short: "Catalog of imaging experiments stored as JSON sidecar files",
		Long: `imagecatalog inspects and edits the metadata files that describe raw
acquisitions, processed derivatives, the datasets grouping them and the runs
that produced them. Every entity is one JSON file next to the data it describes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to the JSON configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.BoolVar(&opts.pretty, "pretty", false, "Human-readable log output")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&opts.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file when the command finishes")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newCreateRawCommand())
	rootCmd.AddCommand(newDatasetCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newConfigCommand(opts))

	opts.instrument(rootCmd)
	return rootCmd
}

// instrument wraps the run function of cmd and all its descendants with
// setup and finish. cobra does not run post-run hooks after a failed RunE.
func (o *options) instrument(cmd *cobra.Command) {
	for _, sub := range cmd.Commands() {
		o.instrument(sub)
	}

	if cmd.Run != nil {
		run := cmd.Run
		cmd.Run = nil
		cmd.RunE = func(c *cobra.Command, args []string) error {
			run(c, args)
			return nil
		}
	}
	if cmd.RunE == nil {
		return
	}

	runE := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) error {
		if err := o.setup(c, args); err != nil {
			return o.finish(c, err)
		}
		return o.finish(c, runE(c, args))
	}
}

// commandName is the command path without the binary name, e.g. "dataset add"
func commandName(cmd *cobra.Command) string {
	return strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Name()+" ")
}

func (o *options) setup(cmd *cobra.Command, args []string) error {
	if o.noColor {
		color.NoColor = true
	}

	name := commandName(cmd)
	logger.InitGlobalLogger(logger.Config{
		Level:  o.logLevel,
		Pretty: o.pretty,
		Output: cmd.ErrOrStderr(),
	})
	base := logger.GetGlobalLogger().WithFields(map[string]interface{}{"version": Version})
	o.log = base.CommandLogger(name)

	o.registry = prometheus.NewRegistry()
	o.metrics = metrics.NewMetrics(o.registry)

	docLog := base.WithFields(map[string]interface{}{"command": name})
	metadata.SetObserver(metadata.MultiObserver(o.metrics, logger.DocumentObserver{Log: docLog}))
	o.log.LogCommandStart(args)

	if o.configPath != "" {
		if _, err := config.Initialize(o.configPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		o.log.Debug("Configuration loaded").Str("path", o.configPath).Send()
	}
	return nil
}

// finish records the outcome of cmd and returns err, joined with any
// failure to write the metrics textfile.
func (o *options) finish(cmd *cobra.Command, err error) error {
	defer metadata.SetObserver(nil)

	elapsed := o.metrics.MarkDone(commandName(cmd), err)
	o.log.LogCommandDone(elapsed, err)

	if o.metricsTextfile != "" {
		if werr := metrics.WriteTextfile(o.registry, o.metricsTextfile); werr != nil {
			o.log.Warn("Metrics textfile not written").Err(werr).Send()
			return errors.Join(err, werr)
		}
	}
	return err
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			title := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()

			title.Fprint(out, "imagecatalog version: ")
			fmt.Fprintln(out, Version)
			title.Fprint(out, "Git commit: ")
			fmt.Fprintln(out, GitCommit)
			title.Fprint(out, "Go version: ")
			fmt.Fprintln(out, runtime.Version())
		},
	}
}
