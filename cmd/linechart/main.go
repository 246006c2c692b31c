// Package main provides the CLI entry point for linechart-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/linechart-go/internal/logging"
	"github.com/ukaji3/linechart-go/pkg/linechart"
)

var (
	configPath string
	verbose    bool
	logger     = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linechart",
		Short: "Render and explore yearly value line charts",
		Long: `linechart-go draws a line chart from a JSON or xlsx dataset of
(year, value) samples and tracks the sample nearest to a pointer.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML chart options file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose (debug) logging")

	rootCmd.AddCommand(newRenderCmd(), newNearestCmd(), newServeCmd())
	return rootCmd
}

// loadChart loads a dataset and builds its chart. Workbook charts with a known
// frame size keep that size unless the options file sets one.
func loadChart(path string, opts linechart.Options, sizeFromFile bool) (*linechart.Chart, error) {
	ds, err := linechart.Load(path)
	if err != nil {
		return nil, err
	}
	if ds.Chart != nil && !sizeFromFile && ds.Chart.W > 0 && ds.Chart.H > 0 {
		opts.Layout.Width = ds.Chart.W
		opts.Layout.Height = ds.Chart.H
		if opts.Layout.InnerWidth() <= 0 || opts.Layout.InnerHeight() <= 0 {
			opts.Layout = linechart.DefaultOptions().Layout
		}
	}
	if ds.Chart != nil && ds.Chart.YAxisTitle != "" && opts.YLabel == linechart.DefaultOptions().YLabel {
		opts.YLabel = ds.Chart.YAxisTitle
	}

	c, err := linechart.New(ds, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("chart loaded",
		zap.String("source", path),
		zap.String("chart", c.Name()),
		zap.Int("samples", c.Len()))
	return c, nil
}

// loadOptions reads --config and reports whether it fixes the canvas size.
func loadOptions() (linechart.Options, bool, error) {
	opts, err := linechart.LoadOptions(configPath)
	if err != nil {
		return opts, false, err
	}
	return opts, opts.Layout != linechart.DefaultOptions().Layout, nil
}
