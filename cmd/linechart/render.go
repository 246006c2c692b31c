package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/linechart-go/pkg/linechart"
	"github.com/ukaji3/linechart-go/pkg/linechart/render"
)

func newRenderCmd() *cobra.Command {
	var (
		outputPath string
		format     string
		title      string
	)

	cmd := &cobra.Command{
		Use:   "render [data.json|data.xlsx]",
		Short: "Render a chart to svg, html, echarts or png",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, fixedSize, err := loadOptions()
			if err != nil {
				return err
			}
			switch {
			case cmd.Flags().Changed("format"):
				if opts.Format, err = linechart.ParseFormat(format); err != nil {
					return err
				}
			case outputPath != "":
				if f, err := linechart.ParseFormat(formatFromExt(outputPath)); err == nil {
					opts.Format = f
				}
			}
			if title != "" {
				opts.Title = title
			}

			c, err := loadChart(args[0], opts, fixedSize)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := render.Render(w, c, opts.Format); err != nil {
				return fmt.Errorf("render failed: %w", err)
			}
			logger.Info("chart rendered",
				zap.String("chart", c.Name()),
				zap.String("format", string(opts.Format)),
				zap.String("output", outputPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: svg, html, echarts, png (default: from --output extension, then config)")
	cmd.Flags().StringVar(&title, "title", "", "Chart title")
	return cmd
}

// formatFromExt guesses the format from an output file name.
func formatFromExt(path string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "htm":
		return string(linechart.FormatHTML)
	default:
		return ext
	}
}
