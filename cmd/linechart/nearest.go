package main

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/ukaji3/linechart-go/pkg/linechart"
	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

type nearestOutput struct {
	Index int     `json:"index"`
	Year  string  `json:"year"`
	Value float64 `json:"value"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

func newNearestCmd() *cobra.Command {
	var (
		px     float64
		asJSON bool
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "nearest [data.json|data.xlsx]",
		Short: "Print the sample nearest to a pointer x position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if math.IsNaN(px) || math.IsInf(px, 0) {
				return fmt.Errorf("invalid --x: %v is not finite", px)
			}
			opts, fixedSize, err := loadOptions()
			if err != nil {
				return err
			}
			c, err := loadChart(args[0], opts, fixedSize)
			if err != nil {
				return err
			}

			f := c.FocusAt(px)
			if !asJSON {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(%s, %s)\n",
					f.Sample.Year.Format("2006"), f.Label, fmtPx(f.X), fmtPx(f.Y))
				return nil
			}
			return writeNearestJSON(cmd, f, pretty)
		},
	}

	cmd.Flags().Float64Var(&px, "x", 0, "Pointer x in plot pixels")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	_ = cmd.MarkFlagRequired("x")
	return cmd
}

func writeNearestJSON(cmd *cobra.Command, f models.Focus, pretty bool) error {
	out := nearestOutput{
		Index: f.Index,
		Year:  f.Sample.Year.Format("2006"),
		Value: f.Sample.Value,
		X:     f.X,
		Y:     f.Y,
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return nil
}

func fmtPx(v float64) string {
	return linechart.FormatValue(math.Round(v*100) / 100)
}
