package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/linechart-go/internal/server"
	"github.com/ukaji3/linechart-go/pkg/linechart"
)

func newServeCmd() *cobra.Command {
	var (
		addr    string
		origins []string
		ttl     time.Duration
		maxSess int
	)

	cmd := &cobra.Command{
		Use:   "serve [data...]",
		Short: "Serve interactive charts over HTTP",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, fixedSize, err := loadOptions()
			if err != nil {
				return err
			}
			opts.Format = linechart.FormatHTML

			charts := make([]*linechart.Chart, 0, len(args))
			for _, path := range args {
				c, err := loadChart(path, opts, fixedSize)
				if err != nil {
					return err
				}
				charts = append(charts, c)
			}

			cfg := server.DefaultConfig()
			cfg.AllowedOrigins = origins
			cfg.SessionTTL = ttl
			cfg.MaxSessions = maxSess

			srv, err := server.New(charts, cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringSliceVar(&origins, "cors-origin", nil, "Allowed CORS origins (default: any)")
	cmd.Flags().DurationVar(&ttl, "session-ttl", server.DefaultConfig().SessionTTL, "Drop tracker sessions idle for longer (0 keeps them)")
	cmd.Flags().IntVar(&maxSess, "max-sessions", server.DefaultConfig().MaxSessions, "Maximum open tracker sessions (0 means no limit)")
	return cmd
}
