package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr     string
		maxCells int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve path search over HTTP",
		Long: `Start an HTTP server with:

  POST /v1/paths   {"grid": [[1,0,...],...], "start": [r,c], "goal": [r,c],
                    "heuristic": "chebyshev", "conn": "conn8"}
  GET  /healthz
  GET  /metrics    Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(
				server.WithLogger(slog.Default()),
				server.WithMaxCells(maxCells),
			)
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().IntVar(&maxCells, "max-cells", server.DefaultMaxCells, "Largest accepted grid, in cells")

	return cmd
}
