package cli

import (
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"severance-engine/internal/handler"
)

func newServeCommand(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve settlement calculations over HTTP",
		Long: `Starts the HTTP API:
  POST /settlements       JSON breakdown
  POST /settlements/csv   CSV sheet
  POST /settlements/pdf   PDF summary
  GET  /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = a.cfg.Server.Port
			}

			h := handler.New(a.engine(), a.logger)

			a.logger.Info("severance engine starting", zap.String("port", port))
			if err := fasthttp.ListenAndServe(":"+port, h.HandleRequest); err != nil {
				a.logger.Error("server failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (defaults to server.port or $PORT)")
	return cmd
}
