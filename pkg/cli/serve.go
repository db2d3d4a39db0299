package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendhub/pkg/controller/server"
	"github.com/secmon-lab/trendhub/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr       string
		siteDir    string
		reportPath string
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the generated site for preview",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "Binding address",
				Value:       "127.0.0.1:8000",
				Sources:     cli.EnvVars("TRENDHUB_ADDR"),
				Destination: &addr,
			},
			&cli.StringFlag{
				Name:        "site-dir",
				Usage:       "Directory of the generated site",
				Aliases:     []string{"d"},
				Value:       "docs",
				Sources:     cli.EnvVars("TRENDHUB_SITE_DIR"),
				Destination: &siteDir,
			},
			&cli.StringFlag{
				Name:        "report",
				Usage:       "Report file served at /api/trending (optional)",
				Sources:     cli.EnvVars("TRENDHUB_INPUT"),
				Destination: &reportPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("SiteDir", siteDir),
				slog.Any("Report", reportPath),
			)

			var serverOptions []server.Option
			if reportPath != "" {
				serverOptions = append(serverOptions, server.WithReportPath(reportPath))
			}
			s := server.New(siteDir, serverOptions...)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
