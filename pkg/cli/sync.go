package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/trendhub/pkg/cli/config"
	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/infra"
	"github.com/secmon-lab/trendhub/pkg/usecase"
	"github.com/secmon-lab/trendhub/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func syncCommand() *cli.Command {
	var (
		input       string
		dryRun      bool
		createTable bool

		feishu config.Feishu
		sentry config.Sentry
	)

	syncFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Usage:       "Path of the result JSON file",
			Aliases:     []string{"i"},
			Value:       "trending.json",
			Sources:     cli.EnvVars("TRENDHUB_INPUT"),
			Destination: &input,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Load and validate the report without writing to Bitable",
			Destination: &dryRun,
		},
		&cli.BoolFlag{
			Name:        "create-table",
			Usage:       "Only provision a new base and table, then exit",
			Destination: &createTable,
		},
	}

	return &cli.Command{
		Name:    "sync",
		Aliases: []string{"sy"},
		Usage:   "Sync the report file to a Feishu Bitable",
		Flags: slice.Flatten(
			syncFlags,
			feishu.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting sync",
				slog.Any("Input", input),
				slog.Bool("DryRun", dryRun),
				slog.Any("Feishu", feishu),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			if !feishu.Enabled() {
				return goerr.New("feishu app ID and secret are required")
			}

			btClient, err := feishu.New()
			if err != nil {
				return err
			}
			uc := usecase.New(infra.New(infra.WithBitable(btClient)))

			if createTable {
				if err := btClient.Authenticate(ctx); err != nil {
					return err
				}
				baseID, tableID, err := uc.ProvisionBitable(ctx)
				if err != nil {
					return err
				}
				logging.From(ctx).Info("provisioned bitable, set these IDs for future runs",
					slog.Any("base_id", baseID),
					slog.Any("table_id", tableID),
				)
				return nil
			}

			report, err := usecase.ReadReportFile(input)
			if err != nil {
				return err
			}

			if dryRun {
				logging.From(ctx).Info("dry run, nothing written",
					slog.Int("repositories", len(report.Repositories)),
					slog.Any("base_id", feishu.BaseID()),
					slog.Any("table_id", feishu.TableID()),
				)
				return nil
			}

			result, err := uc.SyncBitable(ctx, &model.SyncBitableInput{
				Report:  report,
				BaseID:  feishu.BaseID(),
				TableID: feishu.TableID(),
			})
			if err != nil {
				return err
			}

			logging.From(ctx).Info("sync finished",
				slog.Int("created", result.Created),
				slog.Int("updated", result.Updated),
				slog.Int("failed", result.Failed),
				slog.Any("base_id", result.BaseID),
				slog.Any("table_id", result.TableID),
			)

			return nil
		},
	}
}
