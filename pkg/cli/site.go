package cli

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/trendhub/pkg/infra"
	"github.com/secmon-lab/trendhub/pkg/usecase"
	"github.com/secmon-lab/trendhub/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func siteCommand() *cli.Command {
	var (
		input  string
		outDir string
	)

	return &cli.Command{
		Name:  "site",
		Usage: "Generate a static site from the report file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Usage:       "Path of the result JSON file",
				Aliases:     []string{"i"},
				Value:       "trending.json",
				Sources:     cli.EnvVars("TRENDHUB_INPUT"),
				Destination: &input,
			},
			&cli.StringFlag{
				Name:        "out-dir",
				Usage:       "Output directory for the generated site",
				Aliases:     []string{"d"},
				Value:       "docs",
				Sources:     cli.EnvVars("TRENDHUB_SITE_DIR"),
				Destination: &outDir,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("generating site",
				slog.String("Input", input),
				slog.String("OutDir", outDir),
			)

			report, err := usecase.ReadReportFile(input)
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New())
			return uc.RenderSite(ctx, report, outDir)
		},
	}
}
