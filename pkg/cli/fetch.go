package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/trendhub/pkg/cli/config"
	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/infra"
	"github.com/secmon-lab/trendhub/pkg/usecase"
	"github.com/secmon-lab/trendhub/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func fetchCommand() *cli.Command {
	var (
		output        string
		queries       []string
		topics        []string
		queryPageSize int64
		topicPageSize int64
		limit         int64

		github   config.GitHub
		bigQuery config.BigQuery
		sentry   config.Sentry
	)

	fetchFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Path of the result JSON file",
			Value:       "trending.json",
			Sources:     cli.EnvVars("TRENDHUB_OUTPUT"),
			Destination: &output,
		},
		&cli.StringSliceFlag{
			Name:        "query",
			Usage:       "Search query (repeatable, defaults to the built-in set)",
			Aliases:     []string{"q"},
			Destination: &queries,
		},
		&cli.StringSliceFlag{
			Name:        "topic",
			Usage:       "Topic filter (repeatable, defaults to the built-in set)",
			Aliases:     []string{"t"},
			Destination: &topics,
		},
		&cli.Int64Flag{
			Name:        "query-page-size",
			Usage:       "Results per search query",
			Value:       model.DefaultQueryPageSize,
			Destination: &queryPageSize,
		},
		&cli.Int64Flag{
			Name:        "topic-page-size",
			Usage:       "Results per topic filter",
			Value:       model.DefaultTopicPageSize,
			Destination: &topicPageSize,
		},
		&cli.Int64Flag{
			Name:        "limit",
			Usage:       "Max repositories in the report",
			Value:       model.DefaultReportLimit,
			Sources:     cli.EnvVars("TRENDHUB_LIMIT"),
			Destination: &limit,
		},
	}

	return &cli.Command{
		Name:    "fetch",
		Aliases: []string{"f"},
		Usage:   "Fetch trending repositories and write the report file",
		Flags: slice.Flatten(
			fetchFlags,
			github.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting fetch",
				slog.Any("Output", output),
				slog.Any("GitHub", github),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGitHubSearch(github.New()),
			}
			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			uc := usecase.New(infra.New(infraOptions...))

			input := &model.FetchTrendingInput{
				Queries:       queries,
				Topics:        topics,
				QueryPageSize: int(queryPageSize),
				TopicPageSize: int(topicPageSize),
				Limit:         int(limit),
			}
			if len(input.Queries) == 0 && len(input.Topics) == 0 {
				input.Queries = model.DefaultSearchQueries()
				input.Topics = model.DefaultSearchTopics()
			}

			report, err := uc.FetchTrending(ctx, input)
			if err != nil {
				return err
			}

			if err := usecase.WriteReportFile(output, report); err != nil {
				return err
			}
			logging.From(ctx).Info("wrote report",
				slog.String("path", output),
				slog.Int("total", report.TotalCount),
			)

			return uc.MirrorSnapshot(ctx, report)
		},
	}
}
