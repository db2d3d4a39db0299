package usecase

import (
	"context"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/trendhub/pkg/domain/interfaces"
	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/utils/logging"
)

// MirrorSnapshot appends the whole report as one row to BigQuery. It is
// a no-op when the BigQuery client is not configured.
func (x *UseCase) MirrorSnapshot(ctx context.Context, report *model.TrendingReport) error {
	if x.clients.BigQuery() == nil {
		return nil
	}

	reqID, ctx := logging.CtxRequestID(ctx)
	snapshot := &model.TrendingSnapshot{
		ID:           reqID,
		Timestamp:    report.FetchedAt,
		TotalCount:   report.TotalCount,
		Repositories: report.Repositories,
	}

	schema, err := createOrUpdateSnapshotTable(ctx, x.clients.BigQuery(), snapshot)
	if err != nil {
		return err
	}

	if err := x.clients.BigQuery().Insert(ctx, schema, snapshot); err != nil {
		return goerr.Wrap(err, "failed to insert snapshot to BigQuery")
	}

	logging.From(ctx).Info("mirrored snapshot to BigQuery",
		slog.Any("id", snapshot.ID),
		slog.Int("total", snapshot.TotalCount),
	)

	return nil
}

func createOrUpdateSnapshotTable(ctx context.Context, bq interfaces.BigQuery, snapshot *model.TrendingSnapshot) (bigquery.Schema, error) {
	schema, err := bqs.Infer(snapshot)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer snapshot schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
