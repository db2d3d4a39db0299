package usecase_test

import (
	"context"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trendhub/pkg/domain/mock"
	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/infra"
	"github.com/secmon-lab/trendhub/pkg/usecase"
)

func TestMirrorSnapshot(t *testing.T) {
	t.Run("creates table when missing", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
				gt.True(t, len(md.Schema) > 0)
				return nil
			},
			InsertFunc: func(ctx context.Context, schema bigquery.Schema, data any) error {
				snapshot, ok := data.(*model.TrendingSnapshot)
				gt.True(t, ok)
				gt.V(t, snapshot.TotalCount).Equal(1)
				gt.True(t, snapshot.ID != "")
				return nil
			},
		}

		uc := usecase.New(infra.New(infra.WithBigQuery(mockBQ)))
		report := testReport(testRepo("a/x", 10))

		gt.NoError(t, uc.MirrorSnapshot(context.Background(), report))
		gt.V(t, len(mockBQ.CreateTableCalls())).Equal(1)
		gt.V(t, len(mockBQ.InsertCalls())).Equal(1)
	})

	t.Run("reuses table with matching schema", func(t *testing.T) {
		var schema bigquery.Schema
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return &bigquery.TableMetadata{Schema: schema, ETag: "etag"}, nil
			},
			CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
				schema = md.Schema
				return nil
			},
			InsertFunc: func(ctx context.Context, s bigquery.Schema, data any) error {
				return nil
			},
		}

		// First run infers and creates the schema.
		first := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) { return nil, nil },
			CreateTableFunc: mockBQ.CreateTableFunc,
			InsertFunc:      mockBQ.InsertFunc,
		}
		uc := usecase.New(infra.New(infra.WithBigQuery(first)))
		report := testReport(testRepo("a/x", 10))
		gt.NoError(t, uc.MirrorSnapshot(context.Background(), report))

		// Second run sees the same schema and neither creates nor updates.
		uc = usecase.New(infra.New(infra.WithBigQuery(mockBQ)))
		gt.NoError(t, uc.MirrorSnapshot(context.Background(), report))
		gt.V(t, len(mockBQ.CreateTableCalls())).Equal(0)
		gt.V(t, len(mockBQ.UpdateTableCalls())).Equal(0)
		gt.V(t, len(mockBQ.InsertCalls())).Equal(1)
	})

	t.Run("no-op without client", func(t *testing.T) {
		uc := usecase.New(infra.New())
		gt.NoError(t, uc.MirrorSnapshot(context.Background(), testReport()))
	})
}
