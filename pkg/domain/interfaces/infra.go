package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubSearch Bitable BigQuery

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/domain/types"
)

// GitHubSearch issues one repository search call per invocation. The
// query is either free text or a "topic:<name>" filter. The client is
// stateless and never retries; retry policy belongs to the caller.
type GitHubSearch interface {
	SearchRepositories(ctx context.Context, query string, perPage int) ([]*model.Repository, error)
}

// Bitable is the Feishu Bitable API surface used by the sync usecase.
// Authenticate must be called once per run before any other method.
type Bitable interface {
	Authenticate(ctx context.Context) error

	CreateBase(ctx context.Context, name string) (types.BitableBaseID, error)
	GetDefaultTable(ctx context.Context, baseID types.BitableBaseID) (types.BitableTableID, error)
	CreateTable(ctx context.Context, baseID types.BitableBaseID, name string) (types.BitableTableID, error)

	ListFields(ctx context.Context, baseID types.BitableBaseID, tableID types.BitableTableID) (map[string]model.BitableField, error)
	CreateField(ctx context.Context, baseID types.BitableBaseID, tableID types.BitableTableID, field model.BitableField) error

	// SearchRecord returns an empty record ID when no row matches.
	SearchRecord(ctx context.Context, baseID types.BitableBaseID, tableID types.BitableTableID, name types.RepoFullName) (types.BitableRecordID, error)
	CreateRecord(ctx context.Context, baseID types.BitableBaseID, tableID types.BitableTableID, fields map[string]any) error
	UpdateRecord(ctx context.Context, baseID types.BitableBaseID, tableID types.BitableTableID, recordID types.BitableRecordID, fields map[string]any) error
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
