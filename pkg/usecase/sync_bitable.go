package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/trendhub/pkg/domain/model"
	"github.com/secmon-lab/trendhub/pkg/domain/types"
	"github.com/secmon-lab/trendhub/pkg/utils/logging"
)

const (
	bitableBaseName  = "GitHub AI Skill 热门项目"
	bitableTableName = "热门项目"

	// The Bitable API throttles aggressively; one short pause every
	// few records keeps a full run under the limit.
	recordPaceInterval = 5
	recordPaceDelay    = 500 * time.Millisecond
	fieldCreateDelay   = 300 * time.Millisecond
	baseSettleDelay    = time.Second
	tableSettleDelay   = 500 * time.Millisecond
)

// SyncBitable reconciles every repository in the report against the
// Bitable table: search by name, then update mutable columns or create a
// full row. Per-record failures are counted and the batch continues;
// only authentication failure aborts the run. Side effects already
// issued are never rolled back.
func (x *UseCase) SyncBitable(ctx context.Context, input *model.SyncBitableInput) (*model.SyncResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients.Bitable() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Bitable client is required")
	}

	logger := logging.From(ctx)
	bt := x.clients.Bitable()

	if err := bt.Authenticate(ctx); err != nil {
		return nil, err
	}

	baseID := input.BaseID
	tableID := input.TableID
	if baseID == "" || tableID == "" {
		logger.Info("no base/table ID provided, provisioning new bitable")
		newBase, newTable, err := x.ProvisionBitable(ctx)
		if err != nil {
			return nil, err
		}
		baseID, tableID = newBase, newTable
	} else {
		x.ensureBitableFields(ctx, baseID, tableID)
	}

	fields, err := bt.ListFields(ctx, baseID, tableID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list table fields",
			goerr.V("base_id", baseID),
			goerr.V("table_id", tableID),
		)
	}

	result := &model.SyncResult{
		BaseID:  baseID,
		TableID: tableID,
	}
	now := logging.CtxTime(ctx).UTC()

	logger.Info("syncing repositories to bitable",
		slog.Int("count", len(input.Report.Repositories)),
		slog.Any("base_id", baseID),
		slog.Any("table_id", tableID),
	)

	for i, repo := range input.Report.Repositories {
		x.reconcileRecord(ctx, baseID, tableID, repo, fields, now, result)

		if (i+1)%recordPaceInterval == 0 {
			x.sleepFn(recordPaceDelay)
		}
	}

	logger.Info("bitable sync completed",
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func (x *UseCase) reconcileRecord(ctx context.Context, baseID types.BitableBaseID, tableID types.BitableTableID, repo *model.Repository, fields map[string]model.BitableField, now time.Time, result *model.SyncResult) {
	logger := logging.From(ctx)
	bt := x.clients.Bitable()

	recordID, err := bt.SearchRecord(ctx, baseID, tableID, repo.FullName)
	if err != nil {
		logger.Warn("record search failed",
			slog.Any("full_name", repo.FullName),
			slog.String("error", err.Error()),
		)
		result.Failed++
		return
	}

	if recordID != "" {
		if err := bt.UpdateRecord(ctx, baseID, tableID, recordID, model.BitableUpdateFields(repo, fields, now)); err != nil {
			logger.Warn("record update failed",
				slog.Any("full_name", repo.FullName),
				slog.String("error", err.Error()),
			)
			result.Failed++
			return
		}
		result.Updated++
		return
	}

	if err := bt.CreateRecord(ctx, baseID, tableID, model.BitableCreateFields(repo, fields, now)); err != nil {
		logger.Warn("record create failed",
			slog.Any("full_name", repo.FullName),
			slog.String("error", err.Error()),
		)
		result.Failed++
		return
	}
	result.Created++
}

// ProvisionBitable creates a new base with the default table and the
// required field set. The returned IDs must be persisted by the caller,
// a freshly provisioned base is otherwise unreachable on the next run.
func (x *UseCase) ProvisionBitable(ctx context.Context) (types.BitableBaseID, types.BitableTableID, error) {
	if x.clients.Bitable() == nil {
		return "", "", goerr.Wrap(types.ErrInvalidOption, "Bitable client is required")
	}
	bt := x.clients.Bitable()

	baseID, err := bt.CreateBase(ctx, bitableBaseName)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to create base")
	}

	// A fresh base is not immediately consistent.
	x.sleepFn(baseSettleDelay)

	tableID, err := bt.GetDefaultTable(ctx, baseID)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to get default table", goerr.V("base_id", baseID))
	}
	if tableID == "" {
		tableID, err = bt.CreateTable(ctx, baseID, bitableTableName)
		if err != nil {
			return "", "", goerr.Wrap(err, "failed to create table", goerr.V("base_id", baseID))
		}
	}

	x.sleepFn(tableSettleDelay)

	x.ensureBitableFields(ctx, baseID, tableID)

	logging.From(ctx).Info("provisioned new bitable",
		slog.Any("base_id", baseID),
		slog.Any("table_id", tableID),
	)

	return baseID, tableID, nil
}

// ensureBitableFields creates every missing required column. A failed
// column is logged and skipped so the remaining columns still get
// created; records later populate only columns that actually exist.
func (x *UseCase) ensureBitableFields(ctx context.Context, baseID types.BitableBaseID, tableID types.BitableTableID) {
	logger := logging.From(ctx)
	bt := x.clients.Bitable()

	existing, err := bt.ListFields(ctx, baseID, tableID)
	if err != nil {
		logger.Warn("failed to list fields, skipping schema check",
			slog.Any("base_id", baseID),
			slog.Any("table_id", tableID),
			slog.String("error", err.Error()),
		)
		return
	}

	for _, def := range model.BitableFieldDefinitions() {
		if _, ok := existing[def.FieldName]; ok {
			continue
		}

		if err := bt.CreateField(ctx, baseID, tableID, def); err != nil {
			logger.Warn("failed to create field",
				slog.String("field", def.FieldName),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Info("created field", slog.String("field", def.FieldName))
		}
		x.sleepFn(fieldCreateDelay)
	}
}
