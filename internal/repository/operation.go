package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/akhomyakov/docflow/constants"
	"github.com/akhomyakov/docflow/gen/ent"
	"github.com/akhomyakov/docflow/gen/ent/operation"
	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/entity"
	"github.com/akhomyakov/docflow/internal/utils"
)

// OperationRepository is the durable store for processing operations. The
// (owner_id, kind) uniqueness invariant for non-deleted rows lives in the
// store itself (partial unique index), not in application logic.
type OperationRepository interface {
	// CreateOrGet is the only creation path. It is atomic with respect to the
	// uniqueness invariant: when a concurrent caller already created a row
	// for (ownerID, kind), the existing row is returned with isNew=false.
	CreateOrGet(ctx context.Context, ownerID uuid.UUID, kind constants.OpKind, provider constants.Provider, meta *entity.RequestMetadata) (op *entity.Operation, isNew bool, err error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Operation, error)
	GetByOwnerAndKind(ctx context.Context, ownerID uuid.UUID, kind constants.OpKind) (*entity.Operation, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, kind *constants.OpKind) ([]*entity.Operation, error)
	// Save is a full-record overwrite of all mutable fields. Last write wins:
	// there is no optimistic-concurrency token.
	Save(ctx context.Context, op *entity.Operation) (*entity.Operation, error)
	// SoftDelete tags the row as deleted, freeing the (owner, kind) slot
	// while retaining the record for audit.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type operationRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOperationRepository(client *ent.Client, logger *slog.Logger) OperationRepository {
	return &operationRepo{client: client, logger: logger}
}

func (r *operationRepo) CreateOrGet(ctx context.Context, ownerID uuid.UUID, kind constants.OpKind, provider constants.Provider, meta *entity.RequestMetadata) (*entity.Operation, bool, error) {
	builder := r.client.Operation.Create().
		SetOwnerID(ownerID).
		SetKind(string(kind)).
		SetProvider(string(provider)).
		SetStatus(string(constants.OpStatusPending))
	if meta != nil {
		raw, err := utils.MarshalJSONField(meta)
		if err != nil {
			return nil, false, err
		}
		builder = builder.SetRequestMetadata(raw)
	}

	row, err := builder.Save(ctx)
	if err == nil {
		r.logger.Info("operation created", "operation_id", row.ID, "owner_id", ownerID, "kind", kind, "provider", provider)
		op, cerr := utils.ToOperation(row)
		return op, true, cerr
	}
	if !ent.IsConstraintError(err) {
		r.logger.Error("operation create failed", "owner_id", ownerID, "kind", kind, "error", err)
		return nil, false, err
	}

	// Lost the insert race (or the row already existed): return the winner.
	existing, err := r.GetByOwnerAndKind(ctx, ownerID, kind)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *operationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Operation, error) {
	row, err := r.client.Operation.Query().
		Where(operation.IDEQ(id), operation.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundf("operation %s not found", id)
		}
		return nil, err
	}
	return utils.ToOperation(row)
}

func (r *operationRepo) GetByOwnerAndKind(ctx context.Context, ownerID uuid.UUID, kind constants.OpKind) (*entity.Operation, error) {
	row, err := r.client.Operation.Query().
		Where(
			operation.OwnerID(ownerID),
			operation.Kind(string(kind)),
			operation.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundf("no %s operation for owner %s", kind, ownerID)
		}
		return nil, err
	}
	return utils.ToOperation(row)
}

func (r *operationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, kind *constants.OpKind) ([]*entity.Operation, error) {
	q := r.client.Operation.Query().
		Where(operation.OwnerID(ownerID), operation.DeletedAtIsNil())
	if kind != nil {
		q = q.Where(operation.Kind(string(*kind)))
	}
	rows, err := q.Order(operation.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list operations", "owner_id", ownerID, "error", err)
		return nil, err
	}

	result := make([]*entity.Operation, len(rows))
	for i, row := range rows {
		op, cerr := utils.ToOperation(row)
		if cerr != nil {
			return nil, cerr
		}
		result[i] = op
	}
	return result, nil
}

func (r *operationRepo) Save(ctx context.Context, op *entity.Operation) (*entity.Operation, error) {
	upd := r.client.Operation.UpdateOneID(op.ID).
		SetStatus(string(op.Status)).
		SetRetryCount(op.RetryCount).
		SetMaxRetries(op.MaxRetries)

	if op.ExternalJobID != nil {
		upd = upd.SetExternalJobID(*op.ExternalJobID)
	} else {
		upd = upd.ClearExternalJobID()
	}
	if op.StartedAt != nil {
		upd = upd.SetStartedAt(*op.StartedAt)
	} else {
		upd = upd.ClearStartedAt()
	}
	if op.CompletedAt != nil {
		upd = upd.SetCompletedAt(*op.CompletedAt)
	} else {
		upd = upd.ClearCompletedAt()
	}

	if op.RequestMetadata != nil {
		raw, err := utils.MarshalJSONField(op.RequestMetadata)
		if err != nil {
			return nil, err
		}
		upd = upd.SetRequestMetadata(raw)
	} else {
		upd = upd.ClearRequestMetadata()
	}
	if op.Result != nil {
		raw, err := utils.MarshalJSONField(op.Result)
		if err != nil {
			return nil, err
		}
		upd = upd.SetResult(raw)
	} else {
		upd = upd.ClearResult()
	}
	if op.Failure != nil {
		raw, err := utils.MarshalJSONField(op.Failure)
		if err != nil {
			return nil, err
		}
		upd = upd.SetFailure(raw)
	} else {
		upd = upd.ClearFailure()
	}

	row, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundf("operation %s not found", op.ID)
		}
		r.logger.Error("operation save failed", "operation_id", op.ID, "error", err)
		return nil, err
	}
	r.logger.Debug("operation saved", "operation_id", op.ID, "status", op.Status)
	return utils.ToOperation(row)
}

func (r *operationRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.Operation.UpdateOneID(id).
		SetDeletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NotFoundf("operation %s not found", id)
		}
		return err
	}
	r.logger.Info("operation soft-deleted", "operation_id", id)
	return nil
}
