package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/akhomyakov/docflow/constants"
	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/entity"
	"github.com/akhomyakov/docflow/internal/operations"
)

// OperationsService is the surface the external route layer calls. It turns
// route-level strings into typed values, delegates to the lifecycle manager
// and maps the error taxonomy onto gRPC status codes.
type OperationsService struct {
	manager *operations.Manager
	logger  *slog.Logger
}

func NewOperationsService(manager *operations.Manager, logger *slog.Logger) *OperationsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OperationsService{manager: manager, logger: logger}
}

func (s *OperationsService) CreateOrUpdateOperation(ctx context.Context, ownerID, kind, provider string, meta *entity.RequestMetadata, initialStatus string) (*entity.Operation, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "owner_id must be a uuid")
	}

	op, err := s.manager.CreateOrUpdateOperation(ctx, owner,
		constants.OpKind(kind), constants.Provider(provider), meta, constants.OpStatus(initialStatus))
	if err != nil {
		s.logger.Warn("create operation failed", "owner_id", ownerID, "kind", kind, "error", err)
		return nil, common.ToStatusError(err)
	}
	return op, nil
}

func (s *OperationsService) GetOperation(ctx context.Context, id string) (*entity.Operation, error) {
	opID, err := uuid.Parse(id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a uuid")
	}
	op, err := s.manager.GetOperation(ctx, opID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return op, nil
}

func (s *OperationsService) GetOperationByOwnerAndKind(ctx context.Context, ownerID, kind string) (*entity.Operation, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "owner_id must be a uuid")
	}
	op, err := s.manager.GetOperationByOwnerAndKind(ctx, owner, constants.OpKind(kind))
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return op, nil
}

func (s *OperationsService) ListOperations(ctx context.Context, ownerID, kind string) ([]*entity.Operation, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "owner_id must be a uuid")
	}
	var kindFilter *constants.OpKind
	if kind != "" {
		k := constants.OpKind(kind)
		kindFilter = &k
	}
	ops, err := s.manager.ListOperations(ctx, owner, kindFilter)
	if err != nil {
		s.logger.Warn("list operations failed", "owner_id", ownerID, "error", err)
		return nil, common.ToStatusError(err)
	}
	return ops, nil
}

// CheckOperationStatus drives the poller for async jobs. A transient poll
// failure is not an error to the route layer: the operation is returned
// still running and the caller polls again later.
func (s *OperationsService) CheckOperationStatus(ctx context.Context, id string) (*entity.Operation, error) {
	opID, err := uuid.Parse(id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a uuid")
	}
	op, err := s.manager.CheckOperationStatus(ctx, opID)
	if err != nil {
		if op != nil && common.IsKind(err, common.KindTransient) {
			s.logger.Warn("status check hit a transient failure", "operation_id", id, "error", err)
			return op, nil
		}
		return nil, common.ToStatusError(err)
	}
	return op, nil
}

func (s *OperationsService) UpdateOperationStatus(ctx context.Context, id, newStatus string, result *entity.OperationResult, failure *entity.OperationFailure) (*entity.Operation, error) {
	opID, err := uuid.Parse(id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a uuid")
	}
	op, err := s.manager.UpdateOperationStatus(ctx, opID, constants.OpStatus(newStatus), result, failure)
	if err != nil {
		s.logger.Warn("update operation status failed", "operation_id", id, "status", newStatus, "error", err)
		return nil, common.ToStatusError(err)
	}
	return op, nil
}

func (s *OperationsService) RedoOperation(ctx context.Context, id string) (*entity.Operation, error) {
	opID, err := uuid.Parse(id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a uuid")
	}
	op, err := s.manager.RedoOperation(ctx, opID)
	if err != nil {
		s.logger.Warn("redo operation failed", "operation_id", id, "error", err)
		return nil, common.ToStatusError(err)
	}
	return op, nil
}

func (s *OperationsService) DeleteOperation(ctx context.Context, id string) error {
	opID, err := uuid.Parse(id)
	if err != nil {
		return status.Error(codes.InvalidArgument, "id must be a uuid")
	}
	if err := s.manager.DeleteOperation(ctx, opID); err != nil {
		return common.ToStatusError(err)
	}
	return nil
}
