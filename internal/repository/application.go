package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akhomyakov/docflow/gen/ent"
	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/entity"
	"github.com/akhomyakov/docflow/internal/utils"
)

// ApplicationRepository is the narrow contract over the owning aggregate:
// lookups for dispatch and the partial update the result projector writes.
type ApplicationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.ApplicationPatch) (*entity.Application, error)
}

type applicationRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewApplicationRepository(client *ent.Client, logger *slog.Logger) ApplicationRepository {
	return &applicationRepo{client: client, logger: logger}
}

func (r *applicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	row, err := r.client.Application.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundf("application %s not found", id)
		}
		return nil, err
	}
	return utils.ToApplication(row), nil
}

func (r *applicationRepo) Update(ctx context.Context, id uuid.UUID, patch entity.ApplicationPatch) (*entity.Application, error) {
	upd := r.client.Application.UpdateOneID(id).
		SetNillableExtractedText(patch.ExtractedText).
		SetNillableProductType(patch.ProductType).
		SetNillableTypeConfidence(patch.TypeConfidence).
		SetNillableTypeReasoning(patch.TypeReasoning).
		SetNillableAbbreviation(patch.Abbreviation).
		SetNillableProcessedAt(patch.ProcessedAt)
	if len(patch.AbbreviationParams) > 0 {
		upd = upd.SetAbbreviationParams(patch.AbbreviationParams)
	}

	row, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundf("application %s not found", id)
		}
		r.logger.Error("application update failed", "application_id", id, "error", err)
		return nil, err
	}
	r.logger.Debug("application updated", "application_id", id)
	return utils.ToApplication(row), nil
}
