package operations

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/akhomyakov/docflow/constants"
	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/entity"
	"github.com/akhomyakov/docflow/internal/repository"
)

// Projector folds a completed operation's result onto the owning
// application. It never mutates the operation and never propagates write
// failures: a completed operation stays valid even when projection could not
// be applied, and projection can always be retried from the same record.
type Projector struct {
	apps   repository.ApplicationRepository
	logger *slog.Logger
}

func NewProjector(apps repository.ApplicationRepository, logger *slog.Logger) *Projector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Projector{apps: apps, logger: logger}
}

// Project applies op's result to the owning application and reports whether
// anything was written.
func (p *Projector) Project(ctx context.Context, op *entity.Operation) bool {
	if op == nil || op.Status != constants.OpStatusCompleted || op.Result.Empty() {
		return false
	}

	patch, ok := p.patchFor(op)
	if !ok {
		p.logger.Warn("projector.result_shape_mismatch",
			"operation_id", op.ID, "kind", op.Kind)
		return false
	}

	if _, err := p.apps.Update(ctx, op.OwnerID, patch); err != nil {
		perr := common.Projection("apply result to application", err)
		p.logger.Error("projector.apply_failed",
			"operation_id", op.ID, "owner_id", op.OwnerID, "kind", op.Kind, "error", perr)
		return false
	}

	p.logger.Info("projector.applied",
		"operation_id", op.ID, "owner_id", op.OwnerID, "kind", op.Kind)
	return true
}

// patchFor maps kind -> application fields. A result whose union member does
// not match the operation kind is rejected.
func (p *Projector) patchFor(op *entity.Operation) (entity.ApplicationPatch, bool) {
	switch op.Kind {
	case constants.KindTextExtraction:
		r := op.Result.Text
		if r == nil || r.Text == "" {
			return entity.ApplicationPatch{}, false
		}
		return entity.ApplicationPatch{ExtractedText: &r.Text}, true

	case constants.KindClassification:
		r := op.Result.Classification
		if r == nil || r.ProductType == "" {
			return entity.ApplicationPatch{}, false
		}
		patch := entity.ApplicationPatch{ProductType: &r.ProductType}
		if r.Confidence > 0 {
			patch.TypeConfidence = &r.Confidence
		}
		if r.Reasoning != "" {
			patch.TypeReasoning = &r.Reasoning
		}
		return patch, true

	case constants.KindAbbreviation:
		r := op.Result.Abbreviation
		if r == nil || r.Abbreviation == "" {
			return entity.ApplicationPatch{}, false
		}
		processedAt := time.Now().UTC()
		if op.CompletedAt != nil {
			processedAt = *op.CompletedAt
		}
		patch := entity.ApplicationPatch{
			Abbreviation: &r.Abbreviation,
			ProcessedAt:  &processedAt,
		}
		if len(r.Params) > 0 {
			if raw, err := json.Marshal(r.Params); err == nil {
				patch.AbbreviationParams = raw
			}
		}
		return patch, true
	}
	return entity.ApplicationPatch{}, false
}
