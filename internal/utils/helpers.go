package utils

import (
	"encoding/json"
	"fmt"

	"github.com/akhomyakov/docflow/constants"
	"github.com/akhomyakov/docflow/gen/ent"
	"github.com/akhomyakov/docflow/internal/entity"
)

// ToOperation converts an ent row to the transfer entity, decoding the JSON
// sub-objects exactly once. Internal code works with the typed union only.
func ToOperation(e *ent.Operation) (*entity.Operation, error) {
	op := &entity.Operation{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		Kind:          constants.OpKind(e.Kind),
		Provider:      constants.Provider(e.Provider),
		Status:        constants.OpStatus(e.Status),
		ExternalJobID: e.ExternalJobID,
		CreatedAt:     e.CreatedAt,
		StartedAt:     e.StartedAt,
		CompletedAt:   e.CompletedAt,
		RetryCount:    e.RetryCount,
		MaxRetries:    e.MaxRetries,
	}
	if len(e.RequestMetadata) > 0 {
		var m entity.RequestMetadata
		if err := json.Unmarshal(e.RequestMetadata, &m); err != nil {
			return nil, fmt.Errorf("decode request_metadata for %s: %w", e.ID, err)
		}
		op.RequestMetadata = &m
	}
	if len(e.Result) > 0 {
		var r entity.OperationResult
		if err := json.Unmarshal(e.Result, &r); err != nil {
			return nil, fmt.Errorf("decode result for %s: %w", e.ID, err)
		}
		op.Result = &r
	}
	if len(e.Failure) > 0 {
		var f entity.OperationFailure
		if err := json.Unmarshal(e.Failure, &f); err != nil {
			return nil, fmt.Errorf("decode failure for %s: %w", e.ID, err)
		}
		op.Failure = &f
	}
	return op, nil
}

// MarshalJSONField encodes an optional sub-object for storage; nil stays nil.
func MarshalJSONField(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func ToApplication(e *ent.Application) *entity.Application {
	return &entity.Application{
		ID:                 e.ID,
		Filename:           e.Filename,
		SourcePath:         e.SourcePath,
		FileExt:            e.FileExt,
		Format:             e.Format,
		ExtractedText:      e.ExtractedText,
		ProductType:        e.ProductType,
		TypeConfidence:     e.TypeConfidence,
		TypeReasoning:      e.TypeReasoning,
		Abbreviation:       e.Abbreviation,
		AbbreviationParams: e.AbbreviationParams,
		ProcessedAt:        e.ProcessedAt,
		UploadedAt:         e.UploadedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
