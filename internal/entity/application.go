package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Application represents an uploaded application document for data transfer
// between layers.
type Application struct {
	ID                 uuid.UUID       `json:"id"`
	Filename           string          `json:"filename"`
	SourcePath         string          `json:"source_path"`
	FileExt            string          `json:"file_ext"`
	Format             string          `json:"format"`
	ExtractedText      *string         `json:"extracted_text,omitempty"`
	ProductType        *string         `json:"product_type,omitempty"`
	TypeConfidence     *float32        `json:"type_confidence,omitempty"`
	TypeReasoning      *string         `json:"type_reasoning,omitempty"`
	Abbreviation       *string         `json:"abbreviation,omitempty"`
	AbbreviationParams json.RawMessage `json:"abbreviation_params,omitempty"`
	ProcessedAt        *time.Time      `json:"processed_at,omitempty"`
	UploadedAt         time.Time       `json:"uploaded_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ApplicationPatch is the narrow update contract the result projector writes
// through. Nil fields are left untouched.
type ApplicationPatch struct {
	ExtractedText      *string
	ProductType        *string
	TypeConfidence     *float32
	TypeReasoning      *string
	Abbreviation       *string
	AbbreviationParams json.RawMessage
	ProcessedAt        *time.Time
}
