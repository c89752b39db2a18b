package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/akhomyakov/docflow/constants"
)

// RequestMetadata records what was sent to a provider: endpoint and method
// only, never the payload itself.
type RequestMetadata struct {
	Endpoint string `json:"endpoint"`
	Method   string `json:"method"`
}

// TextExtractionResult is the payload of a completed TEXT_EXTRACTION
// operation.
type TextExtractionResult struct {
	Text     string `json:"text"`
	Pages    int    `json:"pages,omitempty"`
	Method   string `json:"method"` // "vision-sync" | "vision-async" | "sheet-local"
	Degraded bool   `json:"degraded,omitempty"`
}

// ClassificationResult is the payload of a completed CLASSIFICATION
// operation.
type ClassificationResult struct {
	ProductType string  `json:"product_type"`
	Confidence  float32 `json:"confidence,omitempty"`
	Reasoning   string  `json:"reasoning,omitempty"`
}

// AbbreviationResult is the payload of a completed ABBREVIATION operation.
type AbbreviationResult struct {
	Abbreviation string            `json:"abbreviation"`
	Params       map[string]string `json:"params,omitempty"`
}

// OperationResult is the closed per-kind result union. Exactly one member is
// set on a completed operation, matching the operation's kind; it is decoded
// once at the store boundary and never re-parsed from raw JSON.
type OperationResult struct {
	Text           *TextExtractionResult `json:"text,omitempty"`
	Classification *ClassificationResult `json:"classification,omitempty"`
	Abbreviation   *AbbreviationResult   `json:"abbreviation,omitempty"`
}

// Empty reports whether no member of the union is set.
func (r *OperationResult) Empty() bool {
	return r == nil || (r.Text == nil && r.Classification == nil && r.Abbreviation == nil)
}

// OperationFailure is the structured error of a failed operation.
type OperationFailure struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Operation represents a processing operation for data transfer between
// layers.
type Operation struct {
	ID              uuid.UUID          `json:"id"`
	OwnerID         uuid.UUID          `json:"owner_id"`
	Kind            constants.OpKind   `json:"kind"`
	Provider        constants.Provider `json:"provider"`
	Status          constants.OpStatus `json:"status"`
	ExternalJobID   *string            `json:"external_job_id,omitempty"`
	RequestMetadata *RequestMetadata   `json:"request_metadata,omitempty"`
	Result          *OperationResult   `json:"result,omitempty"`
	Failure         *OperationFailure  `json:"failure,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	StartedAt       *time.Time         `json:"started_at,omitempty"`
	CompletedAt     *time.Time         `json:"completed_at,omitempty"`
	RetryCount      int                `json:"retry_count"`
	MaxRetries      int                `json:"max_retries"`
}

// IsTerminal reports whether the operation reached COMPLETED or FAILED.
func (o *Operation) IsTerminal() bool {
	return o.Status.IsTerminal()
}
