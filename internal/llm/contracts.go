package llm

import "context"

// ClassifyRequest carries the extracted application text plus hints for the
// product-type classification prompt.
type ClassifyRequest struct {
	Text         string
	FilenameHint string
	AllowedTypes []string
}

// Classification is the normalized shape we want from the model.
type Classification struct {
	ProductType string  `json:"product_type"`
	Confidence  float32 `json:"confidence,omitempty"` // 0..1
	Reasoning   string  `json:"reasoning,omitempty"`
}

// AbbreviationRequest carries the inputs for deriving a coded abbreviation.
type AbbreviationRequest struct {
	Text        string
	ProductType string
}

type Abbreviation struct {
	Abbreviation string `json:"abbreviation"`
}

// ProductClassifier is the interface the lifecycle manager depends on.
type ProductClassifier interface {
	ClassifyProduct(ctx context.Context, req ClassifyRequest) (Classification, []byte /*rawJSON*/, error)
}

// AbbreviationGenerator derives the coded abbreviation for an application.
type AbbreviationGenerator interface {
	GenerateAbbreviation(ctx context.Context, req AbbreviationRequest) (Abbreviation, []byte /*rawJSON*/, error)
}
