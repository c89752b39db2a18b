package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/transport"
)

type Config struct {
	BaseURL     string
	APIKey      string
	ModelURI    string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
	MaxRetries  uint64
}

// Client implements ProductClassifier and AbbreviationGenerator over a
// completion endpoint, going through the retry-capable transport.
type Client struct {
	cfg    Config
	caller *transport.Caller
	log    *slog.Logger
}

func NewClient(cfg Config, caller *transport.Caller, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	return &Client{cfg: cfg, caller: caller, log: logger}
}

// CompletionEndpoint is recorded in operation request metadata.
func (c *Client) CompletionEndpoint() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/completion"
}

func (c *Client) ClassifyProduct(ctx context.Context, req ClassifyRequest) (Classification, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()
	c.log.Info("llm.classify.start",
		"req_id", rid, "model_uri", c.cfg.ModelURI,
		"text_len", len(req.Text), "allowed_types", len(req.AllowedTypes),
	)

	schema := BuildClassificationJSONSchema(req.AllowedTypes)
	sys := buildClassifySystemPrompt(req)
	user := buildClassifyUserPrompt(req)

	content, err := c.complete(ctx, sys, user, schema)
	if err != nil {
		c.log.Error("llm.classify.failed", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return Classification{}, content, err
	}

	var out Classification
	if err := json.Unmarshal(content, &out); err != nil {
		return Classification{}, content, common.Parse("unmarshal classification", err)
	}
	c.log.Info("llm.classify.ok",
		"req_id", rid, "product_type", out.ProductType, "confidence", out.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content, nil
}

func (c *Client) GenerateAbbreviation(ctx context.Context, req AbbreviationRequest) (Abbreviation, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()
	c.log.Info("llm.abbreviate.start",
		"req_id", rid, "model_uri", c.cfg.ModelURI, "product_type", req.ProductType,
	)

	schema := BuildAbbreviationJSONSchema()
	sys := "You derive short coded abbreviations for industrial product applications. " +
		"Return ONLY JSON matching the provided schema. The abbreviation is upper-case, " +
		"2-32 characters, built from the product designation, series and key parameters."
	user := buildAbbreviationUserPrompt(req)

	content, err := c.complete(ctx, sys, user, schema)
	if err != nil {
		c.log.Error("llm.abbreviate.failed", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return Abbreviation{}, content, err
	}

	var out Abbreviation
	if err := json.Unmarshal(content, &out); err != nil {
		return Abbreviation{}, content, common.Parse("unmarshal abbreviation", err)
	}
	c.log.Info("llm.abbreviate.ok",
		"req_id", rid, "abbreviation", out.Abbreviation,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content, nil
}

// complete performs one completion call and returns the schema-validated JSON
// content of the first alternative.
func (c *Client) complete(ctx context.Context, sys, user string, schema map[string]any) ([]byte, error) {
	body := map[string]any{
		"modelUri": c.cfg.ModelURI,
		"completionOptions": map[string]any{
			"stream":      false,
			"temperature": c.cfg.Temperature,
			"maxTokens":   c.cfg.MaxTokens,
		},
		"messages": []map[string]any{
			{"role": "system", "text": sys},
			{"role": "system", "text": "JSON Schema:\n" + mustJSON(schema)},
			{"role": "user", "text": user},
		},
	}

	raw, err := c.caller.Call(ctx, transport.Request{
		Method:  http.MethodPost,
		URL:     c.CompletionEndpoint(),
		Headers: map[string]string{"Authorization": "Api-Key " + c.cfg.APIKey},
		Body:    body,
	}, c.cfg.Timeout, c.cfg.MaxRetries)
	if err != nil {
		return nil, err
	}

	var cc struct {
		Result struct {
			Alternatives []struct {
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
			} `json:"alternatives"`
		} `json:"result"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return raw, common.Parse("decode completion response", err)
	}
	if len(cc.Result.Alternatives) == 0 {
		return raw, common.Parse("no alternatives in completion response", nil)
	}

	content := []byte(stripJSONFences(cc.Result.Alternatives[0].Message.Text))
	if err := ValidateJSONAgainstSchema(schema, content); err != nil {
		return content, common.Parse("schema validation failed", err)
	}
	return content, nil
}

// stripJSONFences removes a markdown code fence the model sometimes wraps
// its JSON in.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func buildClassifySystemPrompt(req ClassifyRequest) string {
	parts := []string{
		"You classify the product type of an industrial product application document.",
		"Return ONLY JSON that matches the JSON Schema provided.",
	}
	if len(req.AllowedTypes) > 0 {
		parts = append(parts, "Allowed product types (enum): "+strings.Join(req.AllowedTypes, ", ")+".")
	}
	parts = append(parts,
		"Include 'confidence' (0..1) and a one-sentence 'reasoning' when you can.",
		"Never output null. If a field is not present, omit it.",
	)
	return strings.Join(parts, " ")
}

func buildClassifyUserPrompt(req ClassifyRequest) string {
	var b strings.Builder
	if req.FilenameHint != "" {
		b.WriteString("Filename: ")
		b.WriteString(req.FilenameHint)
		b.WriteString("\n\n")
	}
	b.WriteString("Application text (first ~4k chars):\n")
	if len(req.Text) > 4000 {
		b.WriteString(req.Text[:4000])
	} else {
		b.WriteString(req.Text)
	}
	return b.String()
}

func buildAbbreviationUserPrompt(req AbbreviationRequest) string {
	var b strings.Builder
	if req.ProductType != "" {
		b.WriteString("Product type: ")
		b.WriteString(req.ProductType)
		b.WriteString("\n\n")
	}
	b.WriteString("Application text (first ~4k chars):\n")
	if len(req.Text) > 4000 {
		b.WriteString(req.Text[:4000])
	} else {
		b.WriteString(req.Text)
	}
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
