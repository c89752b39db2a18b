package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/transport"
)

type Config struct {
	BaseURL          string // recognition endpoints
	OperationBaseURL string // long-running job status endpoint
	APIKey           string
	FolderID         string
	Languages        []string
	Model            string
	Timeout          time.Duration
	MaxRetries       uint64
}

// TextResult is the extracted text of one recognition.
type TextResult struct {
	Text     string
	Pages    int
	Degraded bool // built from the inline poll payload after a failed full fetch
}

// SubmitOutcome is the answer to an asynchronous submission: either the
// provider finished inline (Done, Text set) or handed back a job id.
type SubmitOutcome struct {
	Done  bool
	JobID string
	Text  *TextResult
}

// JobError is a terminal error reported by the external job itself.
type JobError struct {
	Code    string
	Message string
}

// PollOutcome is the answer to one status check of a long-running job.
type PollOutcome struct {
	Done   bool
	Text   *TextResult
	JobErr *JobError
}

// Client talks to the OCR provider through the retry-capable transport:
// synchronous recognition for single-page inputs, submit/poll/fetch for
// long-running jobs.
type Client struct {
	cfg    Config
	caller *transport.Caller
	log    *slog.Logger
}

func NewClient(cfg Config, caller *transport.Caller, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Model == "" {
		cfg.Model = "page"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{cfg: cfg, caller: caller, log: logger}
}

// RecognizeEndpoint is the synchronous submission endpoint, recorded in
// operation request metadata.
func (c *Client) RecognizeEndpoint() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/recognizeText"
}

// SubmitAsyncEndpoint is the long-running submission endpoint.
func (c *Client) SubmitAsyncEndpoint() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/recognizeTextAsync"
}

func (c *Client) recognitionEndpoint() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/getRecognition"
}

func (c *Client) statusEndpoint(jobID string) string {
	return strings.TrimRight(c.cfg.OperationBaseURL, "/") + "/" + jobID
}

func (c *Client) headers() map[string]string {
	h := map[string]string{"Authorization": "Api-Key " + c.cfg.APIKey}
	if c.cfg.FolderID != "" {
		h["x-folder-id"] = c.cfg.FolderID
	}
	return h
}

func (c *Client) submitBody(content []byte, mimeType string) map[string]any {
	return map[string]any{
		"mimeType":      mimeType,
		"languageCodes": c.cfg.Languages,
		"model":         c.cfg.Model,
		"content":       base64.StdEncoding.EncodeToString(content),
	}
}

// Recognize performs a synchronous recognition of a single-page document.
func (c *Client) Recognize(ctx context.Context, content []byte, mimeType string) (TextResult, error) {
	start := time.Now()
	raw, err := c.caller.Call(ctx, transport.Request{
		Method:  http.MethodPost,
		URL:     c.RecognizeEndpoint(),
		Headers: c.headers(),
		Body:    c.submitBody(content, mimeType),
	}, c.cfg.Timeout, c.cfg.MaxRetries)
	if err != nil {
		return TextResult{}, err
	}

	var resp struct {
		Result recognizeResponse `json:"result"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return TextResult{}, common.Parse("decode recognition response", err)
	}
	text := extractText(resp.Result.TextAnnotation)
	if text == "" {
		return TextResult{}, common.Parse("recognition returned no text", nil)
	}

	c.log.Info("vision.recognize.ok",
		"bytes", len(content), "text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return TextResult{Text: text, Pages: 1}, nil
}

// SubmitAsync submits a multi-page document as a long-running job. The
// provider may still answer inline for trivial inputs.
func (c *Client) SubmitAsync(ctx context.Context, content []byte, mimeType string) (SubmitOutcome, error) {
	raw, err := c.caller.Call(ctx, transport.Request{
		Method:  http.MethodPost,
		URL:     c.SubmitAsyncEndpoint(),
		Headers: c.headers(),
		Body:    c.submitBody(content, mimeType),
	}, c.cfg.Timeout, c.cfg.MaxRetries)
	if err != nil {
		return SubmitOutcome{}, err
	}

	var env operationEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return SubmitOutcome{}, common.Parse("decode submission envelope", err)
	}
	if !env.Done {
		if env.ID == "" {
			return SubmitOutcome{}, common.Parse("submission accepted without a job id", nil)
		}
		c.log.Info("vision.submit.accepted", "job_id", env.ID)
		return SubmitOutcome{JobID: env.ID}, nil
	}

	text := extractText(annotationOf(env.Response))
	if text == "" {
		return SubmitOutcome{}, common.Parse("inline submission result had no text", nil)
	}
	return SubmitOutcome{Done: true, Text: &TextResult{Text: text, Pages: 1}}, nil
}

// CheckStatus polls the long-running job once. When the job is done with a
// result, the full per-page payload is fetched from the dedicated result
// endpoint; if that fetch fails, the inline payload of the status response is
// used instead and the result is marked degraded.
func (c *Client) CheckStatus(ctx context.Context, jobID string) (PollOutcome, error) {
	raw, err := c.caller.Call(ctx, transport.Request{
		Method:  http.MethodGet,
		URL:     c.statusEndpoint(jobID),
		Headers: c.headers(),
	}, c.cfg.Timeout, c.cfg.MaxRetries)
	if err != nil {
		return PollOutcome{}, err
	}

	var env operationEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return PollOutcome{}, common.Parse("decode job status envelope", err)
	}
	if !env.Done {
		c.log.Debug("vision.poll.pending", "job_id", jobID)
		return PollOutcome{}, nil
	}
	if env.Error != nil {
		c.log.Warn("vision.poll.job_error", "job_id", jobID, "code", env.Error.Code, "message", env.Error.Message)
		return PollOutcome{Done: true, JobErr: &JobError{Code: env.Error.Code, Message: env.Error.Message}}, nil
	}

	res, ferr := c.fetchRecognition(ctx, jobID)
	if ferr == nil {
		return PollOutcome{Done: true, Text: res}, nil
	}
	// Deliberate degraded path: the job succeeded, only the full fetch did
	// not. Use whatever the status response itself carried.
	c.log.Warn("vision.poll.full_fetch_failed", "job_id", jobID, "error", ferr, "fallback", "inline")

	text := extractText(annotationOf(env.Response))
	if text == "" {
		return PollOutcome{}, common.Parse("job finished with no recoverable text", nil)
	}
	return PollOutcome{Done: true, Text: &TextResult{Text: text, Pages: 1, Degraded: true}}, nil
}

// fetchRecognition pulls the full per-page result of a finished job.
func (c *Client) fetchRecognition(ctx context.Context, jobID string) (*TextResult, error) {
	raw, err := c.caller.Call(ctx, transport.Request{
		Method:  http.MethodGet,
		URL:     c.recognitionEndpoint() + "?operationId=" + jobID,
		Headers: c.headers(),
	}, c.cfg.Timeout, c.cfg.MaxRetries)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Result recognitionResult `json:"result"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, common.Parse("decode recognition pages", err)
	}

	var parts []string
	for _, p := range resp.Result.Pages {
		if t := extractText(p.TextAnnotation); t != "" {
			parts = append(parts, t)
		}
	}
	joined := strings.Join(parts, "\n")
	if joined == "" {
		return nil, common.Parse("recognition pages had no text", nil)
	}
	c.log.Info("vision.fetch.ok", "job_id", jobID, "pages", len(resp.Result.Pages), "text_len", len(joined))
	return &TextResult{Text: joined, Pages: len(resp.Result.Pages)}, nil
}

func annotationOf(r *recognizeResponse) *textAnnotation {
	if r == nil {
		return nil
	}
	return r.TextAnnotation
}
