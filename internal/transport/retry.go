package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/akhomyakov/docflow/internal/common"
)

// Request describes one outbound provider call.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    any // JSON-encoded when non-nil
}

// Caller wraps outbound calls with a per-attempt deadline and a bounded
// exponential-backoff retry policy. Only transient failures (timeouts,
// connection errors) are retried; HTTP error statuses and everything the
// caller classifies later are surfaced immediately. The caller knows nothing
// about operations.
type Caller struct {
	client    *http.Client
	logger    *slog.Logger
	baseDelay time.Duration
}

func NewCaller(client *http.Client, baseDelay time.Duration, logger *slog.Logger) *Caller {
	if client == nil {
		client = &http.Client{}
	}
	if baseDelay <= 0 {
		baseDelay = 500 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Caller{client: client, logger: logger, baseDelay: baseDelay}
}

// Call issues req with the given per-attempt timeout. maxRetries bounds the
// retries after the first attempt (total attempts = maxRetries + 1), with
// delays of baseDelay, 2*baseDelay, ... between them. On exhaustion the last
// transient error is returned verbatim.
func (c *Caller) Call(ctx context.Context, req Request, timeout time.Duration, maxRetries uint64) ([]byte, error) {
	reqID := uuid.New().String()

	var encoded []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, common.Parse("encode request body", err)
		}
		encoded = b
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.baseDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0 // bounded by the attempt budget, not wall time
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx)

	attempt := 0
	var body []byte
	err := backoff.Retry(func() error {
		attempt++
		b, err := c.do(ctx, reqID, attempt, req.Method, req.URL, req.Headers, encoded, timeout)
		if err != nil {
			if common.IsKind(err, common.KindTransient) {
				return err
			}
			return backoff.Permanent(err)
		}
		body = b
		return nil
	}, policy)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Caller) do(ctx context.Context, reqID string, attempt int, method, url string, headers map[string]string, encoded []byte, timeout time.Duration) ([]byte, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if encoded != nil {
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, common.Parse("build request", err)
	}
	if encoded != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug("transport.request",
		"req_id", reqID, "attempt", attempt, "method", method, "url", url,
	)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("transport.send_error",
			"req_id", reqID, "attempt", attempt, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, classifyDialError(err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("transport.body_close_error", "req_id", reqID, "error", cerr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.Transient("read response body", err)
	}

	c.logger.Debug("transport.response",
		"req_id", reqID, "attempt", attempt, "status", resp.StatusCode,
		"bytes", len(raw), "elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return nil, common.Provider(
			fmt.Sprintf("provider returned status %d: %s", resp.StatusCode, truncate(raw, 512)),
			fmt.Sprintf("HTTP_%d", resp.StatusCode),
			nil,
		)
	}
	return raw, nil
}

// classifyDialError maps network-layer failures to the transient kind. A
// deadline on the attempt context counts as transient (the next attempt gets
// a fresh deadline); everything else at this layer is a connection-level
// failure and transient as well.
func classifyDialError(err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return common.Transient("request timed out", err)
	}
	return common.Transient("network failure", err)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
