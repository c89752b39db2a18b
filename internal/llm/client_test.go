package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/transport"
)

// completionServer answers every completion call with the given message text.
func completionServer(t *testing.T, messageText string, capture *map[string]any) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/completion", r.URL.Path)
		assert.Equal(t, "Api-Key llm-key", r.Header.Get("Authorization"))
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		resp := map[string]any{
			"result": map[string]any{
				"alternatives": []map[string]any{
					{"message": map[string]any{"role": "assistant", "text": messageText}},
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)

	caller := transport.NewCaller(&http.Client{}, time.Millisecond, nil)
	return NewClient(Config{
		BaseURL:     srv.URL,
		APIKey:      "llm-key",
		ModelURI:    "gpt://folder/yandexgpt",
		Temperature: 0.1,
		Timeout:     time.Second,
	}, caller, nil)
}

func TestClassifyProduct(t *testing.T) {
	var captured map[string]any
	answer := "```json\n{\"product_type\":\"PUMP\",\"confidence\":0.92,\"reasoning\":\"mentions impeller and flow rate\"}\n```"
	c := completionServer(t, answer, &captured)

	out, raw, err := c.ClassifyProduct(context.Background(), ClassifyRequest{
		Text:         "Centrifugal pump, flow 50 m3/h, impeller diameter 200mm",
		FilenameHint: "pump-app.pdf",
		AllowedTypes: []string{"PUMP", "VALVE"},
	})
	require.NoError(t, err)
	assert.Equal(t, "PUMP", out.ProductType)
	assert.InDelta(t, 0.92, float64(out.Confidence), 0.001)
	assert.NotEmpty(t, out.Reasoning)
	assert.JSONEq(t, `{"product_type":"PUMP","confidence":0.92,"reasoning":"mentions impeller and flow rate"}`, string(raw))

	// request shape
	assert.Equal(t, "gpt://folder/yandexgpt", captured["modelUri"])
	opts, ok := captured["completionOptions"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, opts["stream"])
	msgs, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 3)
}

func TestClassifyProductRejectsTypeOutsideEnum(t *testing.T) {
	c := completionServer(t, `{"product_type":"TOASTER"}`, nil)

	_, _, err := c.ClassifyProduct(context.Background(), ClassifyRequest{
		Text:         "some text",
		AllowedTypes: []string{"PUMP", "VALVE"},
	})
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindParse), "got %v", err)
}

func TestClassifyProductRejectsMissingRequiredField(t *testing.T) {
	c := completionServer(t, `{"confidence":0.5}`, nil)

	_, _, err := c.ClassifyProduct(context.Background(), ClassifyRequest{Text: "some text"})
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindParse), "got %v", err)
}

func TestGenerateAbbreviation(t *testing.T) {
	c := completionServer(t, `{"abbreviation":"PMP-X100-50"}`, nil)

	out, _, err := c.GenerateAbbreviation(context.Background(), AbbreviationRequest{
		Text:        "Pump X-100, flow 50",
		ProductType: "PUMP",
	})
	require.NoError(t, err)
	assert.Equal(t, "PMP-X100-50", out.Abbreviation)
}

func TestGenerateAbbreviationRejectsTooShort(t *testing.T) {
	c := completionServer(t, `{"abbreviation":"P"}`, nil)

	_, _, err := c.GenerateAbbreviation(context.Background(), AbbreviationRequest{Text: "x"})
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindParse), "got %v", err)
}

func TestCompleteNoAlternatives(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{"alternatives":[]}}`)
	}))
	defer srv.Close()

	caller := transport.NewCaller(&http.Client{}, time.Millisecond, nil)
	c := NewClient(Config{BaseURL: srv.URL, APIKey: "k", ModelURI: "m", Timeout: time.Second}, caller, nil)

	_, _, err := c.ClassifyProduct(context.Background(), ClassifyRequest{Text: "x"})
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindParse), "got %v", err)
}

func TestStripJSONFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripJSONFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripJSONFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripJSONFences(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, stripJSONFences("  {\"a\":1}  "))
}
