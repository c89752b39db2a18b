package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/transport"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	caller := transport.NewCaller(&http.Client{}, time.Millisecond, nil)
	return NewClient(Config{
		BaseURL:          srv.URL,
		OperationBaseURL: srv.URL + "/operations",
		APIKey:           "test-key",
		FolderID:         "folder-1",
		Languages:        []string{"ru", "en"},
		Timeout:          time.Second,
	}, caller, nil)
}

func TestRecognizeSync(t *testing.T) {
	content := []byte("fake image bytes")
	mux := http.NewServeMux()
	mux.HandleFunc("POST /recognizeText", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Api-Key test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "folder-1", r.Header.Get("x-folder-id"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "image/jpeg", body["mimeType"])
		assert.Equal(t, "page", body["model"])
		assert.Equal(t, base64.StdEncoding.EncodeToString(content), body["content"])

		_, _ = w.Write([]byte(`{"result":{"textAnnotation":{"fullText":"Pump X-100\nFlow 50"}}}`))
	})

	res, err := newTestClient(t, mux).Recognize(context.Background(), content, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "Pump X-100\nFlow 50", res.Text)
	assert.Equal(t, 1, res.Pages)
	assert.False(t, res.Degraded)
}

func TestRecognizeSyncNoTextIsParseFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /recognizeText", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":{"textAnnotation":{"fullText":""}}}`))
	})

	_, err := newTestClient(t, mux).Recognize(context.Background(), []byte("x"), "image/png")
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindParse), "got %v", err)
}

func TestSubmitAsyncReturnsJobID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /recognizeTextAsync", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"job-42","done":false}`))
	})

	out, err := newTestClient(t, mux).SubmitAsync(context.Background(), []byte("pdf"), "application/pdf")
	require.NoError(t, err)
	assert.False(t, out.Done)
	assert.Equal(t, "job-42", out.JobID)
	assert.Nil(t, out.Text)
}

func TestSubmitAsyncInlineResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /recognizeTextAsync", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"job-1","done":true,"response":{"textAnnotation":{"fullText":"one pager"}}}`))
	})

	out, err := newTestClient(t, mux).SubmitAsync(context.Background(), []byte("pdf"), "application/pdf")
	require.NoError(t, err)
	assert.True(t, out.Done)
	require.NotNil(t, out.Text)
	assert.Equal(t, "one pager", out.Text.Text)
}

func TestSubmitAsyncMissingJobIDIsParseFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /recognizeTextAsync", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"done":false}`))
	})

	_, err := newTestClient(t, mux).SubmitAsync(context.Background(), []byte("pdf"), "application/pdf")
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindParse), "got %v", err)
}

func TestCheckStatusPending(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /operations/job-7", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"job-7","done":false}`))
	})

	out, err := newTestClient(t, mux).CheckStatus(context.Background(), "job-7")
	require.NoError(t, err)
	assert.False(t, out.Done)
	assert.Nil(t, out.Text)
	assert.Nil(t, out.JobErr)
}

func TestCheckStatusDoneFetchesFullResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /operations/job-7", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"job-7","done":true,"response":{"textAnnotation":{"fullText":"inline only"}}}`))
	})
	mux.HandleFunc("GET /getRecognition", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "job-7", r.URL.Query().Get("operationId"))
		_, _ = w.Write([]byte(`{"result":{"pages":[
			{"textAnnotation":{"fullText":"page one"}},
			{"textAnnotation":{"fullText":"page two"}}
		]}}`))
	})

	out, err := newTestClient(t, mux).CheckStatus(context.Background(), "job-7")
	require.NoError(t, err)
	assert.True(t, out.Done)
	require.NotNil(t, out.Text)
	assert.Equal(t, "page one\npage two", out.Text.Text)
	assert.Equal(t, 2, out.Text.Pages)
	assert.False(t, out.Text.Degraded)
}

func TestCheckStatusDegradedFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /operations/job-9", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"job-9","done":true,"response":{"textAnnotation":{"fullText":"inline text"}}}`))
	})
	mux.HandleFunc("GET /getRecognition", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	out, err := newTestClient(t, mux).CheckStatus(context.Background(), "job-9")
	require.NoError(t, err)
	assert.True(t, out.Done)
	require.NotNil(t, out.Text)
	assert.Equal(t, "inline text", out.Text.Text)
	assert.True(t, out.Text.Degraded)
}

func TestCheckStatusJobError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /operations/job-3", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"job-3","done":true,"error":{"code":"OCR_FAILED","message":"unreadable document"}}`))
	})

	out, err := newTestClient(t, mux).CheckStatus(context.Background(), "job-3")
	require.NoError(t, err)
	assert.True(t, out.Done)
	require.NotNil(t, out.JobErr)
	assert.Equal(t, "OCR_FAILED", out.JobErr.Code)
	assert.Equal(t, "unreadable document", out.JobErr.Message)
	assert.Nil(t, out.Text)
}
