package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhomyakov/docflow/internal/common"
)

func testCaller(t *testing.T) *Caller {
	t.Helper()
	// Keep-alives off so a hijacked-and-closed connection is not reused.
	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	return NewCaller(client, 2*time.Millisecond, nil)
}

func TestCallSuccess(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Api-Key k", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	body, err := testCaller(t).Call(context.Background(), Request{
		Method:  http.MethodPost,
		URL:     srv.URL,
		Headers: map[string]string{"Authorization": "Api-Key k"},
		Body:    map[string]string{"hello": "world"},
	}, time.Second, 3)

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestCallRetriesTransientThenSucceeds(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&attempts, 1)
		if n <= 2 {
			// Drop the connection mid-request to simulate a network failure.
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	body, err := testCaller(t).Call(context.Background(), Request{
		Method: http.MethodGet,
		URL:    srv.URL,
	}, time.Second, 3)

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestCallExhaustsRetryBudget(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	}))
	defer srv.Close()

	_, err := testCaller(t).Call(context.Background(), Request{
		Method: http.MethodGet,
		URL:    srv.URL,
	}, time.Second, 2)

	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindTransient), "got %v", err)
	// first attempt + 2 retries
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestCallDoesNotRetryHTTPErrors(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"nope"}`))
	}))
	defer srv.Close()

	_, err := testCaller(t).Call(context.Background(), Request{
		Method: http.MethodGet,
		URL:    srv.URL,
	}, time.Second, 5)

	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindProvider), "got %v", err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))

	var ce *common.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "HTTP_400", ce.Code)
	assert.Contains(t, ce.Message, "nope")
}

func TestCallAttemptTimeoutIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	_, err := testCaller(t).Call(context.Background(), Request{
		Method: http.MethodGet,
		URL:    srv.URL,
	}, 20*time.Millisecond, 1)

	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindTransient), "got %v", err)
}

func TestCallStopsWhenContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testCaller(t).Call(ctx, Request{Method: http.MethodGet, URL: srv.URL}, time.Second, 10)
	require.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate([]byte("short"), 10))
	assert.Equal(t, "long...", truncate([]byte("longbody"), 4))
}
