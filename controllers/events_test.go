package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"listora/models"

	"github.com/stretchr/testify/require"
)

func TestEventStreamDeliversChanges(t *testing.T) {
	r, s := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		r.ServeHTTP(w, req)
		close(done)
	}()

	// give the handler a moment to subscribe before mutating
	time.Sleep(50 * time.Millisecond)
	_, _, err := s.AddAsset(models.CategoryContent, models.Asset{
		Type: models.AssetTypePrompt, Title: "Streamed",
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream handler did not stop on client disconnect")
	}

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	body := w.Body.String()
	require.Contains(t, body, "event: change")
	require.Contains(t, body, `"key":"contentAssets"`)
	require.Contains(t, body, `"op":"add"`)
}
