package drive

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdrill/quizdrill-backend/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := NewClient(config.DriveConfig{
		BaseURL:     srv.URL,
		TokenURL:    srv.URL + "/token",
		HTTPTimeout: 5 * time.Second,
	}, testLogger())
	require.NoError(t, err)
	return c
}

func TestClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("q"), "trashed = false")
		assert.Equal(t, "name", r.URL.Query().Get("orderBy"))
		assert.Equal(t, "50", r.URL.Query().Get("pageSize"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"files":[
			{"id":"f1","name":"class1_practice.csv","size":"120","createdTime":"2025-02-01T10:00:00Z"},
			{"id":"f2","name":"class2_practice.csv"}
		]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	q := NewQuery().NotTrashed()
	q.PageSize = 50
	q.OrderBy = "name"

	files, err := c.List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "f1", files[0].ID)
	assert.Equal(t, "class1_practice.csv", files[0].Name)
	assert.Equal(t, int64(120), files[0].Size)
}

func TestClient_List_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"files":[]}`))
	}))
	defer srv.Close()

	files, err := newTestClient(t, srv).List(context.Background(), NewQuery().NotTrashed())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestClient_List_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).List(context.Background(), NewQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestClient_Download(t *testing.T) {
	const content = "Instruction,Solution\nQ,A\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/f1", r.URL.Path)
		assert.Equal(t, "media", r.URL.Query().Get("alt"))
		_, _ = w.Write([]byte(content))
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv).Download(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestClient_Download_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "file not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Download(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, srv).Download(ctx, "f1")
	require.Error(t, err)
}
