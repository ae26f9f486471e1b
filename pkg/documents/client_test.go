package documents

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/apiclient"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(apiclient.NewClient(srv.URL, apiclient.NewCredentials(""), 5*time.Second))
}

func TestList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/documents", r.URL.Path)
		fmt.Fprint(w, `[
			{"id":"2","filename":"акт.txt","file_type":"txt","created_at":"2026-08-28T10:00:00Z"},
			{"id":"1","filename":"методичка.pdf","file_type":"pdf","created_at":"2026-08-27T10:00:00Z"}
		]`)
	})

	items, err := client.List(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "акт.txt", items[0].Filename, "order as returned by the backend")
}

func TestUpload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/documents/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "акт.txt", header.Filename)
		fmt.Fprint(w, `{"id":"doc1","filename":"акт.txt","status":"processed"}`)
	})

	result, err := client.Upload(context.Background(), "акт.txt", strings.NewReader("текст акта"))

	require.NoError(t, err)
	assert.Equal(t, "doc1", result.ID)
	assert.Equal(t, "processed", result.Status)
}
