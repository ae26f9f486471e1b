package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"status":"ok"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, NewCredentials("token123"), time.Second)
	_, err := Get[map[string]string](context.Background(), client, "/health")

	require.NoError(t, err)
	assert.Equal(t, "Bearer token123", gotAuth)
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, NewCredentials(""), time.Second)
	_, err := Get[map[string]string](context.Background(), client, "/health")

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedClearsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"token expired"}`)
	}))
	defer srv.Close()

	creds := NewCredentials("stale")
	client := NewClient(srv.URL, creds, time.Second)
	_, err := Get[map[string]string](context.Background(), client, "/api/v1/dashboard/stats")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "token expired", apiErr.Detail)

	assert.Empty(t, creds.Token(), "a 401 must clear the stored token")
}

func TestErrorDetailExtraction(t *testing.T) {
	testCases := []struct {
		name           string
		status         int
		body           string
		expectedDetail string
	}{
		{
			name:           "detail field",
			status:         http.StatusServiceUnavailable,
			body:           `{"detail":"LLM provider unavailable"}`,
			expectedDetail: "LLM provider unavailable",
		},
		{
			name:           "json without detail falls back to raw body",
			status:         http.StatusBadRequest,
			body:           `{"message":"oops"}`,
			expectedDetail: `{"message":"oops"}`,
		},
		{
			name:           "non-json body falls back to status text",
			status:         http.StatusServiceUnavailable,
			body:           "upstream exploded",
			expectedDetail: "503 Service Unavailable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, NewCredentials(""), time.Second)
			_, err := Post[struct{}](context.Background(), client, "/api/v1/requests/generate", map[string]string{"text": "x"})

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.expectedDetail, apiErr.Detail)
		})
	}
}

func TestUploadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "предписание.txt", header.Filename)
		assert.Equal(t, "текст документа", string(content))

		fmt.Fprint(w, `{"id":"doc1","filename":"предписание.txt","status":"processed"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, NewCredentials(""), time.Second)
	type uploadResult struct {
		ID       string `json:"id"`
		Filename string `json:"filename"`
		Status   string `json:"status"`
	}
	result, err := UploadFile[uploadResult](
		context.Background(), client, "/api/v1/documents/upload",
		"предписание.txt", strings.NewReader("текст документа"))

	require.NoError(t, err)
	assert.Equal(t, "doc1", result.ID)
	assert.Equal(t, "processed", result.Status)
}
