package legal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/apiclient"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(apiclient.NewClient(srv.URL, apiclient.NewCredentials(""), 5*time.Second))
}

func TestAsk(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/legal/ask", r.URL.Path)

		var req models.LegalAskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Как рассчитать неустойку?", req.Query)
		assert.Equal(t, ProviderDeepSeek, req.Provider)

		fmt.Fprint(w, `{
			"answer": "В соответствии со ст. 155 ЖК РФ...",
			"sources": [
				{"id":"1","title":"ЖК РФ, Статья 155","type":"law","citation":"Ст. 155 ЖК РФ","relevance":0.98,"content":"..."},
				{"id":"2","title":"ПП РФ №354","type":"law","citation":"п. 42 ПП №354","relevance":0.95,"content":"..."}
			],
			"risks": [
				{"level":"medium","category":"Просрочка","description":"...","recommendation":"..."}
			]
		}`)
	})

	result, err := client.Ask(context.Background(), "Как рассчитать неустойку?", ProviderDeepSeek)

	require.NoError(t, err)
	assert.Contains(t, result.Answer, "ст. 155 ЖК РФ")
	require.Len(t, result.Sources, 2)
	// Sources keep the order the backend returned them in.
	assert.Equal(t, "1", result.Sources[0].ID)
	assert.Equal(t, models.RiskMedium, result.Risks[0].Level)
}

func TestAskRejectsEmptyQuery(t *testing.T) {
	var called atomic.Bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	})

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := client.Ask(context.Background(), query, ProviderDeepSeek)
		assert.ErrorIs(t, err, models.ErrEmptyQuery)
	}
	assert.False(t, called.Load(), "empty queries must not reach the network")
}

func TestAskRejectsUnknownProvider(t *testing.T) {
	var called atomic.Bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	})

	_, err := client.Ask(context.Background(), "Вопрос по отоплению", "gpt4")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrBadRequest)
	assert.False(t, called.Load())
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/legal/search", r.URL.Path)
		fmt.Fprint(w, `{"answer":"Ответ","sources":[],"risks":[]}`)
	})

	result, err := client.Search(context.Background(), "Правомерно ли отключение отопления?")

	require.NoError(t, err)
	assert.Equal(t, "Ответ", result.Answer)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Search(context.Background(), " ")

	assert.ErrorIs(t, err, models.ErrEmptyQuery)
}
