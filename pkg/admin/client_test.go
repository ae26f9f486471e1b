package admin

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

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/apiclient"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(apiclient.NewClient(srv.URL, apiclient.NewCredentials(""), 5*time.Second))
}

func TestUpdateUserSendsPatchToUserPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/admin/users/42", r.URL.Path)

		var patch models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, models.UserInactive, patch.Status)

		fmt.Fprint(w, `{"id":"42","name":"Иванов А.П.","email":"ivanov@uk.ru","role":"admin","status":"inactive","lastActive":"2 мин назад"}`)
	})

	updated, err := client.UpdateUser(context.Background(), "42", &models.User{Status: models.UserInactive})

	require.NoError(t, err)
	assert.Equal(t, models.UserInactive, updated.Status)
	assert.Equal(t, "Иванов А.П.", updated.Name)
}

func TestDeleteUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/admin/users/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteUser(context.Background(), "42"))
}

func TestDeleteUserNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"detail":"user not found"}`)
	})

	err := client.DeleteUser(context.Background(), "999")

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "user not found", apiErr.Detail)
}

func TestUpdateLLMSettings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/admin/settings/llm", r.URL.Path)
		fmt.Fprint(w, `{"provider":"gigachat","model":"GigaChat-Pro","temperature":0.7,"maxTokens":2048}`)
	})

	settings, err := client.UpdateLLMSettings(context.Background(),
		&models.LLMSettings{Provider: "gigachat", Model: "GigaChat-Pro"})

	require.NoError(t, err)
	assert.Equal(t, "gigachat", settings.Provider)
	assert.Equal(t, 2048, settings.MaxTokens)
}
