package server

import (
	"net/http"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/config"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

func DashboardStatsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := encodeJSON(w, fixtureDashboardStats); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// HealthHandler reports liveness, version and which providers have keys
// configured.
func HealthHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := models.HealthStatus{
			Status:             "ok",
			Version:            config.VersionString,
			PIIMasking:         appState.Config.PII.MaskingEnabled,
			DeepSeekConfigured: appState.Config.LLM.DeepSeekAPIKey != "",
			GigaChatConfigured: appState.Config.LLM.GigaChatAPIKey != "",
		}
		if err := encodeJSON(w, status); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
