package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

func ListUsersHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := appState.Users.List(r.Context())
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
		if err := encodeJSON(w, users); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func CreateUserHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user models.User
		if err := decodeJSON(r, &user); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(user); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		created, err := appState.Users.Create(r.Context(), &user)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		if err := encodeJSON(w, created); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func UpdateUserHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")
		var patch models.User
		if err := decodeJSON(r, &patch); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		updated, err := appState.Users.Update(r.Context(), userID, &patch)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				renderError(w, err, http.StatusNotFound)
				return
			}
			renderError(w, err, http.StatusInternalServerError)
			return
		}
		if err := encodeJSON(w, updated); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func DeleteUserHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")
		if err := appState.Users.Delete(r.Context(), userID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				renderError(w, err, http.StatusNotFound)
				return
			}
			renderError(w, err, http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func GetOrgSettingsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := appState.Settings.GetOrganization(r.Context())
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
		if err := encodeJSON(w, settings); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func UpdateOrgSettingsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.OrganizationSettings
		if err := decodeJSON(r, &patch); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		settings, err := appState.Settings.UpdateOrganization(r.Context(), &patch)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
		if err := encodeJSON(w, settings); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func GetLLMSettingsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := appState.Settings.GetLLM(r.Context())
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
		if err := encodeJSON(w, settings); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func UpdateLLMSettingsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.LLMSettings
		if err := decodeJSON(r, &patch); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		settings, err := appState.Settings.UpdateLLM(r.Context(), &patch)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
		if err := encodeJSON(w, settings); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
