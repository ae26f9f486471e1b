package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/internal"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

var validate = validator.New()

// MaskPIIHandler performs authoritative PII detection over raw text and
// returns the mapping list.
func MaskPIIHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.MaskPIIRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			renderError(w, models.NewValidationError("text", "must not be empty"), http.StatusBadRequest)
			return
		}

		_, mappings := appState.Masker.Mask(req.Text)
		if err := encodeJSON(w, mappings); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// GenerateHandler runs the whole server-side pipeline for one citizen
// request: mask, retrieve context, draft variants, attach the applied
// mappings. Drafts are assembled deterministically from the masked input;
// there is no LLM behind the stub.
func GenerateHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.GenerateRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			renderError(w, models.NewValidationError("text", "must not be empty"), http.StatusBadRequest)
			return
		}

		masked := req.Text
		mappings := []models.PIIMapping{}
		if appState.Config.PII.MaskingEnabled {
			masked, mappings = appState.Masker.Mask(req.Text)
		}

		org, err := appState.Settings.GetOrganization(r.Context())
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		variants, err := buildVariants(masked, req.Tone, org)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		result := models.GenerateResult{
			Responses:   variants,
			RAGResults:  fixtureRAGResults,
			PIIMappings: mappings,
		}
		if err := encodeJSON(w, result); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// buildVariants drafts the reply variants from the masked request text. When
// a tone is requested, only variants of that tone are returned.
func buildVariants(masked, tone string, org *models.OrganizationSettings) ([]models.ResponseVariant, error) {
	data := replyTemplateData{
		Excerpt: truncateRunes(masked, 200),
		Phone:   org.Phone,
		Org:     org.Name,
	}

	shortContent, err := internal.ParsePrompt(shortReplyTemplate, data)
	if err != nil {
		return nil, err
	}
	officialContent, err := internal.ParsePrompt(officialReplyTemplate, data)
	if err != nil {
		return nil, err
	}

	variants := []models.ResponseVariant{
		{
			ID:        "short",
			Title:     "Краткий вариант",
			Content:   shortContent,
			Tone:      "нейтральный",
			RiskLevel: models.RiskLow,
		},
		{
			ID:        "official",
			Title:     "Официальный вариант",
			Content:   officialContent,
			Tone:      "строгий",
			RiskLevel: models.RiskMedium,
		},
	}

	if tone == "" {
		return variants, nil
	}
	var filtered []models.ResponseVariant
	for _, v := range variants {
		if v.Tone == tone {
			filtered = append(filtered, v)
		}
	}
	if len(filtered) == 0 {
		return variants, nil
	}
	return filtered, nil
}
