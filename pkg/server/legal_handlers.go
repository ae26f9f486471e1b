package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

// LegalSearchHandler answers a legal query from the knowledge-base fixtures.
// Sources are returned pre-sorted by descending relevance.
func LegalSearchHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LegalSearchRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			renderError(w, models.NewValidationError("query", "must not be empty"), http.StatusBadRequest)
			return
		}

		result := legalAnswer(req.Query)
		if err := encodeJSON(w, result); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// LegalAskHandler runs the RAG consultation. The stub grounds the answer on
// the fixture sources instead of calling a provider.
func LegalAskHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LegalAskRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			renderError(w, models.NewValidationError("provider", "must be deepseek or gigachat"), http.StatusBadRequest)
			return
		}

		result := legalAnswer(req.Query)
		if err := encodeJSON(w, result); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func legalAnswer(query string) models.LegalSearchResult {
	citations := make([]string, len(fixtureLegalSources))
	for i, source := range fixtureLegalSources {
		citations[i] = source.Citation
	}

	answer := fmt.Sprintf(
		"По вопросу «%s»: в соответствии с %s управляющая организация обязана обеспечивать "+
			"предоставление услуг надлежащего качества и вправе требовать своевременной оплаты. "+
			"Рекомендуем зафиксировать обстоятельства актом и направить претензию в письменной форме.",
		truncateRunes(query, 200), strings.Join(citations, ", "))

	return models.LegalSearchResult{
		Answer:  answer,
		Sources: fixtureLegalSources,
		Risks:   fixtureLegalRisks,
	}
}
