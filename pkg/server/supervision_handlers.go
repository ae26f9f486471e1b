package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/internal"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// AnalyzeDocumentHandler accepts a supervisory order (PDF/DOCX/TXT), extracts
// its text and returns a structured analysis plus the id for the follow-up
// generation call.
func AnalyzeDocumentHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxSize := int64(appState.Config.Documents.MaxUploadSizeMB) << 20
		file, header, err := readUpload(r, maxSize)
		if err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedExtensions[ext] {
			renderError(w,
				fmt.Errorf("неподдерживаемый формат, допустимы: .pdf, .docx, .txt"),
				http.StatusBadRequest)
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		if len(content) == 0 {
			renderError(w, errors.New("файл пустой"), http.StatusBadRequest)
			return
		}

		text := extractText(content)
		analysisID := uuid.New().String()
		if err := appState.Analyses.Put(r.Context(), analysisID, text); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := encodeJSON(w, buildAnalysisResult(text, analysisID)); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// SupervisionGenerateHandler drafts the official reply for a stored analysis.
func SupervisionGenerateHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SupervisionGenerateRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			renderError(w, models.NewValidationError("analysis_id", "must not be empty"), http.StatusBadRequest)
			return
		}

		text, err := appState.Analyses.Get(r.Context(), req.AnalysisID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				renderError(w,
					errors.New("Анализ не найден. Сначала загрузите и проанализируйте документ."),
					http.StatusNotFound)
				return
			}
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		response, err := internal.ParsePrompt(supervisionReplyTemplate, replyTemplateData{
			Excerpt: truncateRunes(text, 4000),
		})
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		result := models.SupervisionGenerateResult{Response: response}
		if err := encodeJSON(w, result); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// readUpload pulls the "file" part out of a multipart request.
func readUpload(r *http.Request, maxSize int64) (io.ReadCloser, *multipartHeader, error) {
	if err := r.ParseMultipartForm(maxSize); err != nil {
		return nil, nil, fmt.Errorf("invalid multipart body: %w", err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, fmt.Errorf("missing file field: %w", err)
	}
	return file, &multipartHeader{Filename: header.Filename}, nil
}

type multipartHeader struct {
	Filename string
}

// extractText interprets the upload as UTF-8 text, dropping non-printable
// bytes. Real PDF/DOCX extraction sits behind the production backend; the
// stub only needs enough text to derive requirements from.
func extractText(content []byte) string {
	var b strings.Builder
	for _, r := range string(content) {
		if r == '\n' || r == '\t' || strconv.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// buildAnalysisResult derives requirements from the first non-empty lines of
// the document text, mirroring the production extraction shape.
func buildAnalysisResult(text, analysisID string) models.AnalysisResult {
	lines := nonEmptyLines(text)
	if len(lines) > 5 {
		lines = lines[:5]
	}

	requirements := make([]models.DocumentRequirement, 0, len(lines))
	for i, line := range lines {
		requirements = append(requirements, models.DocumentRequirement{
			ID:          strconv.Itoa(i + 1),
			Requirement: truncateRunes(line, 200),
			LegalBasis:  "Из текста предписания",
			Status:      models.CompliancePartial,
			Documents:   []string{},
		})
	}
	if len(requirements) == 0 {
		requirements = []models.DocumentRequirement{{
			ID:          "1",
			Requirement: "Требования извлечены из документа (текст для контекста).",
			LegalBasis:  "Текст предписания",
			Status:      models.CompliancePartial,
			Documents:   []string{},
		}}
	}

	return models.AnalysisResult{
		ID:           analysisID,
		Requirements: requirements,
		AuditChecks:  fixtureAuditChecks,
		DocumentInfo: models.DocumentInfo{
			Sender:   "Надзорный орган",
			Number:   "—",
			Date:     "—",
			Deadline: "—",
		},
	}
}
