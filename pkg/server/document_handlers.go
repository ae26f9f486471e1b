package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

// ListDocumentsHandler returns the knowledge-base documents, newest first.
func ListDocumentsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := appState.Documents.List(r.Context())
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
		if err := encodeJSON(w, items); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// UploadDocumentHandler stores one uploaded document in the knowledge base.
func UploadDocumentHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxSize := int64(appState.Config.Documents.MaxUploadSizeMB) << 20
		file, header, err := readUpload(r, maxSize)
		if err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedExtensions[ext] {
			renderError(w, fmt.Errorf("unsupported file format: %s", ext), http.StatusBadRequest)
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

		result, err := appState.Documents.Add(
			r.Context(), header.Filename, strings.TrimPrefix(ext, "."), content)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
		if err := encodeJSON(w, result); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
