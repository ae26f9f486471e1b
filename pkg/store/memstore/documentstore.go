package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

// DocumentStore is the in-memory implementation of models.DocumentStore.
// Content bytes are held only for the process lifetime; durable storage is
// out of scope.
type DocumentStore struct {
	mu    sync.RWMutex
	items []models.DocumentItem
}

var _ models.DocumentStore = &DocumentStore{}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

func (s *DocumentStore) List(_ context.Context) ([]models.DocumentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Newest first
	items := make([]models.DocumentItem, len(s.items))
	for i, item := range s.items {
		items[len(s.items)-1-i] = item
	}
	return items, nil
}

func (s *DocumentStore) Add(_ context.Context, filename, fileType string, _ []byte) (*models.DocumentUploadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.DocumentItem{
		ID:        uuid.New().String(),
		Filename:  filename,
		FileType:  fileType,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.items = append(s.items, item)

	return &models.DocumentUploadResult{
		ID:       item.ID,
		Filename: item.Filename,
		Status:   "processed",
	}, nil
}
