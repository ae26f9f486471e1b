package memstore

import (
	"context"
	"sync"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

// AnalysisStore keeps extracted supervisory-document text keyed by analysis
// id. The id is the capability token the client must present to request
// response generation.
type AnalysisStore struct {
	mu       sync.RWMutex
	analyses map[string]string
}

var _ models.AnalysisStore = &AnalysisStore{}

func NewAnalysisStore() *AnalysisStore {
	return &AnalysisStore{analyses: make(map[string]string)}
}

func (s *AnalysisStore) Put(_ context.Context, id, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[id] = text
	return nil
}

func (s *AnalysisStore) Get(_ context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.analyses[id]
	if !ok {
		return "", models.NewNotFoundError("analysis")
	}
	return text, nil
}
