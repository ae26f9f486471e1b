package memstore

import (
	"context"
	"sync"

	"dario.cat/mergo"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

// SettingsStore is the in-memory implementation of models.SettingsStore.
// Updates merge non-zero patch fields over the stored record, matching the
// PUT-with-partial-body semantics of the admin API.
type SettingsStore struct {
	mu  sync.RWMutex
	org models.OrganizationSettings
	llm models.LLMSettings
}

var _ models.SettingsStore = &SettingsStore{}

func NewSettingsStore(org models.OrganizationSettings, llm models.LLMSettings) *SettingsStore {
	return &SettingsStore{org: org, llm: llm}
}

func (s *SettingsStore) GetOrganization(_ context.Context) (*models.OrganizationSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	org := s.org
	return &org, nil
}

func (s *SettingsStore) UpdateOrganization(_ context.Context, patch *models.OrganizationSettings) (*models.OrganizationSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := mergo.Merge(&s.org, *patch, mergo.WithOverride); err != nil {
		return nil, err
	}
	org := s.org
	return &org, nil
}

func (s *SettingsStore) GetLLM(_ context.Context) (*models.LLMSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	llm := s.llm
	return &llm, nil
}

func (s *SettingsStore) UpdateLLM(_ context.Context, patch *models.LLMSettings) (*models.LLMSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := mergo.Merge(&s.llm, *patch, mergo.WithOverride); err != nil {
		return nil, err
	}
	llm := s.llm
	return &llm, nil
}
