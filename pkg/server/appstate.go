package server

import (
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/config"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/pii"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/store/memstore"
)

// NewAppState wires the in-memory stores and the PII masker into an AppState
// ready to be passed to Create.
func NewAppState(cfg *config.Config) *models.AppState {
	return &models.AppState{
		Config:    cfg,
		Masker:    pii.NewMasker(),
		Users:     memstore.NewUserStore(fixtureUsers),
		Settings:  memstore.NewSettingsStore(fixtureOrgSettings, fixtureLLMSettings),
		Documents: memstore.NewDocumentStore(),
		Analyses:  memstore.NewAnalysisStore(),
	}
}
