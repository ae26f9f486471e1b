package models

import "github.com/Evgeniy156/AI-Intelligroup-ZHKH/config"

// AppState is a struct that holds the config and services needed across
// the server lifecycle
type AppState struct {
	Config    *config.Config
	Masker    Masker
	Users     UserStore
	Settings  SettingsStore
	Documents DocumentStore
	Analyses  AnalysisStore
}
