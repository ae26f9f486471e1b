package models

import "context"

// UserStore manages organization members.
type UserStore interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, id string, user *User) (*User, error)
	Delete(ctx context.Context, id string) error
}

// SettingsStore holds the organization profile and LLM settings. Updates are
// partial: zero-value fields of the patch leave the stored value intact.
type SettingsStore interface {
	GetOrganization(ctx context.Context) (*OrganizationSettings, error)
	UpdateOrganization(ctx context.Context, patch *OrganizationSettings) (*OrganizationSettings, error)
	GetLLM(ctx context.Context) (*LLMSettings, error)
	UpdateLLM(ctx context.Context, patch *LLMSettings) (*LLMSettings, error)
}

// DocumentStore manages knowledge-base documents.
type DocumentStore interface {
	List(ctx context.Context) ([]DocumentItem, error)
	Add(ctx context.Context, filename, fileType string, content []byte) (*DocumentUploadResult, error)
}

// AnalysisStore keeps extracted document text keyed by the analysis id issued
// at upload time. Get returns a NotFoundError for unknown ids.
type AnalysisStore interface {
	Put(ctx context.Context, id, text string) error
	Get(ctx context.Context, id string) (string, error)
}
