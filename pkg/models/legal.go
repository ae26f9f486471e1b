package models

// LegalSourceType distinguishes citation kinds in the legal knowledge base.
type LegalSourceType string

const (
	LegalSourceLaw      LegalSourceType = "law"
	LegalSourcePractice LegalSourceType = "practice"
	LegalSourceTemplate LegalSourceType = "template"
)

// LegalSource is a citation record produced by the legal-search endpoint.
type LegalSource struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Type      LegalSourceType `json:"type"`
	Citation  string          `json:"citation"`
	Relevance float64         `json:"relevance"`
	Content   string          `json:"content"`
}

// RiskAssessment is a categorized risk tied to one legal query.
type RiskAssessment struct {
	Level          RiskLevel `json:"level"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	Recommendation string    `json:"recommendation"`
}

// LegalSearchResult is the batch answer to a legal query. Sources arrive
// pre-sorted by descending relevance; clients do not re-sort.
type LegalSearchResult struct {
	Answer  string           `json:"answer"`
	Sources []LegalSource    `json:"sources"`
	Risks   []RiskAssessment `json:"risks"`
}

// LegalSearchRequest is the body of POST /api/v1/legal/search.
type LegalSearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// LegalAskRequest is the body of POST /api/v1/legal/ask.
type LegalAskRequest struct {
	Query    string `json:"query"    validate:"required"`
	Provider string `json:"provider" validate:"required,oneof=deepseek gigachat"`
}
