package models

// RiskLevel categorizes generated content and legal risks.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// PIIMapping is one detected sensitive span and its placeholder token.
// Mappings form an ordered list; replacement order matters when one span is
// a substring of another.
type PIIMapping struct {
	Original string `json:"original"`
	Masked   string `json:"masked"`
}

// RAGResult is a retrieved context snippet ranked by similarity. The backend
// returns results in descending similarity order and clients keep that order.
type RAGResult struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	Similarity float64 `json:"similarity"`
	Source     string  `json:"source"`
}

// ResponseVariant is one generated reply draft. ID is unique within a single
// generation result.
type ResponseVariant struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tone      string    `json:"tone"`
	RiskLevel RiskLevel `json:"riskLevel"`
}

// GenerateResult is the full payload of a citizen-request generation round
// trip: reply drafts, the retrieved context they were grounded on, and the
// PII mappings applied to the input.
type GenerateResult struct {
	Responses   []ResponseVariant `json:"responses"`
	RAGResults  []RAGResult       `json:"ragResults"`
	PIIMappings []PIIMapping      `json:"piiMappings"`
}

// MaskPIIRequest is the body of POST /api/v1/requests/mask-pii.
type MaskPIIRequest struct {
	Text string `json:"text" validate:"required"`
}

// GenerateRequest is the body of POST /api/v1/requests/generate.
type GenerateRequest struct {
	Text string `json:"text" validate:"required"`
	Tone string `json:"tone,omitempty"`
}
