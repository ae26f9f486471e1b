package models

// ComplianceStatus is the state of one obligation extracted from an uploaded
// regulatory document.
type ComplianceStatus string

const (
	ComplianceComplied  ComplianceStatus = "complied"
	CompliancePartial   ComplianceStatus = "partial"
	ComplianceViolation ComplianceStatus = "violation"
)

// AuditStatus is the outcome of one formal check over a drafted reply.
type AuditStatus string

const (
	AuditPassed  AuditStatus = "passed"
	AuditWarning AuditStatus = "warning"
	AuditFailed  AuditStatus = "failed"
)

// DocumentRequirement is one obligation extracted from a supervisory order.
type DocumentRequirement struct {
	ID          string           `json:"id"`
	Requirement string           `json:"requirement"`
	LegalBasis  string           `json:"legalBasis"`
	Status      ComplianceStatus `json:"status"`
	Documents   []string         `json:"documents"`
}

// AuditCheck is one formal compliance check result.
type AuditCheck struct {
	ID     int         `json:"id"`
	Check  string      `json:"check"`
	Status AuditStatus `json:"status"`
}

// DocumentInfo is metadata extracted from the uploaded document.
type DocumentInfo struct {
	Sender   string `json:"sender"`
	Number   string `json:"number"`
	Date     string `json:"date"`
	Deadline string `json:"deadline"`
}

// AnalysisResult aggregates the findings of one document analysis. ID is a
// server-issued capability token: the client must present exactly this value
// to request the dependent response generation.
type AnalysisResult struct {
	ID           string                `json:"id"`
	Requirements []DocumentRequirement `json:"requirements"`
	AuditChecks  []AuditCheck          `json:"auditChecks"`
	DocumentInfo DocumentInfo          `json:"documentInfo"`
}

// SupervisionGenerateRequest is the body of POST /api/v1/supervision/generate.
type SupervisionGenerateRequest struct {
	AnalysisID string `json:"analysis_id" validate:"required"`
}

// SupervisionGenerateResult carries the drafted reply to the supervisory
// authority.
type SupervisionGenerateResult struct {
	Response string `json:"response"`
}
