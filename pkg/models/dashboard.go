package models

// DashboardStats are the headline counters shown on the dashboard view.
type DashboardStats struct {
	ProcessedRequests    int    `json:"processedRequests"`
	GeneratedResponses   int    `json:"generatedResponses"`
	LegalConsultations   int    `json:"legalConsultations"`
	SupervisionResponses int    `json:"supervisionResponses"`
	RequestsChange       string `json:"requestsChange"`
	ResponsesChange      string `json:"responsesChange"`
	LegalChange          string `json:"legalChange"`
	SupervisionChange    string `json:"supervisionChange"`
}

// HealthStatus is the response of GET /health.
type HealthStatus struct {
	Status             string `json:"status"`
	Version            string `json:"version"`
	PIIMasking         bool   `json:"pii_masking"`
	DeepSeekConfigured bool   `json:"deepseek_configured"`
	GigaChatConfigured bool   `json:"gigachat_configured"`
}
