package models

// DocumentItem is one knowledge-base document as listed by
// GET /api/v1/documents.
type DocumentItem struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	FileType  string `json:"file_type"`
	CreatedAt string `json:"created_at"`
}

// DocumentUploadResult is the response of POST /api/v1/documents/upload.
type DocumentUploadResult struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Status   string `json:"status"`
}
