package supervision

import (
	"context"
	"io"
	"sync"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/apiclient"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

// Analyzer drives the two-phase supervision workflow: upload a supervisory
// order for analysis, then request a drafted reply keyed by the analysis id
// the backend issued. The id is a capability token: generation is only
// reachable after a successful analysis, and a new upload replaces the held
// id. Generation may be repeated with the same id if it fails.
type Analyzer struct {
	api *apiclient.Client

	mu         sync.Mutex
	analysisID string
}

func NewAnalyzer(api *apiclient.Client) *Analyzer {
	return &Analyzer{api: api}
}

// AnalysisID returns the id of the last successful analysis, or an empty
// string.
func (a *Analyzer) AnalysisID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.analysisID
}

// Analyze uploads a document and stores the returned analysis id. A failed
// upload resets the held id entirely: there is no partial retry of only the
// generation phase without re-uploading.
func (a *Analyzer) Analyze(ctx context.Context, filename string, content io.Reader) (*models.AnalysisResult, error) {
	result, err := apiclient.UploadFile[models.AnalysisResult](
		ctx, a.api, "/api/v1/supervision/analyze", filename, content)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.analysisID = ""
		return nil, err
	}
	a.analysisID = result.ID
	return &result, nil
}

// GenerateResponse drafts a reply for the held analysis. Fails with
// models.ErrNoAnalysis when called before a successful Analyze.
func (a *Analyzer) GenerateResponse(ctx context.Context) (*models.SupervisionGenerateResult, error) {
	a.mu.Lock()
	id := a.analysisID
	a.mu.Unlock()
	if id == "" {
		return nil, models.ErrNoAnalysis
	}

	result, err := apiclient.Post[models.SupervisionGenerateResult](
		ctx, a.api, "/api/v1/supervision/generate",
		models.SupervisionGenerateRequest{AnalysisID: id})
	if err != nil {
		// The id stays usable so generation can be retried without
		// re-uploading.
		return nil, err
	}
	return &result, nil
}

// Reset forgets the held analysis id, e.g. when the user discards the upload.
func (a *Analyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.analysisID = ""
}
