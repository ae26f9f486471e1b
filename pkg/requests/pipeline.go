package requests

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/internal"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/apiclient"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

var log = internal.GetLogger()

// DefaultStageInterval is the cadence of the progress indicator.
const DefaultStageInterval = 600 * time.Millisecond

// Pipeline drives citizen-request response generation. It issues exactly one
// network call per Generate and advances a cosmetic stage on a fixed interval
// while the call is in flight. The stage ticker and the request are two
// independent streams joined only at completion or failure; the ticker never
// gates the request.
type Pipeline struct {
	client        *apiclient.Client
	stageInterval time.Duration

	stage  atomic.Int32
	result atomic.Pointer[models.GenerateResult]

	// mu serializes stage transitions and callback delivery, keeping the
	// observed stage sequence in order across the ticker and the request.
	mu      sync.Mutex
	onStage func(Stage)
}

func NewPipeline(client *apiclient.Client) *Pipeline {
	return &Pipeline{
		client:        client,
		stageInterval: DefaultStageInterval,
	}
}

// OnStage registers a callback invoked on every stage change. Intended for
// progressive disclosure in a UI; pass nil to unregister. The callback may
// read Stage and Result, but must not call Generate.
func (p *Pipeline) OnStage(fn func(Stage)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onStage = fn
}

func (p *Pipeline) Stage() Stage {
	return Stage(p.stage.Load())
}

// Result returns the last successful generation, or nil.
func (p *Pipeline) Result() *models.GenerateResult {
	return p.result.Load()
}

// MaskPII requests authoritative PII detection for raw text.
func (p *Pipeline) MaskPII(ctx context.Context, text string) ([]models.PIIMapping, error) {
	return apiclient.Post[[]models.PIIMapping](
		ctx, p.client, "/api/v1/requests/mask-pii", models.MaskPIIRequest{Text: text})
}

// Generate submits the request text and blocks until the backend responds.
// On success the stage is Done and the authoritative result is exposed; on
// failure the stage resets to Idle and the error carries the backend detail.
// No retry is attempted.
func (p *Pipeline) Generate(ctx context.Context, text, tone string) (*models.GenerateResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("text", "must not be empty")
	}

	tickerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.setStage(StageMasking)
	go p.advanceStages(tickerCtx)

	result, err := apiclient.Post[models.GenerateResult](
		ctx, p.client, "/api/v1/requests/generate",
		models.GenerateRequest{Text: text, Tone: tone})
	cancel()
	if err != nil {
		log.Errorf("generation failed: %v", err)
		p.reset()
		return nil, err
	}

	p.finish(&result)
	return &result, nil
}

// advanceStages is the cosmetic ticker. It walks the stage forward until
// AssessingRisk and then waits for the request to join.
func (p *Pipeline) advanceStages(ctx context.Context) {
	ticker := time.NewTicker(p.stageInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !p.advance() {
				return
			}
		}
	}
}

func (p *Pipeline) advance() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	stage := Stage(p.stage.Load())
	if stage < StageMasking || stage >= StageAssessingRisk {
		return false
	}
	stage++
	p.stage.Store(int32(stage))
	p.notifyLocked(stage)
	return true
}

func (p *Pipeline) setStage(stage Stage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stage.Store(int32(stage))
	p.notifyLocked(stage)
}

func (p *Pipeline) finish(result *models.GenerateResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.result.Store(result)
	p.stage.Store(int32(StageDone))
	p.notifyLocked(StageDone)
}

func (p *Pipeline) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.result.Store(nil)
	p.stage.Store(int32(StageIdle))
	p.notifyLocked(StageIdle)
}

// notifyLocked delivers one transition. Stage and Result are read lock-free,
// so the callback is free to query the pipeline.
func (p *Pipeline) notifyLocked(stage Stage) {
	if p.onStage != nil {
		p.onStage(stage)
	}
}
