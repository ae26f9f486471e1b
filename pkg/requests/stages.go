package requests

// Stage is the progressive-disclosure step of the generation pipeline shown
// while one backend call is in flight. Stages are cosmetic: the backend
// performs mask → classify → retrieve → generate → assess in a single call.
type Stage int

const (
	StageIdle Stage = iota
	StageMasking
	StageClassifying
	StageRetrievingContext
	StageGenerating
	StageAssessingRisk
	StageDone
)

var stageNames = map[Stage]string{
	StageIdle:              "idle",
	StageMasking:           "masking",
	StageClassifying:       "classifying",
	StageRetrievingContext: "retrieving_context",
	StageGenerating:        "generating",
	StageAssessingRisk:     "assessing_risk",
	StageDone:              "done",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}
