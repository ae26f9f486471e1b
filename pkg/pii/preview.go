package pii

import (
	"sort"
	"strings"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

// MaskPreview applies known mappings to text for UI preview. It never infers
// PII itself: the mappings must come from the authoritative mask-pii
// endpoint (or from Masker.Mask when running against local fixtures).
//
// Mappings are applied longest-original-first so the result is deterministic
// when one span is a substring of another: the longer span wins regardless of
// the order the backend returned the list in. An empty mapping list returns
// the input unchanged.
func MaskPreview(text string, mappings []models.PIIMapping) string {
	ordered := make([]models.PIIMapping, len(mappings))
	copy(ordered, mappings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Original) > len(ordered[j].Original)
	})

	for _, mapping := range ordered {
		text = strings.ReplaceAll(text, mapping.Original, mapping.Masked)
	}
	return text
}
