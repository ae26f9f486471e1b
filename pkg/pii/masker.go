package pii

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

// Masker detects Russian PII (ФЗ-152) in free text and replaces each span
// with a <TYPE_N> placeholder. Detection is regex-based; name detection would
// need an NER model and is out of scope here.
type Masker struct {
	patterns []pattern
}

type pattern struct {
	kind string
	re   *regexp.Regexp
}

var _ models.Masker = &Masker{}

// NewMasker compiles the PII patterns. Pattern order is fixed: it determines
// placeholder numbering for inputs containing several PII kinds.
func NewMasker() *Masker {
	return &Masker{
		patterns: []pattern{
			{"PHONE", regexp.MustCompile(`(\+7|8)[\s\-]?\(?\d{3}\)?[\s\-]?\d{3}[\s\-]?\d{2,4}[\s\-]?\d{2,4}`)},
			{"EMAIL", regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)},
			{"PASSPORT", regexp.MustCompile(`\b\d{4}\s\d{6}\b`)},
			{"INN", regexp.MustCompile(`\b\d{10,12}\b`)},
			{"CARD", regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`)},
		},
	}
}

// Mask replaces every detected span with a placeholder and returns the masked
// text plus the ordered mapping list for later unmasking.
func (m *Masker) Mask(text string) (string, []models.PIIMapping) {
	masked := text
	mappings := []models.PIIMapping{}
	counter := 1

	for _, p := range m.patterns {
		for _, match := range uniqueMatches(p.re, masked) {
			placeholder := fmt.Sprintf("<%s_%d>", p.kind, counter)
			mappings = append(mappings, models.PIIMapping{
				Original: match,
				Masked:   placeholder,
			})
			masked = strings.ReplaceAll(masked, match, placeholder)
			counter++
		}
	}

	return masked, mappings
}

// Unmask restores the original spans using the mapping list. Placeholders are
// unique within one mask result, so application order does not matter.
func (m *Masker) Unmask(masked string, mappings []models.PIIMapping) string {
	text := masked
	for _, mapping := range mappings {
		text = strings.ReplaceAll(text, mapping.Masked, mapping.Original)
	}
	return text
}

// uniqueMatches returns each distinct match once, in order of first
// occurrence.
func uniqueMatches(re *regexp.Regexp, text string) []string {
	seen := make(map[string]bool)
	var matches []string
	for _, match := range re.FindAllString(text, -1) {
		if !seen[match] {
			seen[match] = true
			matches = append(matches, match)
		}
	}
	return matches
}
