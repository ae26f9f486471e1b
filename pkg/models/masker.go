package models

// Masker performs authoritative PII detection over raw text.
type Masker interface {
	// Mask returns the masked text and the ordered mapping list that was
	// applied. An input without detectable PII returns the text unchanged
	// and an empty mapping list.
	Mask(text string) (string, []PIIMapping)
}
