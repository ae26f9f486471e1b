package pii

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/testutils"
)

func TestMaskPreviewMatchesMask(t *testing.T) {
	masker := NewMasker()

	masked, mappings := masker.Mask(testutils.RequestWithEmailAndPhone)

	assert.Equal(t, masked, MaskPreview(testutils.RequestWithEmailAndPhone, mappings))
}

func TestMaskPreviewAppliesLongestOriginalFirst(t *testing.T) {
	// The shorter span is a substring of the longer one. Applying the longer
	// replacement first leaves nothing for the shorter to corrupt.
	mappings := []models.PIIMapping{
		{Original: "123-45-67", Masked: "<SHORT>"},
		{Original: "8 916 123-45-67", Masked: "<PHONE_1>"},
	}

	preview := MaskPreview("Звоните 8 916 123-45-67", mappings)

	assert.Equal(t, "Звоните <PHONE_1>", preview)
}

func TestMaskPreviewEmptyMappingsIsIdentity(t *testing.T) {
	assert.Equal(t, testutils.RequestWithPhone, MaskPreview(testutils.RequestWithPhone, nil))
	assert.Equal(t, testutils.RequestWithPhone, MaskPreview(testutils.RequestWithPhone, []models.PIIMapping{}))
}

func TestMaskPreviewOrderInsensitiveForDisjointSpans(t *testing.T) {
	mappings := []models.PIIMapping{
		{Original: "ivanov@example.com", Masked: "<EMAIL_1>"},
		{Original: "8 916 123-45-67", Masked: "<PHONE_2>"},
	}
	reversed := []models.PIIMapping{mappings[1], mappings[0]}

	preview := MaskPreview(testutils.RequestWithEmailAndPhone, mappings)

	assert.Equal(t, preview, MaskPreview(testutils.RequestWithEmailAndPhone, reversed))
	assert.Contains(t, preview, "<EMAIL_1>")
	assert.Contains(t, preview, "<PHONE_2>")
}

func TestMaskPreviewDoesNotReorderMappings(t *testing.T) {
	mappings := []models.PIIMapping{
		{Original: "a", Masked: "<A>"},
		{Original: "longer", Masked: "<B>"},
	}

	MaskPreview("a longer text", mappings)

	assert.Equal(t, "a", mappings[0].Original)
	assert.Equal(t, "longer", mappings[1].Original)
}
