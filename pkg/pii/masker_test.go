package pii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/testutils"
)

func TestMaskPhone(t *testing.T) {
	masker := NewMasker()

	masked, mappings := masker.Mask(testutils.RequestWithPhone)

	require.Len(t, mappings, 1)
	assert.Equal(t, "+7 (916) 123-45-67", mappings[0].Original)
	assert.Equal(t, "<PHONE_1>", mappings[0].Masked)
	assert.Contains(t, masked, "<PHONE_1>")
	assert.NotContains(t, masked, "+7 (916) 123-45-67")
}

func TestMaskKinds(t *testing.T) {
	masker := NewMasker()

	testCases := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "phone then email keeps detection order",
			text:     testutils.RequestWithEmailAndPhone,
			expected: []string{"<PHONE_1>", "<EMAIL_2>"},
		},
		{
			name:     "passport series and number",
			text:     testutils.RequestWithPassport,
			expected: []string{"<PASSPORT_1>"},
		},
		{
			name:     "inn of the organization",
			text:     "ИНН организации 7701234567, просим сверить реквизиты.",
			expected: []string{"<INN_1>"},
		},
		{
			name:     "card number with spaces",
			text:     "Оплата произведена с карты 1234 5678 9012 3456 десятого числа.",
			expected: []string{"<CARD_1>"},
		},
		{
			name:     "card number without separators",
			text:     "Карта 1234567890123456 заблокирована.",
			expected: []string{"<CARD_1>"},
		},
		{
			name:     "no personal data",
			text:     testutils.RequestWithoutPII,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			masked, mappings := masker.Mask(tc.text)

			require.Len(t, mappings, len(tc.expected))
			for i, placeholder := range tc.expected {
				assert.Equal(t, placeholder, mappings[i].Masked)
				assert.Contains(t, masked, placeholder)
				assert.NotContains(t, masked, mappings[i].Original)
			}
			if len(tc.expected) == 0 {
				assert.Equal(t, tc.text, masked)
			}
		})
	}
}

func TestMaskDeduplicatesRepeatedSpans(t *testing.T) {
	masker := NewMasker()
	text := "Мой номер +7 (916) 123-45-67, повторяю: +7 (916) 123-45-67."

	masked, mappings := masker.Mask(text)

	require.Len(t, mappings, 1)
	assert.Equal(t, "Мой номер <PHONE_1>, повторяю: <PHONE_1>.", masked)
}

func TestUnmaskRoundTrip(t *testing.T) {
	masker := NewMasker()

	for _, text := range []string{
		testutils.RequestWithPhone,
		testutils.RequestWithEmailAndPhone,
		testutils.RequestWithPassport,
		testutils.RequestWithoutPII,
	} {
		masked, mappings := masker.Mask(text)
		assert.Equal(t, text, masker.Unmask(masked, mappings))
	}
}
