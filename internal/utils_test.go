package internal

import (
	"errors"
	"testing"
)

type testData struct {
	Name string
}

func TestParsePrompt(t *testing.T) {
	testCases := []struct {
		name           string
		promptTemplate string
		data           interface{}
		expected       string
		expectedErr    error
	}{
		{
			name:           "Valid template and data",
			promptTemplate: "Dear {{.Name}}, your request was received.",
			data:           testData{Name: "Ivan Petrov"},
			expected:       "Dear Ivan Petrov, your request was received.",
			expectedErr:    nil,
		},
		{
			name:           "Invalid template",
			promptTemplate: "Dear {{.Name.",
			data:           testData{Name: "Ivan Petrov"},
			expected:       "",
			expectedErr:    errors.New("template: prompt:1: unexpected \".\" in operand"),
		},
		{
			name:           "Invalid data property",
			promptTemplate: "Dear {{.InvalidProperty}}.",
			data:           testData{Name: "Ivan Petrov"},
			expected:       "",
			expectedErr: errors.New(
				"template: prompt:1:7: executing \"prompt\" at <.InvalidProperty>: can't evaluate field InvalidProperty in type internal.testData",
			),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParsePrompt(tc.promptTemplate, tc.data)
			if result != tc.expected {
				t.Errorf("Expected: %s, Got: %s", tc.expected, result)
			}
			if (err == nil) != (tc.expectedErr == nil) ||
				(err != nil && err.Error() != tc.expectedErr.Error()) {
				t.Errorf("Expected error: %v, Got error: %v", tc.expectedErr, err)
			}
		})
	}
}
