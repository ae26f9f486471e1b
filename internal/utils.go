package internal

import (
	"bytes"
	"text/template"
)

// ParsePrompt executes promptTemplate against data and returns the rendered
// text. The reply templates behind the generate endpoints go through it.
func ParsePrompt(promptTemplate string, data any) (string, error) {
	tmpl, err := template.New("prompt").Parse(promptTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
