package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("LEADFLOW_TEST_SECRET", "s3cret")
	t.Setenv("LEADFLOW_TEST_URL", "https://leadflow.example.com")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    "webhook_secret: \"{{.LEADFLOW_TEST_SECRET}}\"",
			expected: "webhook_secret: \"s3cret\"",
		},
		{
			name:     "multiple variables",
			input:    "url: {{.LEADFLOW_TEST_URL}}\nsecret: {{.LEADFLOW_TEST_SECRET}}",
			expected: "url: https://leadflow.example.com\nsecret: s3cret",
		},
		{
			name:     "missing variable expands to empty",
			input:    "value: \"{{.LEADFLOW_TEST_DOES_NOT_EXIST}}\"",
			expected: "value: \"\"",
		},
		{
			name:     "dollar signs in regex patterns preserved",
			input:    `pattern: "price\\$[0-9]+$"`,
			expected: `pattern: "price\\$[0-9]+$"`,
		},
		{
			name:     "shell-style syntax not expanded",
			input:    "value: $LEADFLOW_TEST_SECRET and ${LEADFLOW_TEST_SECRET}",
			expected: "value: $LEADFLOW_TEST_SECRET and ${LEADFLOW_TEST_SECRET}",
		},
		{
			name:     "malformed template returned unchanged",
			input:    "value: {{.UNTERMINATED",
			expected: "value: {{.UNTERMINATED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
