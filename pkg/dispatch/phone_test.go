package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"channel prefixed", "whatsapp:+15551112222", "+15551112222"},
		{"already e164", "+15551112222", "+15551112222"},
		{"missing plus", "15551112222", "+15551112222"},
		{"spaces and dashes", "+1 (555) 111-2222", "+15551112222"},
		{"brazilian format", "whatsapp:+55 51 99876-5432", "+5551998765432"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhone_NoDigits(t *testing.T) {
	_, err := NormalizePhone("whatsapp:")
	assert.Error(t, err)

	_, err = NormalizePhone("")
	assert.Error(t, err)
}
