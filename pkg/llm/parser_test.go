package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Run("plain prose is a text reply", func(t *testing.T) {
		resp, err := ParseResponse("Sure! The program runs for 12 weeks.")
		require.NoError(t, err)
		assert.Equal(t, ResponseText, resp.Type)
		assert.Equal(t, "Sure! The program runs for 12 weeks.", resp.Message)
		assert.Empty(t, resp.NextStage)
	})

	t.Run("audio descriptor", func(t *testing.T) {
		resp, err := ParseResponse(`{"response_type": "audio", "asset_id": "plans", "next_stage": "warm"}`)
		require.NoError(t, err)
		assert.Equal(t, ResponseAudio, resp.Type)
		assert.Equal(t, "plans", resp.AssetID)
		assert.Equal(t, "warm", resp.NextStage)
	})

	t.Run("embedded JSON takes precedence over prose", func(t *testing.T) {
		raw := `Here's what I'd send: {"response_type": "template", "template_code": "checkout_monthly"} hope that helps!`
		resp, err := ParseResponse(raw)
		require.NoError(t, err)
		assert.Equal(t, ResponseTemplate, resp.Type)
		assert.Equal(t, "checkout_monthly", resp.TemplateCode)
	})

	t.Run("braces inside string literals do not break extraction", func(t *testing.T) {
		raw := `{"response_type": "text", "message": "use {name} like this: {}"}`
		resp, err := ParseResponse(raw)
		require.NoError(t, err)
		assert.Equal(t, "use {name} like this: {}", resp.Message)
	})

	tests := []struct {
		name string
		raw  string
	}{
		{"empty output", ""},
		{"audio without asset_id", `{"response_type": "audio"}`},
		{"template without template_code", `{"response_type": "template", "message": "x"}`},
		{"text descriptor without message", `{"response_type": "text"}`},
		{"missing response_type", `{"asset_id": "plans"}`},
		{"unknown response_type", `{"response_type": "video", "asset_id": "x"}`},
		{"malformed embedded JSON", `reply: {"response_type": "text", "message": }`},
	}

	for _, tt := range tests {
		t.Run(tt.name+" rejected", func(t *testing.T) {
			_, err := ParseResponse(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	t.Run("no object", func(t *testing.T) {
		_, found := extractJSONObject("just words")
		assert.False(t, found)
	})

	t.Run("unbalanced object", func(t *testing.T) {
		_, found := extractJSONObject(`{"a": {"b": 1}`)
		assert.False(t, found)
	})

	t.Run("nested object extracted whole", func(t *testing.T) {
		obj, found := extractJSONObject(`prefix {"a": {"b": 1}} suffix`)
		assert.True(t, found)
		assert.Equal(t, `{"a": {"b": 1}}`, obj)
	})
}
