package funnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/pkg/config"
	"github.com/leadflowhq/leadflow/pkg/detect"
)

func testEngine() *Engine {
	return NewEngine(config.GetBuiltinConfig().Funnels)
}

func TestEngineMatch(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name        string
		stage       string
		text        string
		wantTrigger string
		wantMatch   bool
	}{
		{"entry from unseeded stage", "", "oi, vi o anúncio", "entry", true},
		{"pain keywords from cold", "cold", "my belly hurts after every meal", "pain", true},
		{"pain keywords with diacritics", "cold", "sinto DOR na barriga", "pain", true},
		{"plans from warming", "warming", "how much does it cost?", "plans_interest", true},
		{"plans directly from cold skips pain", "cold", "what is the price?", "plans_interest", true},
		{"monthly choice from warm", "warm", "I'll take the monthly one", "plan_choice_monthly", true},
		{"annual wins when both mentioned", "warm", "monthly or annual? annual please", "plan_choice_annual", true},
		{"annual choice", "warm", "quero o anual", "plan_choice_annual", true},
		{"no trigger from hot", "hot", "how much is the plan", "", false},
		{"unmatched text falls through", "cold", "tell me about your day", "", false},
		{"entry does not fire from seeded stage", "cold", "oi", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, ok := e.Match("primary", tt.stage, tt.text)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				require.NotNil(t, match)
				assert.Equal(t, tt.wantTrigger, match.Trigger.Name)
			}
		})
	}

	t.Run("unknown funnel never matches", func(t *testing.T) {
		_, ok := e.Match("nope", "cold", "price")
		assert.False(t, ok)
	})
}

func TestMatchSpec(t *testing.T) {
	tests := []struct {
		name string
		spec *config.KeywordSpecConfig
		text string
		want bool
	}{
		{"nil spec matches anything", nil, "whatever", true},
		{"empty spec matches anything", &config.KeywordSpecConfig{}, "whatever", true},
		{"any hit", &config.KeywordSpecConfig{Any: []string{"price", "cost"}}, "what does it cost", true},
		{"any miss", &config.KeywordSpecConfig{Any: []string{"price", "cost"}}, "hello there", false},
		{
			"all requires every keyword",
			&config.KeywordSpecConfig{All: []string{"monthly", "plan"}},
			"the monthly plan please", true,
		},
		{
			"all fails on partial",
			&config.KeywordSpecConfig{All: []string{"monthly", "plan"}},
			"monthly please", false,
		},
		{
			"forbidden vetoes",
			&config.KeywordSpecConfig{Any: []string{"monthly"}, Forbidden: []string{"annual"}},
			"monthly or annual?", false,
		},
		{
			"forbidden alone matches when absent",
			&config.KeywordSpecConfig{Forbidden: []string{"annual"}},
			"just monthly", true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchSpec(tt.spec, detect.Normalize(tt.text)))
		})
	}
}

func TestCanTransition(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"entry edge", "", "cold", true},
		{"pain edge", "cold", "warming", true},
		{"plans shortcut from cold", "cold", "warm", true},
		{"plan choice", "warm", "hot", true},
		{"recovery follow-up fires from hot", "hot", "cart_recovery", true},
		{"purchase from checkout", "hot", "customer", true},
		{"purchase after recovery", "cart_recovery", "customer", true},
		{"restating the current stage", "cold", "cold", true},

		{"no trigger jumps cold to hot", "cold", "hot", false},
		{"no trigger jumps cold to customer", "cold", "customer", false},
		{"purchase path only runs from checkout", "warming", "customer", false},
		{"stages do not move backwards", "warm", "cold", false},
		{"undefined stage", "cold", "lukewarm", false},
		{"unseeded is never a target", "cold", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.CanTransition("primary", tt.from, tt.to))
		})
	}

	assert.False(t, e.CanTransition("nope", "cold", "hot"))
}

func TestHasStage(t *testing.T) {
	e := testEngine()

	assert.True(t, e.HasStage("primary", "hot"))
	assert.True(t, e.HasStage("primary", "customer"))
	assert.False(t, e.HasStage("primary", "lukewarm"))
	assert.False(t, e.HasStage("primary", ""))
	assert.False(t, e.HasStage("nope", "hot"))
}

func TestActionPayloadRoundTrip(t *testing.T) {
	actions := FromConfig([]*config.ActionConfig{
		{Kind: "send_audio", Asset: "recovery"},
		{Kind: "send_text", Template: "recovery_text"},
		{Kind: "set_stage", Stage: "cart_recovery"},
	})

	payload, err := EncodePayload(actions)
	require.NoError(t, err)

	decoded, err := DecodePayload(payload)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.Equal(t, ActionSendAudio, decoded[0].Kind)
	assert.Equal(t, "recovery", decoded[0].Asset)
	assert.Equal(t, "recovery_text", decoded[1].Template)
	assert.Equal(t, "cart_recovery", decoded[2].Stage)
}

func TestDecodePayloadRejectsEmpty(t *testing.T) {
	_, err := DecodePayload(map[string]interface{}{})
	assert.Error(t, err)
}
