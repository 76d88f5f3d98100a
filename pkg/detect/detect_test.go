package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadflowhq/leadflow/pkg/config"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "CANCELAR", "cancelar"},
		{"diacritics folded", "não funciona", "nao funciona"},
		{"mixed", "  Cancelár Agora ", "cancelar agora"},
		{"plain ascii unchanged", "hello world", "hello world"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestContainsKeyword(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		want    bool
	}{
		{"single word on boundary", "i want a plan", "plan", true},
		{"single word inside another word", "the airplane left", "plan", false},
		{"word at start", "plan b sounds good", "plan", true},
		{"word at end", "what is the plan", "plan", true},
		{"plural is a different word", "show me plans", "plan", false},
		{"multi-word substring", "is the black friday deal live", "black friday", true},
		{"multi-word not present", "friday black coffee", "black friday", false},
		{"keyword with diacritics", "nao consigo entrar", "não consigo entrar", true},
		{"multibyte letter before is not a boundary", "中plan", "plan", false},
		{"multibyte letter after is not a boundary", "plan中", "plan", false},
		{"multibyte punctuation is a boundary", "«plan»", "plan", true},
		{"empty keyword", "anything", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsKeyword(Normalize(tt.text), tt.keyword))
		})
	}
}

func TestSupportDetector(t *testing.T) {
	d := NewSupportDetector([]string{"custom marker"})

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"cancellation in portuguese", "quero CANCELAR minha conta", true},
		{"refund", "I need a refund please", true},
		{"login trouble with diacritics", "não consigo acessar o app", true},
		{"deployment-specific marker", "this is a custom marker case", true},
		{"sales question is not support", "how much is the monthly plan", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.IsSupport(tt.text))
		})
	}
}

func TestFunnelDetector(t *testing.T) {
	fc := &config.FunnelsConfig{
		DefaultFunnel: "primary",
		Detection: &config.DetectionConfig{
			Campaigns: []*config.DetectRule{
				{Keywords: []string{"black friday"}, Funnel: "primary", Source: "campaign", Tags: []string{"campaign"}},
				{Keywords: []string{"vip invite"}, Funnel: "vip", Source: "campaign", InitialStage: "offer"},
			},
			Products: []*config.DetectRule{
				{Keywords: []string{"program", "programa"}, Funnel: "primary", Source: "product"},
			},
			Tags: []*config.TagRule{
				{Tag: "instagram", Keywords: []string{"instagram", "insta"}},
			},
		},
	}
	d := NewFunnelDetector(fc)

	t.Run("campaign rule wins over product rule", func(t *testing.T) {
		cls := d.Detect("saw the black friday program deal")
		assert.Equal(t, "campaign", cls.Source)
		assert.Contains(t, cls.Tags, "campaign")
		assert.Empty(t, cls.InitialStage, "primary enters through its entry trigger")
	})

	t.Run("rule carries the funnel's initial stage", func(t *testing.T) {
		cls := d.Detect("got a VIP invite yesterday")
		assert.Equal(t, "vip", cls.FunnelID)
		assert.Equal(t, "offer", cls.InitialStage)
	})

	t.Run("product rule", func(t *testing.T) {
		cls := d.Detect("quero saber do programa")
		assert.Equal(t, "product", cls.Source)
	})

	t.Run("no rule falls back to default funnel", func(t *testing.T) {
		cls := d.Detect("oi")
		assert.Equal(t, "primary", cls.FunnelID)
		assert.Equal(t, "organic", cls.Source)
		assert.Empty(t, cls.Tags)
	})

	t.Run("tag pass is independent of funnel rules", func(t *testing.T) {
		cls := d.Detect("came from your insta page")
		assert.Equal(t, "organic", cls.Source)
		assert.Equal(t, []string{"instagram"}, cls.Tags)
	})

	t.Run("nil detection config still classifies", func(t *testing.T) {
		d := NewFunnelDetector(&config.FunnelsConfig{DefaultFunnel: "primary"})
		cls := d.Detect("hello")
		assert.Equal(t, "primary", cls.FunnelID)
	})
}
