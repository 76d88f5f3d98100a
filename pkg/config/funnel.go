package config

// FunnelsConfig is the canonical funnel definition: funnels with their
// stages and triggers, the asset table, detection rules for new threads,
// and the post-purchase action list. Loaded from funnels.yaml merged over
// the builtin definition; immutable at runtime.
type FunnelsConfig struct {
	Funnels map[string]*FunnelConfig `yaml:"funnels"`
	// DefaultFunnel is used when no detection rule matches a first message.
	DefaultFunnel string `yaml:"default_funnel"`

	Assets map[string]*AssetConfig `yaml:"assets"`
	// Aliases map short codes to canonical asset ids.
	Aliases map[string]string `yaml:"aliases"`
	// Links are bound into text templates at load time ({link} placeholders
	// reference them by template, e.g. checkout_monthly → links.monthly).
	Links map[string]string `yaml:"links"`

	Detection *DetectionConfig `yaml:"detection"`
	// SupportMarkers extend the builtin support lexicon.
	SupportMarkers []string `yaml:"support_markers"`
	// HandoffAsset is the canned text sent when support is detected.
	HandoffAsset string `yaml:"handoff_asset"`

	// PostPurchase is the welcome action list dispatched after a
	// sale.approved webhook is correlated to a thread.
	PostPurchase []*ActionConfig `yaml:"post_purchase"`
	// CartRecovery is the action list scheduled for silent hot leads.
	CartRecovery []*ActionConfig `yaml:"cart_recovery"`
}

// FunnelConfig is one funnel: an ordered stage set plus its triggers.
type FunnelConfig struct {
	Type     string           `yaml:"type"`
	Stages   []*StageConfig   `yaml:"stages"`
	Triggers []*TriggerConfig `yaml:"triggers"`
}

// StageConfig is one node of a funnel's state machine.
type StageConfig struct {
	ID    string `yaml:"id"`
	Order int    `yaml:"order"`
	Phase string `yaml:"phase,omitempty"`
}

// TriggerConfig maps (prior stage, keyword spec) to an ordered action list.
// Triggers are tried in declaration order; the first whose prior-stage set
// contains the thread's current stage and whose keywords match wins.
type TriggerConfig struct {
	Name string `yaml:"name"`
	// PriorStages lists stages this trigger may fire from. The empty
	// string denotes the unseeded (pre-entry) stage.
	PriorStages []string           `yaml:"prior_stages"`
	Match       *KeywordSpecConfig `yaml:"match"`
	Actions     []*ActionConfig    `yaml:"actions"`
}

// KeywordSpecConfig is the declarative keyword matcher: OR over Any,
// AND over All, NOT over Forbidden. Multi-word entries match as
// substrings; single words match on word boundaries. A nil/empty spec
// matches any text.
type KeywordSpecConfig struct {
	Any       []string `yaml:"any,omitempty"`
	All       []string `yaml:"all,omitempty"`
	Forbidden []string `yaml:"forbidden,omitempty"`
}

// Empty reports whether the spec matches unconditionally.
func (k *KeywordSpecConfig) Empty() bool {
	return k == nil || (len(k.Any) == 0 && len(k.All) == 0 && len(k.Forbidden) == 0)
}

// ActionConfig is one step of a trigger's action list.
//
// Kinds and their fields:
//
//	send_audio          Asset
//	send_image_sequence Assets
//	send_text           Text (literal) or Template (asset id of a text template)
//	set_stage           Stage
//	schedule            Key, Delay (duration string, empty = cart_recovery_delay), Actions
//	cancel              Prefix
type ActionConfig struct {
	Kind     string          `yaml:"kind"`
	Asset    string          `yaml:"asset,omitempty"`
	Assets   []string        `yaml:"assets,omitempty"`
	Text     string          `yaml:"text,omitempty"`
	Template string          `yaml:"template,omitempty"`
	Stage    string          `yaml:"stage,omitempty"`
	Key      string          `yaml:"key,omitempty"`
	Delay    string          `yaml:"delay,omitempty"`
	Actions  []*ActionConfig `yaml:"actions,omitempty"`
	Prefix   string          `yaml:"prefix,omitempty"`
}

// AssetConfig is one entry of the asset table.
// Kind "audio"/"image" carry a Path under the public media root;
// kind "text" carries a Template with optional {name}/{link} placeholders.
type AssetConfig struct {
	Kind     string `yaml:"kind"`
	Path     string `yaml:"path,omitempty"`
	Template string `yaml:"template,omitempty"`
	// Link selects the Links entry bound to {link} for this template.
	Link string `yaml:"link,omitempty"`
}

// DetectionConfig holds the funnel-detector rules for classifying a new
// thread from its first message. Campaign rules are tried first, then
// product rules, then the default.
type DetectionConfig struct {
	Campaigns []*DetectRule `yaml:"campaigns"`
	Products  []*DetectRule `yaml:"products"`
	// Tags are extracted by a separate multi-match pass.
	Tags []*TagRule `yaml:"tags"`
}

// DetectRule routes a first message containing any of Keywords to a funnel.
type DetectRule struct {
	Keywords []string `yaml:"keywords"`
	Funnel   string   `yaml:"funnel"`
	Source   string   `yaml:"source"`
	Tags     []string `yaml:"tags,omitempty"`
	// InitialStage seeds lead_stage directly instead of leaving the
	// thread on the unseeded stage for an entry trigger. Required when
	// the target funnel has no trigger firing from the unseeded stage.
	InitialStage string `yaml:"initial_stage,omitempty"`
}

// TagRule attaches Tag when any of Keywords appear in the first message.
type TagRule struct {
	Tag      string   `yaml:"tag"`
	Keywords []string `yaml:"keywords"`
}

// Stage returns the stage config with the given id, or nil.
func (f *FunnelConfig) Stage(id string) *StageConfig {
	for _, s := range f.Stages {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Funnel returns the funnel with the given id, or nil.
func (fc *FunnelsConfig) Funnel(id string) *FunnelConfig {
	if fc == nil {
		return nil
	}
	return fc.Funnels[id]
}
