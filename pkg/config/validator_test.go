package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig builds a validated-by-construction config from the builtin
// funnel definition for mutation in individual cases.
func validConfig() *Config {
	return &Config{
		PublicBaseURL: "https://leadflow.example.com",
		Messenger:     DefaultMessengerConfig(),
		Billing:       &BillingConfig{WebhookSecret: "secret", Source: "billing"},
		LLM:           DefaultLLMConfig(),
		Scheduler:     DefaultSchedulerConfig(),
		Retention:     DefaultRetentionConfig(),
		Slack:         DefaultSlackConfig(),
		Masking:       DefaultMaskingConfig(),
		Funnels:       GetBuiltinConfig().Funnels,
	}
}

func TestValidateAll_BuiltinIsValid(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidateSystem(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing public base URL",
			mutate:  func(c *Config) { c.PublicBaseURL = "" },
			wantErr: "public_base_url",
		},
		{
			name:    "missing webhook secret",
			mutate:  func(c *Config) { c.Billing.WebhookSecret = "" },
			wantErr: "webhook_secret",
		},
		{
			name:    "history window below one",
			mutate:  func(c *Config) { c.LLM.HistoryWindow = 0 },
			wantErr: "history_window",
		},
		{
			name:    "tick interval below one second",
			mutate:  func(c *Config) { c.Scheduler.TickInterval = 0 },
			wantErr: "tick_interval",
		},
		{
			name: "job lease shorter than tick interval",
			mutate: func(c *Config) {
				c.Scheduler.JobLease = c.Scheduler.TickInterval / 2
			},
			wantErr: "job_lease",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			// Sections are shared pointers from defaults; replace with copies
			// before mutating.
			llm := *cfg.LLM
			sched := *cfg.Scheduler
			billing := *cfg.Billing
			cfg.LLM, cfg.Scheduler, cfg.Billing = &llm, &sched, &billing

			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAssets(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FunnelsConfig)
		wantErr error
	}{
		{
			name: "audio asset without path",
			mutate: func(fc *FunnelsConfig) {
				fc.Assets["broken"] = &AssetConfig{Kind: "audio"}
			},
			wantErr: ErrMissingRequiredField,
		},
		{
			name: "text asset without template",
			mutate: func(fc *FunnelsConfig) {
				fc.Assets["broken"] = &AssetConfig{Kind: "text"}
			},
			wantErr: ErrMissingRequiredField,
		},
		{
			name: "text asset with undefined link",
			mutate: func(fc *FunnelsConfig) {
				fc.Assets["broken"] = &AssetConfig{Kind: "text", Template: "x {link}", Link: "nope"}
			},
		},
		{
			name: "alias to missing asset",
			mutate: func(fc *FunnelsConfig) {
				fc.Aliases["ghost"] = "no_such_asset"
			},
			wantErr: ErrAssetNotFound,
		},
		{
			name: "handoff asset must exist",
			mutate: func(fc *FunnelsConfig) {
				fc.HandoffAsset = "no_such_asset"
			},
			wantErr: ErrAssetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg.Funnels)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	t.Run("asset reference through alias is accepted", func(t *testing.T) {
		cfg := validConfig()
		primary := cfg.Funnels.Funnel("primary")
		primary.Triggers[0].Actions[0].Asset = "dor" // alias → pain_generic
		require.NoError(t, NewValidator(cfg).ValidateAll())
	})
}

func TestValidateFunnels(t *testing.T) {
	t.Run("unknown default funnel", func(t *testing.T) {
		cfg := validConfig()
		cfg.Funnels.DefaultFunnel = "nope"
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "default_funnel")
	})

	t.Run("duplicate stage id", func(t *testing.T) {
		cfg := validConfig()
		primary := cfg.Funnels.Funnel("primary")
		primary.Stages = append(primary.Stages, &StageConfig{ID: "cold", Order: 9})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate stage id")
	})

	t.Run("trigger referencing unknown prior stage", func(t *testing.T) {
		cfg := validConfig()
		primary := cfg.Funnels.Funnel("primary")
		primary.Triggers[0].PriorStages = []string{"lukewarm"}
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStageNotFound)
	})

	t.Run("empty prior stage denotes unseeded and is accepted", func(t *testing.T) {
		cfg := validConfig()
		require.NoError(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("set_stage to unknown stage", func(t *testing.T) {
		cfg := validConfig()
		primary := cfg.Funnels.Funnel("primary")
		primary.Triggers[0].Actions = []*ActionConfig{
			{Kind: "set_stage", Stage: "lukewarm"},
		}
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStageNotFound)
	})

	t.Run("schedule with bad delay", func(t *testing.T) {
		cfg := validConfig()
		primary := cfg.Funnels.Funnel("primary")
		primary.Triggers[0].Actions = []*ActionConfig{
			{Kind: "schedule", Key: "followup", Delay: "half an hour"},
		}
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid delay")
	})

	t.Run("unknown action kind", func(t *testing.T) {
		cfg := validConfig()
		primary := cfg.Funnels.Funnel("primary")
		primary.Triggers[0].Actions = []*ActionConfig{
			{Kind: "teleport"},
		}
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid action kind")
	})
}

func TestTriggerConflicts(t *testing.T) {
	addTrigger := func(cfg *Config, trig *TriggerConfig) {
		primary := cfg.Funnels.Funnel("primary")
		primary.Triggers = append(primary.Triggers, trig)
	}

	t.Run("identical spec on a shared stage conflicts", func(t *testing.T) {
		cfg := validConfig()
		addTrigger(cfg, &TriggerConfig{
			Name:        "pain_copy",
			PriorStages: []string{"cold", "warm"},
			Match: &KeywordSpecConfig{Any: []string{
				"STOMACH", "digest", "barriga", "dor", "incomoda",
				"belly", "bloat", "pain", "hurt", "bother",
			}},
			Actions: []*ActionConfig{{Kind: "send_text", Text: "x"}},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTriggerConflict)
	})

	t.Run("same spec on disjoint stages does not conflict", func(t *testing.T) {
		cfg := validConfig()
		addTrigger(cfg, &TriggerConfig{
			Name:        "pain_later",
			PriorStages: []string{"hot"},
			Match: &KeywordSpecConfig{Any: []string{
				"belly", "bloat", "pain", "hurt", "bother",
				"digest", "stomach", "barriga", "dor", "incomoda",
			}},
			Actions: []*ActionConfig{{Kind: "send_text", Text: "x"}},
		})
		require.NoError(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("overlapping but distinct specs are deliberate shadowing", func(t *testing.T) {
		cfg := validConfig()
		addTrigger(cfg, &TriggerConfig{
			Name:        "pain_narrow",
			PriorStages: []string{"cold"},
			Match:       &KeywordSpecConfig{Any: []string{"belly", "bloat"}},
			Actions:     []*ActionConfig{{Kind: "send_text", Text: "x"}},
		})
		require.NoError(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("two unconditional triggers on the unseeded stage conflict", func(t *testing.T) {
		cfg := validConfig()
		addTrigger(cfg, &TriggerConfig{
			Name:        "entry_copy",
			PriorStages: []string{""},
			Actions:     []*ActionConfig{{Kind: "set_stage", Stage: "cold"}},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTriggerConflict)
	})
}

func TestValidateDetection(t *testing.T) {
	t.Run("rule routing to unknown funnel", func(t *testing.T) {
		cfg := validConfig()
		cfg.Funnels.Detection.Campaigns = append(cfg.Funnels.Detection.Campaigns,
			&DetectRule{Keywords: []string{"vip"}, Funnel: "nope"})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not defined")
	})

	t.Run("rule without keywords", func(t *testing.T) {
		cfg := validConfig()
		cfg.Funnels.Detection.Products = append(cfg.Funnels.Detection.Products,
			&DetectRule{Funnel: "primary"})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "keyword")
	})

	// A funnel with no trigger on the unseeded stage: its threads can
	// only enter through an explicit initial_stage.
	addVIPFunnel := func(cfg *Config) {
		cfg.Funnels.Funnels["vip"] = &FunnelConfig{
			Type: "sales",
			Stages: []*StageConfig{
				{ID: "offer", Order: 1},
				{ID: "customer", Order: 2},
			},
			Triggers: []*TriggerConfig{{
				Name:        "accept",
				PriorStages: []string{"offer"},
				Match:       &KeywordSpecConfig{Any: []string{"yes"}},
				Actions:     []*ActionConfig{{Kind: "send_text", Text: "great"}},
			}},
		}
	}

	t.Run("rule funnel without entry trigger needs initial_stage", func(t *testing.T) {
		cfg := validConfig()
		addVIPFunnel(cfg)
		cfg.Funnels.Detection.Campaigns = append(cfg.Funnels.Detection.Campaigns,
			&DetectRule{Keywords: []string{"vip"}, Funnel: "vip", Source: "campaign"})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "initial_stage")
	})

	t.Run("initial_stage satisfies a funnel without entry trigger", func(t *testing.T) {
		cfg := validConfig()
		addVIPFunnel(cfg)
		cfg.Funnels.Detection.Campaigns = append(cfg.Funnels.Detection.Campaigns,
			&DetectRule{Keywords: []string{"vip"}, Funnel: "vip", Source: "campaign", InitialStage: "offer"})
		require.NoError(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("initial_stage must be a stage of the rule's funnel", func(t *testing.T) {
		cfg := validConfig()
		addVIPFunnel(cfg)
		cfg.Funnels.Detection.Campaigns = append(cfg.Funnels.Detection.Campaigns,
			&DetectRule{Keywords: []string{"vip"}, Funnel: "vip", Source: "campaign", InitialStage: "platinum"})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStageNotFound)
	})

	t.Run("default funnel must be enterable from the unseeded stage", func(t *testing.T) {
		cfg := validConfig()
		primary := cfg.Funnels.Funnel("primary")
		kept := primary.Triggers[:0]
		for _, trig := range primary.Triggers {
			if trig.Name != "entry" {
				kept = append(kept, trig)
			}
		}
		primary.Triggers = kept
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unseeded")
	})
}

func TestValidateActionLists(t *testing.T) {
	t.Run("empty cart recovery list", func(t *testing.T) {
		cfg := validConfig()
		cfg.Funnels.CartRecovery = nil
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cart_recovery")
	})

	t.Run("post purchase referencing unknown stage", func(t *testing.T) {
		cfg := validConfig()
		cfg.Funnels.PostPurchase = append(cfg.Funnels.PostPurchase,
			&ActionConfig{Kind: "set_stage", Stage: "vip"})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStageNotFound)
	})
}
