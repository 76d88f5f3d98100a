package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// ConfigValidator validates configuration comprehensively with clear error
// messages. Trigger conflicts, dangling asset references, and unreachable
// stages are all rejected here, before anything starts: a bad funnel
// definition must never become a runtime ambiguity.
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast, stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateSystem(); err != nil {
		return fmt.Errorf("system validation failed: %w", err)
	}
	if err := v.validateAssets(); err != nil {
		return fmt.Errorf("asset validation failed: %w", err)
	}
	if err := v.validateFunnels(); err != nil {
		return fmt.Errorf("funnel validation failed: %w", err)
	}
	if err := v.validateDetection(); err != nil {
		return fmt.Errorf("detection validation failed: %w", err)
	}
	if err := v.validateActionLists(); err != nil {
		return fmt.Errorf("action list validation failed: %w", err)
	}
	return nil
}

func (v *ConfigValidator) validateSystem() error {
	if v.cfg.PublicBaseURL == "" {
		return NewValidationError("system", "public_base_url", "", ErrMissingRequiredField)
	}
	if v.cfg.Billing.WebhookSecret == "" {
		return NewValidationError("billing", "webhook_secret", "", ErrMissingRequiredField)
	}
	if v.cfg.LLM.HistoryWindow < 1 {
		return NewValidationError("llm", "history_window", "", fmt.Errorf("must be at least 1"))
	}
	if v.cfg.Scheduler.TickInterval < time.Second {
		return NewValidationError("scheduler", "tick_interval", "", fmt.Errorf("must be at least 1s"))
	}
	if v.cfg.Scheduler.JobLease < v.cfg.Scheduler.TickInterval {
		return NewValidationError("scheduler", "job_lease", "", fmt.Errorf("must be at least the tick interval"))
	}
	return nil
}

func (v *ConfigValidator) validateAssets() error {
	fc := v.cfg.Funnels
	for id, asset := range fc.Assets {
		switch asset.Kind {
		case "audio", "image":
			if asset.Path == "" {
				return NewValidationError("asset", id, "path", ErrMissingRequiredField)
			}
			if !strings.HasPrefix(asset.Path, "/") {
				return NewValidationError("asset", id, "path", fmt.Errorf("must be an absolute media path"))
			}
		case "text":
			if asset.Template == "" {
				return NewValidationError("asset", id, "template", ErrMissingRequiredField)
			}
			if asset.Link != "" {
				if _, ok := fc.Links[asset.Link]; !ok {
					return NewValidationError("asset", id, "link", fmt.Errorf("link '%s' not defined", asset.Link))
				}
			}
		default:
			return NewValidationError("asset", id, "kind", fmt.Errorf("invalid kind: %s", asset.Kind))
		}
	}

	for alias, target := range fc.Aliases {
		if _, ok := fc.Assets[target]; !ok {
			return NewValidationError("alias", alias, "", fmt.Errorf("%w: %s", ErrAssetNotFound, target))
		}
	}

	if fc.HandoffAsset != "" {
		if err := v.checkAssetRef(fc.HandoffAsset); err != nil {
			return NewValidationError("funnels", "handoff_asset", "", err)
		}
	}
	return nil
}

func (v *ConfigValidator) validateFunnels() error {
	fc := v.cfg.Funnels
	if len(fc.Funnels) == 0 {
		return NewValidationError("funnels", "funnels", "", fmt.Errorf("at least one funnel required"))
	}
	if _, ok := fc.Funnels[fc.DefaultFunnel]; !ok {
		return NewValidationError("funnels", "default_funnel", "", fmt.Errorf("funnel '%s' not defined", fc.DefaultFunnel))
	}

	for funnelID, funnel := range fc.Funnels {
		if len(funnel.Stages) == 0 {
			return NewValidationError("funnel", funnelID, "stages", fmt.Errorf("at least one stage required"))
		}

		stageIDs := make(map[string]bool, len(funnel.Stages))
		for _, stage := range funnel.Stages {
			if stage.ID == "" {
				return NewValidationError("funnel", funnelID, "stages", fmt.Errorf("stage with empty id"))
			}
			if stageIDs[stage.ID] {
				return NewValidationError("funnel", funnelID, "stages", fmt.Errorf("duplicate stage id: %s", stage.ID))
			}
			stageIDs[stage.ID] = true
		}

		// Triggers: stage references, action references, conflicts.
		for i, trig := range funnel.Triggers {
			name := trig.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			if len(trig.PriorStages) == 0 {
				return NewValidationError("trigger", name, "prior_stages", fmt.Errorf("at least one prior stage required"))
			}
			for _, prior := range trig.PriorStages {
				// "" is the unseeded pre-entry stage.
				if prior != "" && !stageIDs[prior] {
					return NewValidationError("trigger", name, "prior_stages", fmt.Errorf("%w: %s", ErrStageNotFound, prior))
				}
			}
			if len(trig.Actions) == 0 {
				return NewValidationError("trigger", name, "actions", fmt.Errorf("at least one action required"))
			}
			if err := v.validateActions(trig.Actions, stageIDs); err != nil {
				return NewValidationError("trigger", name, "actions", err)
			}
		}

		// Two triggers conflict when they share a prior stage and have an
		// identical normalized keyword spec: there would be no way to pick
		// a winner other than list position, and the position would be an
		// accident rather than intent. Overlap alone (specific before
		// general) is deliberate shadowing and allowed.
		for i := 0; i < len(funnel.Triggers); i++ {
			for j := i + 1; j < len(funnel.Triggers); j++ {
				a, b := funnel.Triggers[i], funnel.Triggers[j]
				if sharesStage(a.PriorStages, b.PriorStages) && sameKeywordSpec(a.Match, b.Match) {
					return NewValidationError("funnel", funnelID, "triggers",
						fmt.Errorf("%w: '%s' and '%s' share a prior stage and an identical keyword spec",
							ErrTriggerConflict, a.Name, b.Name))
				}
			}
		}
	}
	return nil
}

func (v *ConfigValidator) validateActions(actions []*ActionConfig, stageIDs map[string]bool) error {
	for _, a := range actions {
		switch a.Kind {
		case "send_audio":
			if err := v.checkAssetRef(a.Asset); err != nil {
				return err
			}
		case "send_image_sequence":
			if len(a.Assets) == 0 {
				return fmt.Errorf("send_image_sequence: at least one asset required")
			}
			for _, id := range a.Assets {
				if err := v.checkAssetRef(id); err != nil {
					return err
				}
			}
		case "send_text":
			if a.Text == "" && a.Template == "" {
				return fmt.Errorf("send_text: either text or template required")
			}
			if a.Template != "" {
				if err := v.checkAssetRef(a.Template); err != nil {
					return err
				}
			}
		case "set_stage":
			if a.Stage == "" {
				return fmt.Errorf("set_stage: stage required")
			}
			if stageIDs != nil && !stageIDs[a.Stage] {
				return fmt.Errorf("set_stage: %w: %s", ErrStageNotFound, a.Stage)
			}
		case "schedule":
			if a.Key == "" {
				return fmt.Errorf("schedule: key required")
			}
			if a.Delay != "" {
				if _, err := time.ParseDuration(a.Delay); err != nil {
					return fmt.Errorf("schedule: invalid delay '%s': %w", a.Delay, err)
				}
			}
			// Empty nested actions fall back to the cart_recovery list.
			if len(a.Actions) > 0 {
				if err := v.validateActions(a.Actions, stageIDs); err != nil {
					return err
				}
			}
		case "cancel":
			if a.Prefix == "" {
				return fmt.Errorf("cancel: prefix required")
			}
		default:
			return fmt.Errorf("invalid action kind: %s", a.Kind)
		}
	}
	return nil
}

// validateActionLists validates the standalone post-purchase and
// cart-recovery action lists against the default funnel's stage set.
func (v *ConfigValidator) validateActionLists() error {
	fc := v.cfg.Funnels
	def := fc.Funnels[fc.DefaultFunnel]
	stageIDs := make(map[string]bool, len(def.Stages))
	for _, s := range def.Stages {
		stageIDs[s.ID] = true
	}

	if err := v.validateActions(fc.PostPurchase, stageIDs); err != nil {
		return NewValidationError("funnels", "post_purchase", "", err)
	}
	if len(fc.CartRecovery) == 0 {
		return NewValidationError("funnels", "cart_recovery", "", fmt.Errorf("at least one action required"))
	}
	if err := v.validateActions(fc.CartRecovery, stageIDs); err != nil {
		return NewValidationError("funnels", "cart_recovery", "", err)
	}
	return nil
}

func (v *ConfigValidator) validateDetection() error {
	fc := v.cfg.Funnels

	// Every thread enters through detection, so every detectable funnel
	// needs a way off the unseeded stage: an entry trigger from "" or an
	// initial_stage on the routing rule. Without one its threads would
	// never match a trigger.
	if def := fc.Funnels[fc.DefaultFunnel]; def != nil && !hasUnseededEntry(def) {
		return NewValidationError("detection", fc.DefaultFunnel, "funnel",
			fmt.Errorf("default funnel has no trigger firing from the unseeded stage"))
	}
	if fc.Detection == nil {
		return nil
	}

	rules := append(append([]*DetectRule{}, fc.Detection.Campaigns...), fc.Detection.Products...)
	for _, rule := range rules {
		if len(rule.Keywords) == 0 {
			return NewValidationError("detection", rule.Funnel, "keywords", fmt.Errorf("at least one keyword required"))
		}
		target, ok := fc.Funnels[rule.Funnel]
		if !ok {
			return NewValidationError("detection", rule.Funnel, "funnel", fmt.Errorf("funnel '%s' not defined", rule.Funnel))
		}
		if rule.InitialStage != "" {
			if target.Stage(rule.InitialStage) == nil {
				return NewValidationError("detection", rule.Funnel, "initial_stage",
					fmt.Errorf("%w: %s", ErrStageNotFound, rule.InitialStage))
			}
		} else if !hasUnseededEntry(target) {
			return NewValidationError("detection", rule.Funnel, "initial_stage",
				fmt.Errorf("funnel '%s' has no trigger firing from the unseeded stage; rule needs initial_stage", rule.Funnel))
		}
	}
	for _, tag := range fc.Detection.Tags {
		if tag.Tag == "" || len(tag.Keywords) == 0 {
			return NewValidationError("detection", tag.Tag, "tags", fmt.Errorf("tag and keywords required"))
		}
	}
	return nil
}

// hasUnseededEntry reports whether some trigger fires from the unseeded
// pre-entry stage "".
func hasUnseededEntry(f *FunnelConfig) bool {
	for _, trig := range f.Triggers {
		if slices.Contains(trig.PriorStages, "") {
			return true
		}
	}
	return false
}

func (v *ConfigValidator) checkAssetRef(id string) error {
	fc := v.cfg.Funnels
	if _, ok := fc.Assets[id]; ok {
		return nil
	}
	if target, ok := fc.Aliases[id]; ok {
		if _, ok := fc.Assets[target]; ok {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrAssetNotFound, id)
}

func sharesStage(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// sameKeywordSpec compares two specs after normalization (lowercase,
// trimmed, order-insensitive).
func sameKeywordSpec(a, b *KeywordSpecConfig) bool {
	return normalizeSpecKey(a) == normalizeSpecKey(b)
}

func normalizeSpecKey(k *KeywordSpecConfig) string {
	if k.Empty() {
		return ""
	}
	norm := func(words []string) string {
		out := make([]string, 0, len(words))
		for _, w := range words {
			out = append(out, strings.ToLower(strings.TrimSpace(w)))
		}
		slices.Sort(out)
		return strings.Join(out, ",")
	}
	return "any=" + norm(k.Any) + ";all=" + norm(k.All) + ";not=" + norm(k.Forbidden)
}
