// Package config loads, merges, and validates the leadflow configuration:
// system settings from leadflow.yaml and the funnel definition from
// funnels.yaml, both layered over builtin defaults.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// LeadflowYAMLConfig represents the complete leadflow.yaml file structure.
type LeadflowYAMLConfig struct {
	System    *SystemYAMLConfig `yaml:"system"`
	Messenger *MessengerConfig  `yaml:"messenger"`
	Billing   *BillingConfig    `yaml:"billing"`
	LLM       *LLMConfig        `yaml:"llm"`
	Scheduler *SchedulerConfig  `yaml:"scheduler"`
	Retention *RetentionConfig  `yaml:"retention"`
	Masking   *MaskingConfig    `yaml:"masking"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	PublicBaseURL    string       `yaml:"public_base_url"`
	DashboardURL     string       `yaml:"dashboard_url"`
	AllowedWSOrigins []string     `yaml:"allowed_ws_origins"`
	Slack            *SlackConfig `yaml:"slack"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load leadflow.yaml and funnels.yaml from configDir
//  2. Expand environment variables ({{.VAR}} templates)
//  3. Merge builtin defaults under user values
//  4. Validate everything (trigger conflicts are fatal here)
//  5. Return the immutable Config
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := NewValidator(cfg).ValidateAll(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	funnel := cfg.Funnels
	log.Info("Configuration initialized successfully",
		"funnels", len(funnel.Funnels),
		"assets", len(funnel.Assets),
		"default_funnel", funnel.DefaultFunnel)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	// 1. leadflow.yaml is required.
	var system LeadflowYAMLConfig
	if err := loader.loadYAML("leadflow.yaml", &system); err != nil {
		return nil, NewLoadError("leadflow.yaml", err)
	}

	// 2. funnels.yaml is optional: the builtin funnel definition is a
	// complete deployment on its own.
	userFunnels := &FunnelsConfig{}
	if err := loader.loadYAML("funnels.yaml", userFunnels); err != nil {
		if !errors.Is(err, ErrConfigNotFound) {
			return nil, NewLoadError("funnels.yaml", err)
		}
		userFunnels = nil
	}

	builtin := GetBuiltinConfig()
	funnels := mergeFunnels(builtin.Funnels, userFunnels)

	cfg := &Config{
		configDir: configDir,
		Messenger: resolveSection(system.Messenger, DefaultMessengerConfig()),
		Billing:   resolveSection(system.Billing, DefaultBillingConfig()),
		LLM:       resolveSection(system.LLM, DefaultLLMConfig()),
		Scheduler: resolveSection(system.Scheduler, DefaultSchedulerConfig()),
		Retention: resolveSection(system.Retention, DefaultRetentionConfig()),
		Masking:   resolveSection(system.Masking, DefaultMaskingConfig()),
		Slack:     DefaultSlackConfig(),
		Funnels:   funnels,
	}

	if system.System != nil {
		cfg.PublicBaseURL = system.System.PublicBaseURL
		cfg.DashboardURL = system.System.DashboardURL
		cfg.AllowedWSOrigins = system.System.AllowedWSOrigins
		if system.System.Slack != nil {
			cfg.Slack = resolveSection(system.System.Slack, DefaultSlackConfig())
		}
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = os.Getenv("PUBLIC_BASE_URL")
	}
	if cfg.Billing.WebhookSecret == "" {
		cfg.Billing.WebhookSecret = os.Getenv("BILLING_WEBHOOK_SECRET")
	}
	if cfg.DashboardURL == "" {
		cfg.DashboardURL = "http://localhost:5173"
	}

	return cfg, nil
}

// resolveSection merges defaults under the user section: user values win,
// unset fields keep the default.
func resolveSection[T any](user, defaults *T) *T {
	if user == nil {
		return defaults
	}
	// Merge user over defaults so zero-valued user fields keep defaults.
	merged := *defaults
	if err := mergo.Merge(&merged, user, mergo.WithOverride); err != nil {
		slog.Warn("Failed to merge config section, using user values as-is", "error", err)
		return user
	}
	return &merged
}

// mergeFunnels layers the user funnel definition over the builtin one.
// Map entries (funnels, assets, aliases, links) replace by id; list-valued
// settings (detection, post_purchase, cart_recovery) replace wholesale when
// the user provides them.
func mergeFunnels(builtin, user *FunnelsConfig) *FunnelsConfig {
	if user == nil {
		return builtin
	}

	merged := *builtin
	if user.DefaultFunnel != "" {
		merged.DefaultFunnel = user.DefaultFunnel
	}
	if user.HandoffAsset != "" {
		merged.HandoffAsset = user.HandoffAsset
	}
	for id, f := range user.Funnels {
		if merged.Funnels == nil {
			merged.Funnels = make(map[string]*FunnelConfig)
		}
		merged.Funnels[id] = f
	}
	for id, a := range user.Assets {
		merged.Assets[id] = a
	}
	for alias, target := range user.Aliases {
		merged.Aliases[alias] = target
	}
	for name, link := range user.Links {
		merged.Links[name] = link
	}
	if user.Detection != nil {
		merged.Detection = user.Detection
	}
	if len(user.SupportMarkers) > 0 {
		merged.SupportMarkers = user.SupportMarkers
	}
	if len(user.PostPurchase) > 0 {
		merged.PostPurchase = user.PostPurchase
	}
	if len(user.CartRecovery) > 0 {
		merged.CartRecovery = user.CartRecovery
	}

	return &merged
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}
