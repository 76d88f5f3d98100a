package config

import "time"

// Config is the immutable, validated runtime configuration. Built once by
// Initialize and shared by every component.
type Config struct {
	configDir string

	// PublicBaseURL is the externally reachable base for media URLs handed
	// to the messaging provider (e.g. https://leadflow.example.com).
	PublicBaseURL string

	DashboardURL     string
	AllowedWSOrigins []string

	Messenger *MessengerConfig
	Billing   *BillingConfig
	LLM       *LLMConfig
	Scheduler *SchedulerConfig
	Retention *RetentionConfig
	Slack     *SlackConfig
	Masking   *MaskingConfig

	// Funnels is the merged funnel definition: funnels, stages, triggers,
	// assets, detection rules. Never mutated after Initialize.
	Funnels *FunnelsConfig
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// MessengerConfig holds the outbound messaging provider credentials.
type MessengerConfig struct {
	AccountID string `yaml:"account_id"`
	AuthToken string `yaml:"auth_token"`
	// FromNumber is the channel-prefixed sender, e.g. "whatsapp:+14155238886".
	FromNumber string `yaml:"from_number"`
	// APIBaseURL overrides the provider API endpoint (tests point it at an
	// httptest server).
	APIBaseURL string        `yaml:"api_base_url"`
	Timeout    time.Duration `yaml:"timeout"`
}

// BillingConfig holds billing-platform webhook settings.
type BillingConfig struct {
	// WebhookSecret is the HMAC-SHA256 key shared with the billing platform.
	WebhookSecret string `yaml:"webhook_secret"`
	// Source identifies the platform in persisted SalesEvents.
	Source string `yaml:"source"`
}

// LLMConfig holds the generative-backend settings.
type LLMConfig struct {
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	// SystemPrompt is constant per deployment.
	SystemPrompt string `yaml:"system_prompt"`
	// FallbackText is sent when the backend is unavailable or returns
	// something unusable. Sending it never mutates stage.
	FallbackText string `yaml:"fallback_text"`
	// HistoryWindow bounds the number of recent messages sent per request.
	HistoryWindow int `yaml:"history_window"`
	// RequestsPerMinute and Burst configure the token-bucket limiter.
	RequestsPerMinute float64       `yaml:"requests_per_minute"`
	Burst             int           `yaml:"burst"`
	MaxAttempts       int           `yaml:"max_attempts"`
	RetryDelay        time.Duration `yaml:"retry_delay"`
	Timeout           time.Duration `yaml:"timeout"`
}

// SchedulerConfig holds the follow-up scheduler settings.
type SchedulerConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	// JobLease bounds how long a leased job stays invisible to other
	// workers; an expired lease makes the job eligible for re-lease.
	JobLease time.Duration `yaml:"job_lease"`
	// CartRecoveryDelay is how long a hot lead may stay silent after a
	// checkout link before the recovery follow-up fires.
	CartRecoveryDelay time.Duration `yaml:"cart_recovery_delay"`
	// BatchSize caps jobs leased per tick.
	BatchSize int `yaml:"batch_size"`
}

// RetentionConfig holds data-retention settings for the cleanup loop.
type RetentionConfig struct {
	// DedupeWindow is how long inbound-event dedupe rows are kept.
	DedupeWindow time.Duration `yaml:"dedupe_window"`
	// JobRetention is how long terminal scheduled jobs are kept.
	JobRetention time.Duration `yaml:"job_retention"`
	// EventTTL is how long operator-stream outbox rows are kept.
	EventTTL        time.Duration `yaml:"event_ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// SlackConfig holds operator-notification settings.
type SlackConfig struct {
	Enabled  bool   `yaml:"enabled"`
	TokenEnv string `yaml:"token_env"`
	Channel  string `yaml:"channel"`
}

// MaskingConfig holds sensitive-data masking settings for persisted
// billing payloads and logged provider bodies.
type MaskingConfig struct {
	Enabled bool `yaml:"enabled"`
	// Groups selects builtin pattern groups (e.g. "payment", "security").
	Groups []string `yaml:"groups"`
	// ExtraPatterns are additional regex patterns compiled at startup.
	ExtraPatterns []PatternConfig `yaml:"extra_patterns"`
}

// PatternConfig is a single masking pattern definition.
type PatternConfig struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description,omitempty"`
}
