package config

import "time"

// DefaultMessengerConfig returns messenger defaults (credentials must come
// from YAML or environment).
func DefaultMessengerConfig() *MessengerConfig {
	return &MessengerConfig{
		Timeout: 10 * time.Second,
	}
}

// DefaultLLMConfig returns the LLM client defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Model:             "gpt-4o-mini",
		HistoryWindow:     20,
		RequestsPerMinute: 60,
		Burst:             5,
		MaxAttempts:       2,
		RetryDelay:        500 * time.Millisecond,
		Timeout:           30 * time.Second,
		SystemPrompt: "You are a friendly sales assistant for a wellness program. " +
			"Answer briefly and warmly. If the contact asks about plans or pricing, " +
			"steer them toward choosing a plan.",
		FallbackText: "Sorry, I didn't quite get that — could you say it another way?",
	}
}

// DefaultSchedulerConfig returns the follow-up scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		TickInterval:      10 * time.Second,
		JobLease:          60 * time.Second,
		CartRecoveryDelay: 30 * time.Minute,
		BatchSize:         20,
	}
}

// DefaultRetentionConfig returns the cleanup-loop defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		DedupeWindow:    48 * time.Hour,
		JobRetention:    7 * 24 * time.Hour,
		EventTTL:        24 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
}

// DefaultBillingConfig returns billing webhook defaults (the secret must
// come from YAML or environment).
func DefaultBillingConfig() *BillingConfig {
	return &BillingConfig{
		Source: "billing",
	}
}

// DefaultMaskingConfig returns masking defaults: enabled, payment +
// security groups.
func DefaultMaskingConfig() *MaskingConfig {
	return &MaskingConfig{
		Enabled: true,
		Groups:  []string{"payment", "security"},
	}
}

// DefaultSlackConfig returns Slack notification defaults (disabled).
func DefaultSlackConfig() *SlackConfig {
	return &SlackConfig{
		Enabled:  false,
		TokenEnv: "SLACK_BOT_TOKEN",
	}
}
