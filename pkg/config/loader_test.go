package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalLeadflowYAML = `
system:
  public_base_url: "https://leadflow.example.com"
messenger:
  account_id: "AC123"
  auth_token: "token"
  from_number: "whatsapp:+14155238886"
billing:
  webhook_secret: "billing-secret"
`

func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestInitialize(t *testing.T) {
	t.Run("minimal config falls back to builtin funnels", func(t *testing.T) {
		dir := writeConfigDir(t, map[string]string{
			"leadflow.yaml": minimalLeadflowYAML,
		})

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, "https://leadflow.example.com", cfg.PublicBaseURL)
		assert.Equal(t, "billing-secret", cfg.Billing.WebhookSecret)
		assert.Equal(t, "primary", cfg.Funnels.DefaultFunnel)
		require.NotNil(t, cfg.Funnels.Funnel("primary"))
		assert.Len(t, cfg.Funnels.Funnel("primary").Stages, 6)

		// Defaults survive the merge.
		assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
		assert.Equal(t, 20, cfg.LLM.HistoryWindow)
		assert.Equal(t, 10*time.Second, cfg.Scheduler.TickInterval)
		assert.Equal(t, 30*time.Minute, cfg.Scheduler.CartRecoveryDelay)
		assert.Equal(t, 48*time.Hour, cfg.Retention.DedupeWindow)
	})

	t.Run("user values override section defaults without clearing the rest", func(t *testing.T) {
		dir := writeConfigDir(t, map[string]string{
			"leadflow.yaml": minimalLeadflowYAML + `
llm:
  model: "gpt-4o"
  history_window: 6
scheduler:
  cart_recovery_delay: 45m
`,
		})

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, "gpt-4o", cfg.LLM.Model)
		assert.Equal(t, 6, cfg.LLM.HistoryWindow)
		// Unset fields keep defaults.
		assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
		assert.Equal(t, 45*time.Minute, cfg.Scheduler.CartRecoveryDelay)
		assert.Equal(t, 10*time.Second, cfg.Scheduler.TickInterval)
	})

	t.Run("missing leadflow.yaml is an error", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("invalid YAML is an error", func(t *testing.T) {
		dir := writeConfigDir(t, map[string]string{
			"leadflow.yaml": "system: [not: valid",
		})

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("missing webhook secret fails validation", func(t *testing.T) {
		dir := writeConfigDir(t, map[string]string{
			"leadflow.yaml": `
system:
  public_base_url: "https://leadflow.example.com"
`,
		})

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.ErrorIs(t, err, ErrMissingRequiredField)
	})

	t.Run("webhook secret falls back to environment", func(t *testing.T) {
		t.Setenv("BILLING_WEBHOOK_SECRET", "env-secret")
		dir := writeConfigDir(t, map[string]string{
			"leadflow.yaml": `
system:
  public_base_url: "https://leadflow.example.com"
`,
		})

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, "env-secret", cfg.Billing.WebhookSecret)
	})

	t.Run("env template expansion in YAML values", func(t *testing.T) {
		t.Setenv("LLM_API_KEY", "sk-test-value")
		dir := writeConfigDir(t, map[string]string{
			"leadflow.yaml": minimalLeadflowYAML + `
llm:
  api_key: "{{.LLM_API_KEY}}"
`,
		})

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, "sk-test-value", cfg.LLM.APIKey)
	})
}

func TestInitializeFunnelsOverlay(t *testing.T) {
	t.Run("user funnels.yaml replaces funnels by id and keeps builtin assets", func(t *testing.T) {
		dir := writeConfigDir(t, map[string]string{
			"leadflow.yaml": minimalLeadflowYAML,
			"funnels.yaml": `
funnels:
  primary:
    type: sales
    stages:
      - id: cold
        order: 1
      - id: hot
        order: 2
      - id: customer
        order: 3
      - id: cart_recovery
        order: 4
    triggers:
      - name: entry
        prior_stages: [""]
        actions:
          - kind: send_audio
            asset: welcome
          - kind: set_stage
            stage: cold
      - name: buy
        prior_stages: [cold]
        match:
          any: [buy, comprar]
        actions:
          - kind: send_text
            template: checkout_monthly
          - kind: set_stage
            stage: hot
`,
		})

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		primary := cfg.Funnels.Funnel("primary")
		require.NotNil(t, primary)
		assert.Len(t, primary.Stages, 4)
		assert.Len(t, primary.Triggers, 2)
		// Builtin assets remain available to the replacement funnel.
		assert.Contains(t, cfg.Funnels.Assets, "welcome")
		assert.Contains(t, cfg.Funnels.Assets, "checkout_monthly")
	})

	t.Run("user assets merge by id over builtin", func(t *testing.T) {
		dir := writeConfigDir(t, map[string]string{
			"leadflow.yaml": minimalLeadflowYAML,
			"funnels.yaml": `
assets:
  welcome:
    kind: audio
    path: /audios/custom_welcome.opus
  extra_promo:
    kind: text
    template: "Special deal for you, {name}!"
`,
		})

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, "/audios/custom_welcome.opus", cfg.Funnels.Assets["welcome"].Path)
		assert.Contains(t, cfg.Funnels.Assets, "extra_promo")
		// Untouched builtin assets survive.
		assert.Contains(t, cfg.Funnels.Assets, "plans")
	})

	t.Run("dangling asset reference in user funnel is fatal", func(t *testing.T) {
		dir := writeConfigDir(t, map[string]string{
			"leadflow.yaml": minimalLeadflowYAML,
			"funnels.yaml": `
funnels:
  primary:
    type: sales
    stages:
      - id: cold
        order: 1
    triggers:
      - name: entry
        prior_stages: [""]
        actions:
          - kind: send_audio
            asset: does_not_exist
          - kind: set_stage
            stage: cold
`,
		})

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAssetNotFound)
	})

	t.Run("conflicting triggers are fatal", func(t *testing.T) {
		dir := writeConfigDir(t, map[string]string{
			"leadflow.yaml": minimalLeadflowYAML,
			"funnels.yaml": `
funnels:
  primary:
    type: sales
    stages:
      - id: cold
        order: 1
      - id: warm
        order: 2
      - id: cart_recovery
        order: 3
      - id: customer
        order: 4
    triggers:
      - name: first
        prior_stages: [cold]
        match:
          any: [price, cost]
        actions:
          - kind: set_stage
            stage: warm
      - name: second
        prior_stages: [cold]
        match:
          any: [Cost, PRICE]
        actions:
          - kind: send_text
            text: "other"
`,
		})

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTriggerConflict)

		var valErr *ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "funnel", valErr.Component)
	})
}
