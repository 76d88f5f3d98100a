// Package masking scrubs sensitive data from payloads before they are
// persisted or logged: card numbers and taxpayer ids in billing webhook
// bodies, key and token shapes in logged provider responses.
package masking

import (
	"log/slog"

	"github.com/leadflowhq/leadflow/pkg/config"
)

// Service applies regex masking to payload strings. Created once at
// startup; thread-safe and stateless aside from compiled patterns.
type Service struct {
	enabled  bool
	patterns []*CompiledPattern
	logger   *slog.Logger
}

// NewService compiles the selected builtin pattern groups plus any extra
// patterns from configuration. Invalid extra patterns are logged and
// skipped; invalid builtin patterns cannot happen (covered by tests).
func NewService(cfg *config.MaskingConfig) *Service {
	logger := slog.Default().With("component", "masking")

	s := &Service{
		enabled: cfg != nil && cfg.Enabled,
		logger:  logger,
	}
	if !s.enabled {
		return s
	}

	builtin := config.GetBuiltinConfig()
	selected := make(map[string]bool)
	for _, group := range cfg.Groups {
		names, ok := builtin.PatternGroups[group]
		if !ok {
			logger.Warn("Unknown masking pattern group, skipping", "group", group)
			continue
		}
		for _, name := range names {
			selected[name] = true
		}
	}

	for name := range selected {
		p, ok := builtin.MaskingPatterns[name]
		if !ok {
			continue
		}
		compiled, err := compilePattern(p)
		if err != nil {
			logger.Warn("Builtin masking pattern skipped", "pattern", name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, compiled)
	}

	for _, p := range cfg.ExtraPatterns {
		compiled, err := compilePattern(p)
		if err != nil {
			logger.Warn("Extra masking pattern skipped", "pattern", p.Name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, compiled)
	}

	logger.Info("Masking service initialized",
		"enabled", s.enabled,
		"patterns", len(s.patterns))
	return s
}

// MaskPayload applies all patterns to a payload string. Fail-open: a
// disabled or empty service returns the input unchanged. Nil-safe.
func (s *Service) MaskPayload(data string) string {
	if s == nil || !s.enabled || data == "" {
		return data
	}
	masked := data
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}
