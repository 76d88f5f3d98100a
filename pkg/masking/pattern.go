package masking

import (
	"fmt"
	"regexp"

	"github.com/leadflowhq/leadflow/pkg/config"
)

// CompiledPattern is a masking pattern ready for application.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// compilePattern compiles a single pattern definition. Invalid regexes are
// a configuration error surfaced at startup.
func compilePattern(p config.PatternConfig) (*CompiledPattern, error) {
	re, err := regexp.Compile(p.Pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %q does not compile: %w", p.Name, err)
	}
	return &CompiledPattern{
		Name:        p.Name,
		Regex:       re,
		Replacement: p.Replacement,
	}, nil
}
