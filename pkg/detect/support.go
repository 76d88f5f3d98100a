package detect

import "github.com/leadflowhq/leadflow/pkg/config"

// SupportDetector recognizes support intent in inbound text: account
// trouble, billing disputes, cancellation. False positives are acceptable
// because the outcome is a human looking at the thread.
type SupportDetector struct {
	markers []string
}

// NewSupportDetector builds a detector from the builtin lexicon plus any
// deployment-specific markers.
func NewSupportDetector(extra []string) *SupportDetector {
	builtin := config.GetBuiltinConfig().SupportLexicon
	markers := make([]string, 0, len(builtin)+len(extra))
	markers = append(markers, builtin...)
	markers = append(markers, extra...)
	return &SupportDetector{markers: markers}
}

// IsSupport reports whether the text reads as a support request.
func (d *SupportDetector) IsSupport(text string) bool {
	normText := Normalize(text)
	if normText == "" {
		return false
	}
	for _, marker := range d.markers {
		if ContainsKeyword(normText, marker) {
			return true
		}
	}
	return false
}
