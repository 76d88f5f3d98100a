package dispatch

import (
	"fmt"
	"strings"
)

// NormalizePhone converts a provider-addressed phone into E.164: the
// channel prefix ("whatsapp:") is stripped, separators are removed, and
// a leading + is enforced. Returns an error when no digits remain.
func NormalizePhone(raw string) (string, error) {
	s := raw
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		s = s[idx+1:]
	}

	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return "", fmt.Errorf("phone %q has no digits", raw)
	}
	return "+" + digits.String(), nil
}
