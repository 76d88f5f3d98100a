package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ResponseType tags the discriminated union of backend outputs.
type ResponseType string

const (
	ResponseText     ResponseType = "text"
	ResponseAudio    ResponseType = "audio"
	ResponseTemplate ResponseType = "template"
)

// Response is the backend's verdict in normalized form. Plain prose is a
// ResponseText; a structured descriptor selects an asset or template and
// may request a stage transition (which the processor only honors when
// legal).
type Response struct {
	Type         ResponseType `json:"response_type"`
	Message      string       `json:"message,omitempty"`
	AssetID      string       `json:"asset_id,omitempty"`
	TemplateCode string       `json:"template_code,omitempty"`
	NextStage    string       `json:"next_stage,omitempty"`
}

// ParseResponse parses raw backend output. If the output embeds a JSON
// object anywhere, that object takes precedence over surrounding prose
// and must be a complete, unambiguous descriptor; partial forms (audio
// without asset_id, template without template_code) are rejected rather
// than guessed at. Output with no embedded JSON is a plain text reply.
func ParseResponse(raw string) (*Response, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty output")
	}

	obj, found := extractJSONObject(raw)
	if !found {
		return &Response{Type: ResponseText, Message: raw}, nil
	}

	var resp Response
	decoder := json.NewDecoder(strings.NewReader(obj))
	if err := decoder.Decode(&resp); err != nil {
		return nil, fmt.Errorf("embedded JSON does not parse: %w", err)
	}

	switch resp.Type {
	case ResponseText:
		if resp.Message == "" {
			return nil, fmt.Errorf("descriptor type %q requires message", resp.Type)
		}
	case ResponseAudio:
		if resp.AssetID == "" {
			return nil, fmt.Errorf("descriptor type %q requires asset_id", resp.Type)
		}
	case ResponseTemplate:
		if resp.TemplateCode == "" {
			return nil, fmt.Errorf("descriptor type %q requires template_code", resp.Type)
		}
	case "":
		return nil, fmt.Errorf("embedded JSON lacks response_type")
	default:
		return nil, fmt.Errorf("unknown response_type %q", resp.Type)
	}

	return &resp, nil
}

// extractJSONObject finds the first balanced top-level JSON object in the
// text, skipping braces inside string literals.
func extractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
