package funnel

import (
	"encoding/json"
	"fmt"

	"github.com/leadflowhq/leadflow/pkg/config"
)

// Action kinds. Scheduled-job payloads carry serialized actions, so the
// wire names are part of the stored format.
const (
	ActionSendAudio         = "send_audio"
	ActionSendImageSequence = "send_image_sequence"
	ActionSendText          = "send_text"
	ActionSetStage          = "set_stage"
	ActionSchedule          = "schedule"
	ActionCancel            = "cancel"
)

// PayloadKindActionList is the action_kind discriminator for jobs whose
// payload is a serialized action list.
const PayloadKindActionList = "action_list"

// Action is the serializable form of a configured action, used both for
// in-process execution and for scheduled-job payloads.
type Action struct {
	Kind     string    `json:"kind"`
	Asset    string    `json:"asset,omitempty"`
	Assets   []string  `json:"assets,omitempty"`
	Text     string    `json:"text,omitempty"`
	Template string    `json:"template,omitempty"`
	Stage    string    `json:"stage,omitempty"`
	Key      string    `json:"key,omitempty"`
	Delay    string    `json:"delay,omitempty"`
	Actions  []*Action `json:"actions,omitempty"`
	Prefix   string    `json:"prefix,omitempty"`
}

// FromConfig converts configured actions to their serializable form.
func FromConfig(actions []*config.ActionConfig) []*Action {
	out := make([]*Action, 0, len(actions))
	for _, a := range actions {
		out = append(out, &Action{
			Kind:     a.Kind,
			Asset:    a.Asset,
			Assets:   append([]string(nil), a.Assets...),
			Text:     a.Text,
			Template: a.Template,
			Stage:    a.Stage,
			Key:      a.Key,
			Delay:    a.Delay,
			Actions:  FromConfig(a.Actions),
			Prefix:   a.Prefix,
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// EncodePayload serializes an action list into a scheduled-job payload.
func EncodePayload(actions []*Action) (map[string]interface{}, error) {
	data, err := json.Marshal(struct {
		Actions []*Action `json:"actions"`
	}{Actions: actions})
	if err != nil {
		return nil, fmt.Errorf("failed to encode action payload: %w", err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to encode action payload: %w", err)
	}
	return payload, nil
}

// DecodePayload deserializes a scheduled-job payload back into actions.
func DecodePayload(payload map[string]interface{}) ([]*Action, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode action payload: %w", err)
	}
	var decoded struct {
		Actions []*Action `json:"actions"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode action payload: %w", err)
	}
	if len(decoded.Actions) == 0 {
		return nil, fmt.Errorf("action payload has no actions")
	}
	return decoded.Actions, nil
}
