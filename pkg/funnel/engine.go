// Package funnel implements the deterministic trigger engine: matching
// inbound text against the active funnel's triggers and checking stage
// transition legality.
package funnel

import (
	"slices"

	"github.com/leadflowhq/leadflow/pkg/config"
	"github.com/leadflowhq/leadflow/pkg/detect"
)

// TriggerMatch is a winning trigger for one inbound message.
type TriggerMatch struct {
	FunnelID string
	Trigger  *config.TriggerConfig
}

// PurchaseStage is the stage a verified sale.approved event moves a
// thread to, regardless of where the conversation stands.
const PurchaseStage = "customer"

// Engine evaluates triggers against (stage, text) pairs. Matching is
// pure: no I/O, no clock, no state. Trigger order within a funnel is the
// precedence order, which the config validator guarantees is unambiguous.
type Engine struct {
	funnels *config.FunnelsConfig
	// successors is the derived stage machine per funnel: from → set of
	// stages some trigger, scheduled follow-up, or the purchase path can
	// move the thread to.
	successors map[string]map[string]map[string]bool
}

// NewEngine creates an engine over the validated funnel definition.
func NewEngine(fc *config.FunnelsConfig) *Engine {
	return &Engine{funnels: fc, successors: buildSuccessors(fc)}
}

// Match finds the first trigger of the thread's funnel whose prior-stage
// set contains stage and whose keyword spec matches text. stage "" is
// the unseeded pre-entry stage. Returns (nil, false) when nothing
// matches, which routes the message to the generative fallback.
func (e *Engine) Match(funnelID, stage, text string) (*TriggerMatch, bool) {
	funnel := e.funnels.Funnel(funnelID)
	if funnel == nil {
		return nil, false
	}

	normText := detect.Normalize(text)
	for _, trig := range funnel.Triggers {
		if !slices.Contains(trig.PriorStages, stage) {
			continue
		}
		if !matchSpec(trig.Match, normText) {
			continue
		}
		return &TriggerMatch{FunnelID: funnelID, Trigger: trig}, true
	}
	return nil, false
}

// CanTransition reports whether to is a legal successor of from in the
// given funnel: some trigger firing from from sets it, a follow-up
// scheduled by such a trigger sets it, or the purchase path reaches it.
// Gates stage suggestions from the generative backend; operator
// overrides use HasStage instead and may skip stages.
func (e *Engine) CanTransition(funnelID, from, to string) bool {
	funnel := e.funnels.Funnel(funnelID)
	if funnel == nil || to == "" || funnel.Stage(to) == nil {
		return false
	}
	if from == to {
		// Restating the current stage is a no-op downstream.
		return true
	}
	return e.successors[funnelID][from][to]
}

// HasStage reports whether the funnel defines the stage. The unseeded
// stage "" is not a defined stage.
func (e *Engine) HasStage(funnelID, stage string) bool {
	funnel := e.funnels.Funnel(funnelID)
	return funnel != nil && stage != "" && funnel.Stage(stage) != nil
}

// buildSuccessors derives each funnel's edge set from its triggers. A
// trigger contributes prior → set_stage edges; its scheduled follow-ups
// contribute edges out of the stage the thread is in once the trigger
// completed; stages that arm a recovery follow-up are checkout stages
// and additionally advance to PurchaseStage on the billing webhook.
func buildSuccessors(fc *config.FunnelsConfig) map[string]map[string]map[string]bool {
	all := make(map[string]map[string]map[string]bool, len(fc.Funnels))
	for id, f := range fc.Funnels {
		edges := map[string]map[string]bool{}
		add := func(from, to string) {
			if to == "" || f.Stage(to) == nil {
				return
			}
			if edges[from] == nil {
				edges[from] = map[string]bool{}
			}
			edges[from][to] = true
		}

		for _, trig := range f.Triggers {
			post := ""
			var followups [][]*config.ActionConfig
			for _, a := range trig.Actions {
				switch a.Kind {
				case "set_stage":
					post = a.Stage
				case "schedule":
					list := a.Actions
					if len(list) == 0 {
						list = fc.CartRecovery
					}
					followups = append(followups, list)
				}
			}

			origins := trig.PriorStages
			if post != "" {
				for _, prior := range trig.PriorStages {
					add(prior, post)
				}
				// Follow-ups fire after the trigger completed, from its
				// target stage.
				origins = []string{post}
			}
			for _, list := range followups {
				for _, origin := range origins {
					for _, a := range list {
						if a.Kind == "set_stage" {
							add(origin, a.Stage)
						}
					}
					add(origin, PurchaseStage)
				}
			}
		}

		// A thread parked by the recovery follow-up still converts when
		// the sale lands late.
		for _, a := range fc.CartRecovery {
			if a.Kind == "set_stage" {
				add(a.Stage, PurchaseStage)
			}
		}
		all[id] = edges
	}
	return all
}

// Stages returns the ordered stage ids of a funnel.
func (e *Engine) Stages(funnelID string) []string {
	funnel := e.funnels.Funnel(funnelID)
	if funnel == nil {
		return nil
	}
	ids := make([]string, 0, len(funnel.Stages))
	for _, s := range funnel.Stages {
		ids = append(ids, s.ID)
	}
	return ids
}

// matchSpec evaluates a keyword spec against normalized text: OR over
// Any, AND over All, NOT over Forbidden. A nil or empty spec matches
// unconditionally.
func matchSpec(spec *config.KeywordSpecConfig, normText string) bool {
	if spec.Empty() {
		return true
	}

	for _, kw := range spec.Forbidden {
		if detect.ContainsKeyword(normText, kw) {
			return false
		}
	}
	for _, kw := range spec.All {
		if !detect.ContainsKeyword(normText, kw) {
			return false
		}
	}
	if len(spec.Any) > 0 {
		for _, kw := range spec.Any {
			if detect.ContainsKeyword(normText, kw) {
				return true
			}
		}
		return false
	}
	return true
}
