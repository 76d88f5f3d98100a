package detect

import "github.com/leadflowhq/leadflow/pkg/config"

// Classification is the funnel detector's verdict on a first message.
// InitialStage is empty when the funnel's own entry trigger performs the
// unseeded transition.
type Classification struct {
	FunnelID     string
	InitialStage string
	Source       string
	Tags         []string
}

// FunnelDetector classifies a thread's first message into a funnel.
// Campaign rules are tried first, then product rules, then the default
// funnel. Tag rules run as a separate multi-match pass.
type FunnelDetector struct {
	rules         *config.DetectionConfig
	defaultFunnel string
}

// NewFunnelDetector builds a detector from the merged funnel definition.
func NewFunnelDetector(fc *config.FunnelsConfig) *FunnelDetector {
	return &FunnelDetector{
		rules:         fc.Detection,
		defaultFunnel: fc.DefaultFunnel,
	}
}

// Detect classifies a first message. It always returns a usable
// classification: when no rule matches, the default funnel with source
// "organic".
func (d *FunnelDetector) Detect(text string) Classification {
	normText := Normalize(text)

	cls := Classification{FunnelID: d.defaultFunnel, Source: "organic"}
	if d.rules != nil {
		if rule := firstMatch(normText, d.rules.Campaigns); rule != nil {
			cls = fromRule(rule)
		} else if rule := firstMatch(normText, d.rules.Products); rule != nil {
			cls = fromRule(rule)
		}

		for _, tag := range d.rules.Tags {
			for _, kw := range tag.Keywords {
				if ContainsKeyword(normText, kw) {
					cls.Tags = appendUnique(cls.Tags, tag.Tag)
					break
				}
			}
		}
	}

	return cls
}

func fromRule(rule *config.DetectRule) Classification {
	return Classification{
		FunnelID:     rule.Funnel,
		InitialStage: rule.InitialStage,
		Source:       rule.Source,
		Tags:         append([]string(nil), rule.Tags...),
	}
}

func firstMatch(normText string, rules []*config.DetectRule) *config.DetectRule {
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if ContainsKeyword(normText, kw) {
				return rule
			}
		}
	}
	return nil
}

func appendUnique(tags []string, tag string) []string {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}
