package config

// BuiltinConfig carries definitions compiled into the binary: the default
// funnel, the default asset table, detection rules, the support lexicon,
// and masking patterns. User YAML overrides entries by id.
type BuiltinConfig struct {
	Funnels         *FunnelsConfig
	SupportLexicon  []string
	MaskingPatterns map[string]PatternConfig
	PatternGroups   map[string][]string
}

// GetBuiltinConfig returns the builtin configuration.
// Returns a fresh copy of mutable maps so merge steps never corrupt the
// compiled-in definition.
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		Funnels:         builtinFunnels(),
		SupportLexicon:  append([]string(nil), builtinSupportLexicon...),
		MaskingPatterns: builtinMaskingPatterns(),
		PatternGroups:   builtinPatternGroups(),
	}
}

// builtinSupportLexicon lists markers that route an inbound to human
// handoff. Matching is case- and diacritic-insensitive, so "CANCELAR"
// and "cancelár" both hit "cancelar". False positives are acceptable:
// the detector fails open to a human.
var builtinSupportLexicon = []string{
	"login", "log in", "sign in", "password", "senha",
	"cancel", "cancelar", "cancellation", "cancelamento",
	"refund", "reembolso", "chargeback", "estorno",
	"invoice", "fatura", "billing", "cobranca", "charged twice",
	"error", "erro", "bug", "crash", "not working", "nao funciona",
	"can't access", "cant access", "cannot access", "nao consigo acessar",
	"can't log", "cant log", "nao consigo entrar",
	"account", "conta bloqueada", "locked out",
	"support", "suporte", "atendimento", "help me", "ajuda",
}

func builtinFunnels() *FunnelsConfig {
	return &FunnelsConfig{
		DefaultFunnel: "primary",
		HandoffAsset:  "support_handoff",
		Funnels: map[string]*FunnelConfig{
			"primary": {
				Type: "sales",
				Stages: []*StageConfig{
					{ID: "cold", Order: 1, Phase: "awareness"},
					{ID: "warming", Order: 2, Phase: "pain"},
					{ID: "warm", Order: 3, Phase: "consideration"},
					{ID: "hot", Order: 4, Phase: "decision"},
					{ID: "cart_recovery", Order: 5, Phase: "recovery"},
					{ID: "customer", Order: 6, Phase: "won"},
				},
				Triggers: []*TriggerConfig{
					// Specific triggers come first: declaration order is
					// the precedence order.
					{
						Name:        "pain",
						PriorStages: []string{"cold"},
						Match: &KeywordSpecConfig{
							Any: []string{
								"belly", "bloat", "pain", "hurt", "bother",
								"digest", "stomach", "barriga", "dor", "incomoda",
							},
						},
						Actions: []*ActionConfig{
							{Kind: "send_audio", Asset: "pain_generic"},
							{Kind: "send_image_sequence", Assets: []string{
								"results_1", "results_2", "results_3", "results_4",
								"results_5", "results_6", "results_7", "results_8",
							}},
							{Kind: "send_text", Text: "Tell me what's holding you back"},
							{Kind: "set_stage", Stage: "warming"},
						},
					},
					{
						Name:        "plans_interest",
						PriorStages: []string{"warming", "cold"},
						Match: &KeywordSpecConfig{
							Any: []string{
								"price", "cost", "how much", "plan", "plans",
								"preco", "quanto custa", "valor", "planos",
							},
						},
						Actions: []*ActionConfig{
							{Kind: "send_audio", Asset: "plans"},
							{Kind: "send_text", Template: "plans_description"},
							{Kind: "set_stage", Stage: "warm"},
						},
					},
					{
						Name:        "plan_choice_monthly",
						PriorStages: []string{"warm"},
						Match: &KeywordSpecConfig{
							Any:       []string{"monthly", "month", "mensal"},
							Forbidden: []string{"annual", "yearly", "anual"},
						},
						Actions: []*ActionConfig{
							{Kind: "send_text", Template: "checkout_monthly"},
							{Kind: "set_stage", Stage: "hot"},
							{Kind: "schedule", Key: "cart_recovery_30m"},
						},
					},
					{
						Name:        "plan_choice_annual",
						PriorStages: []string{"warm"},
						Match: &KeywordSpecConfig{
							Any: []string{"annual", "yearly", "anual", "year"},
						},
						Actions: []*ActionConfig{
							{Kind: "send_text", Template: "checkout_annual"},
							{Kind: "set_stage", Stage: "hot"},
							{Kind: "schedule", Key: "cart_recovery_30m"},
						},
					},
					// Entry is last and matches any first message from the
					// unseeded stage: the detector picks the funnel, the
					// entry trigger performs the ∅ → cold transition.
					{
						Name:        "entry",
						PriorStages: []string{""},
						Match:       nil,
						Actions: []*ActionConfig{
							{Kind: "send_audio", Asset: "welcome"},
							{Kind: "set_stage", Stage: "cold"},
						},
					},
				},
			},
		},
		Assets: map[string]*AssetConfig{
			"welcome":      {Kind: "audio", Path: "/audios/welcome.opus"},
			"pain_generic": {Kind: "audio", Path: "/audios/pain_generic.opus"},
			"plans":        {Kind: "audio", Path: "/audios/plans.opus"},
			"recovery":     {Kind: "audio", Path: "/audios/recovery.opus"},
			"results_1":    {Kind: "image", Path: "/images/results_1.jpg"},
			"results_2":    {Kind: "image", Path: "/images/results_2.jpg"},
			"results_3":    {Kind: "image", Path: "/images/results_3.jpg"},
			"results_4":    {Kind: "image", Path: "/images/results_4.jpg"},
			"results_5":    {Kind: "image", Path: "/images/results_5.jpg"},
			"results_6":    {Kind: "image", Path: "/images/results_6.jpg"},
			"results_7":    {Kind: "image", Path: "/images/results_7.jpg"},
			"results_8":    {Kind: "image", Path: "/images/results_8.jpg"},
			"plans_description": {
				Kind:     "text",
				Template: "We have two plans: monthly and annual. Both include the full program, {name}. Which works better for you?",
			},
			"checkout_monthly": {
				Kind:     "text",
				Template: "Here is your monthly checkout link, {name}: {link}",
				Link:     "monthly",
			},
			"checkout_annual": {
				Kind:     "text",
				Template: "Here is your annual checkout link, {name}: {link}",
				Link:     "annual",
			},
			"recovery_text": {
				Kind:     "text",
				Template: "Your spot is still reserved, {name}. The link is waiting for you: {link}",
				Link:     "monthly",
			},
			"support_handoff": {
				Kind:     "text",
				Template: "Thanks for reaching out! One of our team members will get back to you shortly.",
			},
			"customer_welcome": {
				Kind:     "text",
				Template: "Welcome aboard, {name}! Your access details are on their way to your email.",
			},
		},
		Aliases: map[string]string{
			"boasvindas": "welcome",
			"dor":        "pain_generic",
			"planos":     "plans",
		},
		Links: map[string]string{
			"monthly": "https://pay.example.com/monthly",
			"annual":  "https://pay.example.com/annual",
		},
		Detection: &DetectionConfig{
			Campaigns: []*DetectRule{
				{
					Keywords: []string{"black friday", "promo 50"},
					Funnel:   "primary",
					Source:   "campaign",
					Tags:     []string{"campaign"},
				},
			},
			Products: []*DetectRule{
				{
					Keywords: []string{"product", "produto", "program", "programa"},
					Funnel:   "primary",
					Source:   "product",
				},
			},
			Tags: []*TagRule{
				{Tag: "instagram", Keywords: []string{"instagram", "insta", "reels"}},
				{Tag: "ads", Keywords: []string{"ad", "anuncio"}},
			},
		},
		PostPurchase: []*ActionConfig{
			{Kind: "send_text", Template: "customer_welcome"},
		},
		CartRecovery: []*ActionConfig{
			{Kind: "send_audio", Asset: "recovery"},
			{Kind: "send_text", Template: "recovery_text"},
			{Kind: "set_stage", Stage: "cart_recovery"},
		},
	}
}

func builtinMaskingPatterns() map[string]PatternConfig {
	return map[string]PatternConfig{
		"card_number": {
			Name:        "card_number",
			Pattern:     `\b(?:\d[ -]*?){13,19}\b`,
			Replacement: "***MASKED_CARD***",
			Description: "Payment card numbers (13-19 digits with optional separators)",
		},
		"api_key": {
			Name:        "api_key",
			Pattern:     `\b(?:sk|pk|rk)[-_][A-Za-z0-9_-]{16,}\b`,
			Replacement: "***MASKED_API_KEY***",
			Description: "Provider API key shapes",
		},
		"bearer_token": {
			Name:        "bearer_token",
			Pattern:     `(?i)bearer\s+[A-Za-z0-9._~+/-]{16,}=*`,
			Replacement: "***MASKED_TOKEN***",
			Description: "Bearer tokens in logged headers",
		},
		"cpf": {
			Name:        "cpf",
			Pattern:     `\b\d{3}\.\d{3}\.\d{3}-\d{2}\b`,
			Replacement: "***MASKED_DOCUMENT***",
			Description: "Brazilian taxpayer ids in billing payloads",
		},
	}
}

func builtinPatternGroups() map[string][]string {
	return map[string][]string{
		"payment":  {"card_number", "cpf"},
		"security": {"api_key", "bearer_token"},
		"all":      {"card_number", "cpf", "api_key", "bearer_token"},
	}
}
