package domain

// PassageEntry is one labeled passage of the fixed grounding corpus.
// Metadata carries provenance for display (act, label); it is never used
// for filtering.
type PassageEntry struct {
	Text     string
	Metadata map[string]string
}

// passages is the portfolio narrative corpus, fixed at build time and
// never mutated. Each entry is one "act" of the visitor journey.
var passages = []PassageEntry{
	{
		Text:     "Act 1 · The Hook — Over 3,200 portfolio visits with 40% returning visitors. BlackBox Chronicles is the most binge-watched feature showcasing reverse engineering in Rust.",
		Metadata: map[string]string{"act": "hook", "label": "Engagement Proof"},
	},
	{
		Text:     "Act 2 · Watch Party — Rust rebuild demo on YouTube surpasses 12,000 views with a 4:30 average watch time and highlights a live exploit mitigation clip.",
		Metadata: map[string]string{"act": "watch-party", "label": "Video Analytics"},
	},
	{
		Text:     "Act 3 · Connections — BlackBox Chronicles proves technical mastery, Agentverse demonstrates scalable multi-agent workflows, and Vibeverse ensures human-centric adoption.",
		Metadata: map[string]string{"act": "connections", "label": "Ecosystem Map"},
	},
	{
		Text:     "Act 4 · Proof — Security impact: $500k potential breach prevented, Rust rebuild cuts memory usage by 40%, vibe-coded agents improve user retention by 25%.",
		Metadata: map[string]string{"act": "proof", "label": "Outcome Metrics"},
	},
	{
		Text:     "Act 5 · Finale — Roadmap evolves into a customer-ready agent framework delivering tailored BlackBox Assistants for enterprise workflows.",
		Metadata: map[string]string{"act": "finale", "label": "Roadmap"},
	},
	{
		Text:     "Sound & Flow — Studio playlists blend analog synthwave, diaspora jazz nights, and ambient club edits that inspire vibe-coded agent design and onboarding rituals.",
		Metadata: map[string]string{"act": "sound", "label": "Music Identity"},
	},
	{
		Text:     "Creative Stack — Beyond security research, we host underground listening sessions, prototype generative visuals, and remix field notes into zines to keep storytelling human.",
		Metadata: map[string]string{"act": "creative", "label": "Culture Layer"},
	},
}

// Passages returns the grounding corpus. The returned slice shares the
// underlying entries; callers must treat them as read-only.
func Passages() []PassageEntry {
	return passages
}
