package persona

// Persona is one of the five fixed learner personas, or Unclassified when a
// respondent produced no rule signal at all.
type Persona string

const (
	Pathfinder   Persona = "Pathfinder"
	Pragmatist   Persona = "Pragmatist"
	Inquirer     Persona = "Inquirer"
	Navigator    Persona = "Navigator"
	Connector    Persona = "Connector"
	Unclassified Persona = "Unclassified"
)

// All returns the five personas in their fixed enumeration order. Ties are
// broken toward the earlier entry, so this order is part of the contract.
func All() []Persona {
	return []Persona{Pathfinder, Pragmatist, Inquirer, Navigator, Connector}
}

// Known reports whether p is one of the five assignable personas.
func Known(p Persona) bool {
	for _, k := range All() {
		if p == k {
			return true
		}
	}
	return false
}

// Meta is renderer-facing display metadata for a persona card.
type Meta struct {
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Attitude    string `json:"attitude"`
}

var metaByPersona = map[Persona]Meta{
	Pathfinder: {
		Emoji:       "🧭",
		Color:       "#0d6efd",
		Tagline:     "Driven by growth, always moving forward",
		Description: "Highly motivated learners who connect every module to their next career move. They engage frequently, prefer structured progression, and respond strongly to recognition.",
		Attitude:    "Show me where this learning takes me. If I can see a clear line between this module and my next role, I am all in. I engage daily and I want structured progress.",
	},
	Pragmatist: {
		Emoji:       "⚡",
		Color:       "#d97706",
		Tagline:     "Time is precious — make every minute count",
		Description: "Busy, results-oriented learners who need content that is immediately applicable. They favour short formats, dislike abstract content, and drop off quickly if relevance is not clear.",
		Attitude:    "Give me what I need in the shortest time possible. Short videos, clear takeaways, immediately usable. I do not have time for content that does not apply to my day.",
	},
	Inquirer: {
		Emoji:       "🔬",
		Color:       "#0891b2",
		Tagline:     "Depth over breadth, evidence over assertion",
		Description: "Curious learners who go beyond the surface. They read, explore case studies, and want to understand the 'why'. Scientific and clinical depth energises them.",
		Attitude:    "I want to understand the evidence, the mechanism, the reasoning. Do not just tell me what — tell me why. Case studies and clinical depth are where I come alive.",
	},
	Navigator: {
		Emoji:       "🗺️",
		Color:       "#7c3aed",
		Tagline:     "Experience-led, self-directed, performance-focused",
		Description: "Seasoned professionals who know what they need. They self-direct their learning, prefer flexibility, and are motivated by improving outcomes rather than advancement.",
		Attitude:    "I know what I need. Give me flexibility and let me drive. I am motivated by improving my outcomes, not by completing a course for its own sake.",
	},
	Connector: {
		Emoji:       "🤝",
		Color:       "#059669",
		Tagline:     "Learning is better together",
		Description: "Collaborative learners energised by peer interaction, team scenarios, and shared challenges. Coaching simulations and group formats resonate most with them.",
		Attitude:    "Put me with my peers. Coaching scenarios, team discussions, shared challenges — that is where I learn best. Isolation kills my motivation.",
	},
	Unclassified: {
		Emoji:       "❔",
		Color:       "#6b7280",
		Tagline:     "Not enough signal to place this learner",
		Description: "Respondents whose answers matched no scoring rule, usually because the relevant survey columns were missing or left blank.",
	},
}

// MetaFor returns the display metadata for a persona. Unknown personas get
// the Unclassified card so the renderer never sees an empty block.
func MetaFor(p Persona) Meta {
	if m, ok := metaByPersona[p]; ok {
		return m
	}
	return metaByPersona[Unclassified]
}
