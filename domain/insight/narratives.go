package insight

import (
	"fmt"
	"sort"

	"personadash/domain/persona"
)

// NoDataInsight is the exact paragraph emitted when there are no usable
// respondents. Kept as a constant so callers and tests can compare against
// it directly.
const NoDataInsight = "No respondent data available — upload a survey with at least one data row to generate persona insights."

// formatGuidance is per-persona content design advice, keyed on the
// dominant persona of the group.
var formatGuidance = map[persona.Persona]string{
	persona.Pathfinder: "keep modules punchy and tie each one explicitly to role progression milestones.",
	persona.Pragmatist: "ruthlessly edit for length — if a module runs past 5 minutes, break it into two.",
	persona.Inquirer:   "pair short modules with supplementary reading and case discussions.",
	persona.Navigator:  "offer a curated playlist learners can self-navigate rather than a linear mandatory path.",
	persona.Connector:  "anchor each module to a team discussion prompt or coaching scenario.",
}

// secondaryFormats recommends what to layer in for the second-largest
// persona segment.
var secondaryFormats = map[persona.Persona]string{
	persona.Pathfinder: "structured learning paths with visible progression tracking",
	persona.Pragmatist: "micro-assessments that prove competency quickly without lengthy modules",
	persona.Inquirer:   "downloadable summaries, white papers, and annotated evidence reviews",
	persona.Navigator:  "self-paced playlists and on-demand expert sessions",
	persona.Connector:  "peer cohort challenges, coaching simulations, and team-based gamification",
}

// BuildInsights derives the ordered narrative paragraphs from computed
// counts and percentages only. Same distribution in, same text out — no
// randomness, no clock, no external calls.
func BuildInsights(s Summary) []string {
	if s.Total == 0 {
		return []string{NoDataInsight}
	}

	ranked := rankedPersonas(s)
	top := ranked[0]

	insights := []string{openingInsight(s, ranked)}

	if guidance, ok := formatGuidance[top.Persona]; ok {
		insights = append(insights, fmt.Sprintf(
			"%ss are the dominant profile (%d%%) — %s",
			top.Persona, top.Pct, guidance))
	}

	if prag := s.Slice(persona.Pragmatist); prag.Pct >= 30 {
		insights = append(insights, fmt.Sprintf(
			"With %d%% Pragmatists, time pressure is the dominant constraint: design learning in chunks of 10 minutes or less, pushed proactively before field days.",
			prag.Pct))
	}

	if len(ranked) > 1 && ranked[1].Count > 0 {
		second := ranked[1]
		if layer, ok := secondaryFormats[second.Persona]; ok {
			insights = append(insights, fmt.Sprintf(
				"For the %s segment (%d%%), layer in %s.",
				second.Persona, second.Pct, layer))
		}
	}

	insights = append(insights, associationInsights(s)...)

	if uc := s.Slice(persona.Unclassified); uc.Count > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d respondent(s) (%d%%) could not be classified — their answers matched no scoring rule, usually a sign of missing or unrecognised survey columns.",
			uc.Count, uc.Pct))
	}

	return insights
}

// openingInsight names the top three persona shares shaping the group.
func openingInsight(s Summary, ranked []PersonaSlice) string {
	top := make([]PersonaSlice, 0, 3)
	for _, r := range ranked {
		if r.Count == 0 || r.Persona == persona.Unclassified {
			continue
		}
		top = append(top, r)
		if len(top) == 3 {
			break
		}
	}
	switch len(top) {
	case 0:
		return fmt.Sprintf("None of the %d respondents produced a classifiable profile.", s.Total)
	case 1:
		return fmt.Sprintf(
			"This group of %d learners is dominated by a single profile: %ss (%d%%).",
			s.Total, top[0].Persona, top[0].Pct)
	case 2:
		return fmt.Sprintf(
			"This group of %d learners is shaped by %ss (%d%%) and %ss (%d%%). Any learning journey must serve both profiles, not just the majority.",
			s.Total, top[0].Persona, top[0].Pct, top[1].Persona, top[1].Pct)
	default:
		return fmt.Sprintf(
			"This group of %d learners is shaped by %ss (%d%%), %ss (%d%%), and %ss (%d%%) as the three dominant profiles. Any learning journey must serve this blend — design for the majority but do not ignore the other two.",
			s.Total, top[0].Persona, top[0].Pct, top[1].Persona, top[1].Pct, top[2].Persona, top[2].Pct)
	}
}

// associationInsights notes segments where persona membership is strongly
// associated with the breakdown (p < 0.05 and at least moderate effect).
func associationInsights(s Summary) []string {
	var out []string
	for _, tab := range s.CrossTabs {
		a := tab.Association
		if a == nil || a.PValue >= 0.05 || a.CramersV < 0.2 {
			continue
		}
		out = append(out, fmt.Sprintf(
			"Persona mix varies meaningfully by %s (Cramér's V %.2f) — a one-size-fits-all journey will underserve some %s groups.",
			tab.Segment, a.CramersV, tab.Segment))
	}
	return out
}

// rankedPersonas sorts the distribution by count descending; equal counts
// keep the fixed enumeration order so the narrative is reproducible.
func rankedPersonas(s Summary) []PersonaSlice {
	ranked := make([]PersonaSlice, len(s.Distribution))
	copy(ranked, s.Distribution)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
