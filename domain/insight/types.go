package insight

import (
	"personadash/domain/persona"
	"personadash/domain/survey"
)

// Classified pairs one respondent's resolved record with its classification
// result. The aggregator consumes the full ordered collection at once.
type Classified struct {
	Record survey.Record
	Result persona.Result
}

// PersonaSlice is one persona's share of the distribution. Percentages are
// whole percent against total respondents, so Unclassified stays visible
// and denominators are stable across reports.
type PersonaSlice struct {
	Persona persona.Persona `json:"persona"`
	Count   int             `json:"count"`
	Pct     int             `json:"pct"`
}

// CrossTab is persona counts broken down by one segment field. Every
// persona row carries a count for every category, zero-filled — a cell with
// no respondents is 0, never absent.
type CrossTab struct {
	Segment     survey.Field  `json:"segment"`
	Categories  []string      `json:"categories"`
	Rows        []CrossTabRow `json:"rows"`
	Association *Association  `json:"association,omitempty"`
}

// CrossTabRow is one persona's counts, aligned with CrossTab.Categories.
type CrossTabRow struct {
	Persona persona.Persona `json:"persona"`
	Counts  []int           `json:"counts"`
}

// Association is a chi-squared independence diagnostic for a cross-tab:
// how strongly persona membership varies with the segment.
type Association struct {
	ChiSquare float64 `json:"chi_square"`
	DF        int     `json:"df"`
	PValue    float64 `json:"p_value"`
	CramersV  float64 `json:"cramers_v"`
}

// MarginStats summarizes the winner-vs-runner-up score gap across classified
// respondents. A low mean margin means many assignments were near ties.
type MarginStats struct {
	Samples int     `json:"samples"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	P25     float64 `json:"p25"`
	P75     float64 `json:"p75"`
}

// Summary is the dashboard-ready aggregate: recomputed fresh on every run,
// derived read-only from the classification results.
type Summary struct {
	Total        int            `json:"total"`
	Distribution []PersonaSlice `json:"distribution"`
	CrossTabs    []CrossTab     `json:"cross_tabs"`
	Confidence   MarginStats    `json:"confidence"`
	Insights     []string       `json:"insights"`
}

// Slice returns the distribution entry for a persona (zero-valued when the
// persona is somehow absent from the distribution).
func (s Summary) Slice(p persona.Persona) PersonaSlice {
	for _, d := range s.Distribution {
		if d.Persona == p {
			return d
		}
	}
	return PersonaSlice{Persona: p}
}
