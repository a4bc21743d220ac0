package app

import (
	"personadash/domain/insight"
	"personadash/domain/persona"
	"personadash/domain/survey"
)

// ColumnMatch records one resolved binding for the diagnostics section.
// Header names may appear here; uploaded cell values never do.
type ColumnMatch struct {
	Field  survey.Field `json:"field"`
	Header string       `json:"header"`
}

// Diagnostics is the column-resolution report for the renderer.
type Diagnostics struct {
	Columns            []ColumnMatch  `json:"columns"`
	MissingDimensions  []survey.Field `json:"missing_dimensions"`
	UnmatchedHeaders   []string       `json:"unmatched_headers"`
	PIIColumnsExcluded []ColumnMatch  `json:"pii_columns_excluded"`
}

// Respondent is one classified row, identified only by its row index.
type Respondent struct {
	ID       int               `json:"id"`
	Persona  persona.Persona   `json:"persona"`
	RunnerUp persona.Persona   `json:"runner_up,omitempty"`
	Margin   int               `json:"margin"`
	Hits     []persona.RuleHit `json:"hits"`
}

// PersonaCard pairs a persona with its display metadata for the renderer.
type PersonaCard struct {
	Persona persona.Persona `json:"persona"`
	persona.Meta
}

// Payload is the complete structured object handed to the external template
// renderer. It is the PII boundary: respondent identity is the row index,
// and values from name/email/employee-id columns are never copied in. It is
// also timestamp-free, so identical uploads serialize byte-identically.
type Payload struct {
	Diagnostics Diagnostics     `json:"diagnostics"`
	Respondents []Respondent    `json:"respondents"`
	Summary     insight.Summary `json:"summary"`
	Personas    []PersonaCard   `json:"personas"`
}

// buildPayload assembles the final payload. All slices are in fixed orders
// (field order, row order, enumeration order) — never map iteration order.
func buildPayload(res survey.Resolution, classified []insight.Classified, summary insight.Summary) *Payload {
	diag := Diagnostics{
		MissingDimensions: res.MissingDimensions,
		UnmatchedHeaders:  res.UnboundHeaders,
	}
	for _, f := range append(survey.DimensionFields(), survey.SegmentFields()...) {
		if res.HasField(f) {
			diag.Columns = append(diag.Columns, ColumnMatch{Field: f, Header: res.Header(f)})
		}
	}
	for _, f := range survey.PIIFields() {
		if res.HasField(f) {
			diag.PIIColumnsExcluded = append(diag.PIIColumnsExcluded, ColumnMatch{Field: f, Header: res.Header(f)})
		}
	}

	respondents := make([]Respondent, len(classified))
	for i, c := range classified {
		respondents[i] = Respondent{
			ID:       c.Result.Respondent,
			Persona:  c.Result.Persona,
			RunnerUp: c.Result.RunnerUp,
			Margin:   c.Result.Margin,
			Hits:     c.Result.Hits,
		}
	}

	order := append(persona.All(), persona.Unclassified)
	cards := make([]PersonaCard, len(order))
	for i, p := range order {
		cards[i] = PersonaCard{Persona: p, Meta: persona.MetaFor(p)}
	}

	return &Payload{
		Diagnostics: diag,
		Respondents: respondents,
		Summary:     summary,
		Personas:    cards,
	}
}
