package survey

import (
	"encoding/json"
	"fmt"
	"os"
)

// FieldPatterns lists the acceptable header name variants for one logical
// field. Variants are tried in order; matching is case, whitespace, and
// punctuation insensitive.
type FieldPatterns struct {
	Field    Field    `json:"field"`
	Variants []string `json:"variants"`
}

// PatternTable is the column-matching vocabulary. It is configuration, not
// logic: loaded once per run and never mutated. Field order is priority
// order — earlier fields claim headers first.
type PatternTable struct {
	Fields []FieldPatterns `json:"fields"`

	// Aliases normalize raw segment values onto canonical categories,
	// e.g. "territory manager" -> "TM". Keys are lowercase raw values.
	Aliases map[Field]map[string]string `json:"aliases,omitempty"`
}

// DefaultPatternTable returns the built-in matching vocabulary.
func DefaultPatternTable() PatternTable {
	return PatternTable{
		Fields: []FieldPatterns{
			{Field: FieldMotivation, Variants: []string{"learning motivation", "motivation", "what motivates"}},
			{Field: FieldFormat, Variants: []string{"preferred content format", "content format", "format preference", "format pref"}},
			{Field: FieldFrequency, Variants: []string{"digital platform frequency", "frequency", "how often", "freq"}},
			{Field: FieldTime, Variants: []string{"time willing", "time available", "hours per week", "hours/week", "time availability"}},
			{Field: FieldRole, Variants: []string{"role", "designation"}},
			{Field: FieldRegion, Variants: []string{"metro", "region", "location type"}},
			{Field: FieldEmpStatus, Variants: []string{"employee status", "emp status", "empstatus"}},
			{Field: FieldEmployeeID, Variants: []string{"employee id", "emp id", "employee code"}},
			{Field: FieldEmail, Variants: []string{"email", "e-mail", "mail id"}},
			{Field: FieldName, Variants: []string{"name", "respondent"}},
		},
		Aliases: map[Field]map[string]string{
			FieldRole: {
				"territory manager":         "TM",
				"tm":                        "TM",
				"area business manager":     "ABM",
				"abm":                       "ABM",
				"hospital business manager": "HBM/SBM",
				"scientific business manager": "HBM/SBM",
				"hbm":       "HBM/SBM",
				"sbm":       "HBM/SBM",
				"hbm/sbm":   "HBM/SBM",
				"regional business manager": "RBM",
				"rbm":                       "RBM",
				"zonal business manager":    "ZBM",
				"zbm":                       "ZBM",
				"marketing":     "Marketing",
				"brand manager": "Marketing",
			},
		},
	}
}

// LoadPatternTable reads a pattern table from a JSON file.
func LoadPatternTable(path string) (PatternTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PatternTable{}, fmt.Errorf("read pattern table: %w", err)
	}
	var pt PatternTable
	if err := json.Unmarshal(data, &pt); err != nil {
		return PatternTable{}, fmt.Errorf("parse pattern table: %w", err)
	}
	return pt, nil
}

// Validate checks that the table can drive a run. A missing dimension entry
// is a configuration defect, not a degraded-input case.
func (pt PatternTable) Validate() error {
	seen := make(map[Field]bool, len(pt.Fields))
	for _, fp := range pt.Fields {
		if fp.Field == "" {
			return fmt.Errorf("pattern table: entry with empty field name")
		}
		if seen[fp.Field] {
			return fmt.Errorf("pattern table: duplicate field %q", fp.Field)
		}
		seen[fp.Field] = true
		if len(fp.Variants) == 0 {
			return fmt.Errorf("pattern table: field %q has no variants", fp.Field)
		}
		for _, v := range fp.Variants {
			if normalizeHeader(v) == "" {
				return fmt.Errorf("pattern table: field %q has an empty variant", fp.Field)
			}
		}
	}
	for _, d := range DimensionFields() {
		if !seen[d] {
			return fmt.Errorf("pattern table: missing dimension field %q", d)
		}
	}
	return nil
}
