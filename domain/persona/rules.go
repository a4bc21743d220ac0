package persona

import (
	"encoding/json"
	"fmt"
	"os"

	"personadash/domain/survey"
)

// Rule is one scoring entry: if any pattern is contained in the normalized
// dimension value, the rule fires and contributes its weights. Within a
// dimension, rules are evaluated in order and only the first match fires.
type Rule struct {
	Label    string          `json:"label"`
	Patterns []string        `json:"patterns"`
	Weights  map[Persona]int `json:"weights"`
}

// DimensionRules holds the ordered rule list for one classification
// dimension.
type DimensionRules struct {
	Dimension survey.Field `json:"dimension"`
	Rules     []Rule       `json:"rules"`
}

// RuleTable is the full scoring configuration: treated as immutable data,
// loaded once per run. The unknown sentinel never matches any rule, so
// missing dimensions contribute zero weight everywhere.
type RuleTable struct {
	Dimensions []DimensionRules `json:"dimensions"`
}

// DefaultRuleTable returns the built-in scoring scheme.
func DefaultRuleTable() RuleTable {
	return RuleTable{
		Dimensions: []DimensionRules{
			{
				Dimension: survey.FieldMotivation,
				Rules: []Rule{
					{Label: "career", Patterns: []string{"career"}, Weights: map[Persona]int{Pathfinder: 3}},
					{Label: "growth", Patterns: []string{"growth", "personal"}, Weights: map[Persona]int{Inquirer: 2, Pathfinder: 1}},
					{Label: "performance", Patterns: []string{"performance", "job"}, Weights: map[Persona]int{Navigator: 3, Pragmatist: 1}},
					{Label: "trends", Patterns: []string{"trend", "industry"}, Weights: map[Persona]int{Inquirer: 2}},
				},
			},
			{
				Dimension: survey.FieldFormat,
				Rules: []Rule{
					{Label: "video", Patterns: []string{"video", "short"}, Weights: map[Persona]int{Pragmatist: 2, Pathfinder: 1}},
					{Label: "interactive", Patterns: []string{"game", "gamif", "interact"}, Weights: map[Persona]int{Connector: 2, Pathfinder: 1}},
					{Label: "case-study", Patterns: []string{"case", "scenario"}, Weights: map[Persona]int{Inquirer: 2, Connector: 1}},
					{Label: "reading", Patterns: []string{"book", "article", "read", "structured"}, Weights: map[Persona]int{Inquirer: 3}},
					{Label: "audio", Patterns: []string{"podcast", "audio"}, Weights: map[Persona]int{Navigator: 2}},
				},
			},
			{
				Dimension: survey.FieldFrequency,
				Rules: []Rule{
					{Label: "daily", Patterns: []string{"daily"}, Weights: map[Persona]int{Pathfinder: 2}},
					{Label: "weekly", Patterns: []string{"weekly"}, Weights: map[Persona]int{Pragmatist: 1, Connector: 1}},
					{Label: "occasional", Patterns: []string{"monthly", "occasional"}, Weights: map[Persona]int{Navigator: 2}},
				},
			},
			{
				Dimension: survey.FieldTime,
				Rules: []Rule{
					{Label: "under-1h", Patterns: []string{"<1", "less than 1", "30"}, Weights: map[Persona]int{Pragmatist: 2}},
					{Label: "1-2h", Patterns: []string{"1-2", "1 to 2", "60", "90", "<2"}, Weights: map[Persona]int{Pathfinder: 1, Pragmatist: 1}},
					{Label: "3h-plus", Patterns: []string{"3", "more", ">"}, Weights: map[Persona]int{Inquirer: 1, Navigator: 1}},
				},
			},
		},
	}
}

// LoadRuleTable reads a rule table from a JSON file.
func LoadRuleTable(path string) (RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleTable{}, fmt.Errorf("read rule table: %w", err)
	}
	var rt RuleTable
	if err := json.Unmarshal(data, &rt); err != nil {
		return RuleTable{}, fmt.Errorf("parse rule table: %w", err)
	}
	return rt, nil
}

// Validate rejects malformed scoring configuration. A rule table that
// references an unknown persona or a non-dimension field would silently
// bias every classification, so this is fatal to the run.
func (rt RuleTable) Validate() error {
	if len(rt.Dimensions) == 0 {
		return fmt.Errorf("rule table: no dimensions configured")
	}
	seen := make(map[survey.Field]bool, len(rt.Dimensions))
	for _, dr := range rt.Dimensions {
		if !dr.Dimension.IsDimension() {
			return fmt.Errorf("rule table: %q is not a classification dimension", dr.Dimension)
		}
		if seen[dr.Dimension] {
			return fmt.Errorf("rule table: duplicate dimension %q", dr.Dimension)
		}
		seen[dr.Dimension] = true
		for _, rule := range dr.Rules {
			if rule.Label == "" {
				return fmt.Errorf("rule table: %s has a rule with no label", dr.Dimension)
			}
			if len(rule.Patterns) == 0 {
				return fmt.Errorf("rule table: rule %s/%s has no patterns", dr.Dimension, rule.Label)
			}
			if len(rule.Weights) == 0 {
				return fmt.Errorf("rule table: rule %s/%s has no weights", dr.Dimension, rule.Label)
			}
			for p, w := range rule.Weights {
				if !Known(p) {
					return fmt.Errorf("rule table: rule %s/%s references unknown persona %q", dr.Dimension, rule.Label, p)
				}
				if w <= 0 {
					return fmt.Errorf("rule table: rule %s/%s has non-positive weight for %s", dr.Dimension, rule.Label, p)
				}
			}
		}
	}
	for _, d := range survey.DimensionFields() {
		if !seen[d] {
			return fmt.Errorf("rule table: missing dimension %q", d)
		}
	}
	return nil
}
