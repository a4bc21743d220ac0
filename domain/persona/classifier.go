package persona

import (
	"strings"

	"personadash/domain/survey"
)

// RuleHit records which rule fired for a dimension, so a reviewer can audit
// why a respondent received a given label.
type RuleHit struct {
	Dimension survey.Field    `json:"dimension"`
	Value     string          `json:"value"`
	Rule      string          `json:"rule"`
	Weights   map[Persona]int `json:"weights"`
}

// Result is the classification outcome for one respondent. Immutable after
// creation; exactly one is produced per Record.
type Result struct {
	Respondent int             `json:"respondent"`
	Persona    Persona         `json:"persona"`
	RunnerUp   Persona         `json:"runner_up,omitempty"`
	Margin     int             `json:"margin"`
	Scores     map[Persona]int `json:"scores"`
	Hits       []RuleHit       `json:"hits"`
}

// Classifier applies a validated rule table to resolved records. It holds no
// per-run state; one instance can serve any number of records.
type Classifier struct {
	rules RuleTable
}

// NewClassifier validates the rule table and returns a classifier.
func NewClassifier(rules RuleTable) (*Classifier, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{rules: rules}, nil
}

// Classify scores one record across all configured dimensions and assigns
// the persona with the strictly highest total. Exact ties resolve to the
// persona earlier in the fixed enumeration order. A record with zero total
// weight is Unclassified, never silently the first persona.
func (c *Classifier) Classify(rec survey.Record) Result {
	scores := make(map[Persona]int, len(All()))
	var hits []RuleHit

	for _, dr := range c.rules.Dimensions {
		value := rec.Dimension(dr.Dimension)
		if value == survey.ValueUnknown {
			continue
		}
		rule, ok := firstMatch(dr.Rules, value)
		if !ok {
			continue
		}
		for p, w := range rule.Weights {
			scores[p] += w
		}
		hits = append(hits, RuleHit{
			Dimension: dr.Dimension,
			Value:     value,
			Rule:      rule.Label,
			Weights:   rule.Weights,
		})
	}

	winner, runnerUp, margin := rank(scores)
	return Result{
		Respondent: rec.Index,
		Persona:    winner,
		RunnerUp:   runnerUp,
		Margin:     margin,
		Scores:     scores,
		Hits:       hits,
	}
}

// firstMatch returns the first rule whose any pattern is contained in the
// value. Rule order in the table is the tie-break between patterns.
func firstMatch(rules []Rule, value string) (Rule, bool) {
	for _, r := range rules {
		for _, pat := range r.Patterns {
			if strings.Contains(value, strings.ToLower(pat)) {
				return r, true
			}
		}
	}
	return Rule{}, false
}

// rank picks winner and runner-up by iterating the fixed enumeration order,
// which makes the earlier persona win exact ties deterministically.
func rank(scores map[Persona]int) (winner, runnerUp Persona, margin int) {
	best, second := 0, 0
	winner, runnerUp = Unclassified, ""
	for _, p := range All() {
		s := scores[p]
		if s > best {
			second = best
			runnerUp = winner
			best = s
			winner = p
		} else if s > second {
			second = s
			runnerUp = p
		}
	}
	if best == 0 {
		return Unclassified, "", 0
	}
	if second == 0 {
		runnerUp = ""
	}
	return winner, runnerUp, best - second
}
