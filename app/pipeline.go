package app

import (
	"personadash/adapters/excel"
	"personadash/domain/insight"
	"personadash/domain/persona"
	"personadash/domain/survey"
	"personadash/internal"
	"personadash/internal/errors"
)

// Pipeline is the full classification engine for one configuration: column
// resolution, persona scoring, aggregation, payload assembly. It holds no
// per-upload state — each Run is an independent single pass, so one
// instance can serve concurrent requests without locking.
type Pipeline struct {
	patterns   survey.PatternTable
	classifier *persona.Classifier
	log        *internal.Logger
}

// NewPipeline validates both configuration tables and builds the pipeline.
// Table defects are fatal here, before any upload is accepted.
func NewPipeline(patterns survey.PatternTable, rules persona.RuleTable) (*Pipeline, error) {
	if err := patterns.Validate(); err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid(err.Error()), "pattern table rejected")
	}
	classifier, err := persona.NewClassifier(rules)
	if err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid(err.Error()), "rule table rejected")
	}
	return &Pipeline{
		patterns:   patterns,
		classifier: classifier,
		log:        internal.DefaultLogger,
	}, nil
}

// Run processes one parsed upload into a dashboard payload. Row-level
// problems degrade to diagnostics; only nil input is an error.
func (p *Pipeline) Run(table *excel.Table) (*Payload, error) {
	if table == nil {
		return nil, errors.InvalidInput("no table to process")
	}

	resolution := survey.Resolve(table.Headers, p.patterns)
	p.log.Info("resolved %d of %d headers, %d dimensions missing",
		len(resolution.Bindings), len(table.Headers), len(resolution.MissingDimensions))

	rows := make([]map[string]string, len(table.Rows))
	for i, r := range table.Rows {
		rows[i] = r
	}
	records := survey.BuildRecords(rows, resolution, p.patterns)

	// Unresolvable cells were coerced to the unknown sentinel; surface the
	// count as a diagnostic, never the values.
	unknownCells := 0
	for _, rec := range records {
		for _, f := range survey.DimensionFields() {
			if rec.Dimension(f) == survey.ValueUnknown {
				unknownCells++
			}
		}
	}
	if unknownCells > 0 {
		p.log.Debug("%d dimension cells coerced to unknown", unknownCells)
	}

	classified := make([]insight.Classified, len(records))
	for i, rec := range records {
		classified[i] = insight.Classified{
			Record: rec,
			Result: p.classifier.Classify(rec),
		}
	}

	summary := insight.Aggregate(classified)
	p.log.Info("classified %d respondents", summary.Total)

	return buildPayload(resolution, classified, summary), nil
}
