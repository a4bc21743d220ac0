package insight

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"personadash/domain/persona"
	"personadash/domain/survey"
)

// Aggregate reduces the full ordered collection of classified respondents
// into one Summary. Zero respondents still yield a well-formed summary:
// zero counts, zero percentages, and the designated no-data insight.
func Aggregate(classified []Classified) Summary {
	s := Summary{
		Total:        len(classified),
		Distribution: distribution(classified),
		CrossTabs:    crossTabs(classified),
		Confidence:   marginStats(classified),
	}
	s.Insights = BuildInsights(s)
	return s
}

// distribution counts each persona in the fixed enumeration order, with
// Unclassified last. Percentages are whole percent of total respondents.
func distribution(classified []Classified) []PersonaSlice {
	counts := make(map[persona.Persona]int)
	for _, c := range classified {
		counts[c.Result.Persona]++
	}

	order := append(persona.All(), persona.Unclassified)
	out := make([]PersonaSlice, 0, len(order))
	for _, p := range order {
		out = append(out, PersonaSlice{
			Persona: p,
			Count:   counts[p],
			Pct:     pct(counts[p], len(classified)),
		})
	}
	return out
}

// crossTabs builds persona × segment tables for every segment field that
// appears in at least one record. Categories are sorted; every cell is
// present, zero-filled.
func crossTabs(classified []Classified) []CrossTab {
	var tabs []CrossTab
	for _, seg := range survey.SegmentFields() {
		catSet := make(map[string]bool)
		for _, c := range classified {
			if v := c.Record.Segment(seg); v != "" {
				catSet[v] = true
			}
		}
		if len(catSet) == 0 {
			continue
		}
		categories := make([]string, 0, len(catSet))
		for cat := range catSet {
			categories = append(categories, cat)
		}
		sort.Strings(categories)
		colIdx := make(map[string]int, len(categories))
		for i, cat := range categories {
			colIdx[cat] = i
		}

		order := append(persona.All(), persona.Unclassified)
		rows := make([]CrossTabRow, len(order))
		for i, p := range order {
			rows[i] = CrossTabRow{Persona: p, Counts: make([]int, len(categories))}
		}
		rowIdx := make(map[persona.Persona]int, len(order))
		for i, p := range order {
			rowIdx[p] = i
		}

		n := 0
		for _, c := range classified {
			v := c.Record.Segment(seg)
			if v == "" {
				continue
			}
			rows[rowIdx[c.Result.Persona]].Counts[colIdx[v]]++
			n++
		}

		tabs = append(tabs, CrossTab{
			Segment:     seg,
			Categories:  categories,
			Rows:        rows,
			Association: associate(rows, len(categories), n),
		})
	}
	return tabs
}

// associate runs a chi-squared test of independence on the contingency
// table and reports Cramér's V as the effect size. Returns nil when the
// table is degenerate (fewer than 2 occupied rows or columns).
func associate(rows []CrossTabRow, cols, n int) *Association {
	if n == 0 || cols < 2 {
		return nil
	}

	rowTotals := make([]float64, len(rows))
	colTotals := make([]float64, cols)
	for i, r := range rows {
		for j, c := range r.Counts {
			rowTotals[i] += float64(c)
			colTotals[j] += float64(c)
		}
	}
	occupiedRows, occupiedCols := 0, 0
	for _, t := range rowTotals {
		if t > 0 {
			occupiedRows++
		}
	}
	for _, t := range colTotals {
		if t > 0 {
			occupiedCols++
		}
	}
	if occupiedRows < 2 || occupiedCols < 2 {
		return nil
	}

	total := float64(n)
	chiSq := 0.0
	for i, r := range rows {
		for j, c := range r.Counts {
			expected := rowTotals[i] * colTotals[j] / total
			if expected == 0 {
				continue
			}
			diff := float64(c) - expected
			chiSq += diff * diff / expected
		}
	}

	df := (occupiedRows - 1) * (occupiedCols - 1)
	dist := distuv.ChiSquared{K: float64(df)}
	pValue := dist.Survival(chiSq)

	minDim := float64(occupiedRows - 1)
	if c := float64(occupiedCols - 1); c < minDim {
		minDim = c
	}
	cramersV := 0.0
	if minDim > 0 {
		cramersV = math.Sqrt(chiSq / (total * minDim))
	}

	return &Association{
		ChiSquare: round2(chiSq),
		DF:        df,
		PValue:    round4(pValue),
		CramersV:  round2(cramersV),
	}
}

// marginStats summarizes winner-vs-runner-up score gaps over respondents
// that actually classified. Empty input yields a zero-valued struct.
func marginStats(classified []Classified) MarginStats {
	var margins []float64
	for _, c := range classified {
		if c.Result.Persona == persona.Unclassified {
			continue
		}
		margins = append(margins, float64(c.Result.Margin))
	}
	if len(margins) == 0 {
		return MarginStats{}
	}

	mean, _ := stats.Mean(margins)
	median, _ := stats.Median(margins)
	p25, _ := stats.Percentile(margins, 25)
	p75, _ := stats.Percentile(margins, 75)
	return MarginStats{
		Samples: len(margins),
		Mean:    round2(mean),
		Median:  round2(median),
		P25:     round2(p25),
		P75:     round2(p75),
	}
}

// pct is whole-percent rounding against total; 0 total yields 0, never NaN.
func pct(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
