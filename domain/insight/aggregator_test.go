package insight

import (
	"testing"

	"personadash/domain/persona"
	"personadash/domain/survey"
)

func classifiedWith(idx int, p persona.Persona, margin int, segments map[survey.Field]string) Classified {
	return Classified{
		Record: survey.Record{Index: idx, Segments: segments},
		Result: persona.Result{Respondent: idx, Persona: p, Margin: margin},
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	s := Aggregate(nil)

	if s.Total != 0 {
		t.Errorf("total = %d, want 0", s.Total)
	}
	if len(s.Distribution) != 6 {
		t.Fatalf("distribution has %d entries, want 6 (five personas + Unclassified)", len(s.Distribution))
	}
	for _, d := range s.Distribution {
		if d.Count != 0 || d.Pct != 0 {
			t.Errorf("%s: count=%d pct=%d, want zeros", d.Persona, d.Count, d.Pct)
		}
	}
	if len(s.Insights) != 1 || s.Insights[0] != NoDataInsight {
		t.Errorf("insights = %v, want exactly the no-data message", s.Insights)
	}
	if s.Confidence.Samples != 0 {
		t.Errorf("confidence samples = %d, want 0", s.Confidence.Samples)
	}
}

func TestAggregate_PercentagesSumToHundred(t *testing.T) {
	classified := []Classified{
		classifiedWith(0, persona.Pathfinder, 2, nil),
		classifiedWith(1, persona.Pathfinder, 3, nil),
		classifiedWith(2, persona.Pragmatist, 1, nil),
		classifiedWith(3, persona.Inquirer, 2, nil),
		classifiedWith(4, persona.Navigator, 1, nil),
		classifiedWith(5, persona.Connector, 4, nil),
		classifiedWith(6, persona.Unclassified, 0, nil),
	}

	s := Aggregate(classified)

	sum := 0
	for _, d := range s.Distribution {
		sum += d.Pct
	}
	if sum < 97 || sum > 103 {
		t.Errorf("percentages sum to %d, want ~100", sum)
	}

	if got := s.Slice(persona.Unclassified).Count; got != 1 {
		t.Errorf("Unclassified count = %d, want 1 (must stay visible)", got)
	}
	// Denominator is total respondents, Unclassified included.
	if got := s.Slice(persona.Pathfinder).Pct; got != 29 {
		t.Errorf("Pathfinder pct = %d, want 29 (2/7)", got)
	}
}

func TestAggregate_CrossTabZeroFilledCells(t *testing.T) {
	classified := []Classified{
		classifiedWith(0, persona.Pathfinder, 2, map[survey.Field]string{survey.FieldRole: "TM"}),
		classifiedWith(1, persona.Pragmatist, 1, map[survey.Field]string{survey.FieldRole: "ABM"}),
		classifiedWith(2, persona.Pathfinder, 3, map[survey.Field]string{survey.FieldRole: "TM"}),
	}

	s := Aggregate(classified)

	if len(s.CrossTabs) != 1 {
		t.Fatalf("got %d cross-tabs, want 1 (role only)", len(s.CrossTabs))
	}
	tab := s.CrossTabs[0]
	if tab.Segment != survey.FieldRole {
		t.Errorf("segment = %s, want role", tab.Segment)
	}
	if len(tab.Categories) != 2 || tab.Categories[0] != "ABM" || tab.Categories[1] != "TM" {
		t.Fatalf("categories = %v, want sorted [ABM TM]", tab.Categories)
	}

	for _, row := range tab.Rows {
		if len(row.Counts) != 2 {
			t.Fatalf("%s row has %d cells, want one per category", row.Persona, len(row.Counts))
		}
	}
	// Empty cells are 0, not absent.
	var connectorRow CrossTabRow
	for _, row := range tab.Rows {
		if row.Persona == persona.Connector {
			connectorRow = row
		}
	}
	if connectorRow.Counts[0] != 0 || connectorRow.Counts[1] != 0 {
		t.Errorf("Connector row = %v, want zeros", connectorRow.Counts)
	}
}

func TestAggregate_NoSegmentsNoCrossTabs(t *testing.T) {
	s := Aggregate([]Classified{classifiedWith(0, persona.Inquirer, 1, nil)})
	if len(s.CrossTabs) != 0 {
		t.Errorf("got %d cross-tabs for segment-free input, want 0", len(s.CrossTabs))
	}
}

func TestAggregate_MarginStatsExcludeUnclassified(t *testing.T) {
	classified := []Classified{
		classifiedWith(0, persona.Pathfinder, 2, nil),
		classifiedWith(1, persona.Pragmatist, 4, nil),
		classifiedWith(2, persona.Unclassified, 0, nil),
	}

	s := Aggregate(classified)

	if s.Confidence.Samples != 2 {
		t.Errorf("samples = %d, want 2", s.Confidence.Samples)
	}
	if s.Confidence.Mean != 3 {
		t.Errorf("mean margin = %v, want 3", s.Confidence.Mean)
	}
}

func TestAggregate_AssociationOnSkewedTable(t *testing.T) {
	// TMs are all Pragmatists, ABMs all Inquirers: association should be
	// strong and significant.
	var classified []Classified
	for i := 0; i < 20; i++ {
		classified = append(classified, classifiedWith(i, persona.Pragmatist, 2,
			map[survey.Field]string{survey.FieldRole: "TM"}))
	}
	for i := 20; i < 40; i++ {
		classified = append(classified, classifiedWith(i, persona.Inquirer, 2,
			map[survey.Field]string{survey.FieldRole: "ABM"}))
	}

	s := Aggregate(classified)

	if len(s.CrossTabs) != 1 || s.CrossTabs[0].Association == nil {
		t.Fatal("expected an association diagnostic on the role cross-tab")
	}
	a := s.CrossTabs[0].Association
	if a.PValue >= 0.05 {
		t.Errorf("p-value = %v, want significant", a.PValue)
	}
	if a.CramersV < 0.9 {
		t.Errorf("Cramér's V = %v, want near 1 for a perfectly skewed table", a.CramersV)
	}
}

func TestAggregate_AssociationNilOnDegenerate(t *testing.T) {
	// Single occupied row: no independence test possible.
	classified := []Classified{
		classifiedWith(0, persona.Pathfinder, 1, map[survey.Field]string{survey.FieldRole: "TM"}),
		classifiedWith(1, persona.Pathfinder, 1, map[survey.Field]string{survey.FieldRole: "ABM"}),
	}

	s := Aggregate(classified)

	if len(s.CrossTabs) != 1 {
		t.Fatalf("got %d cross-tabs, want 1", len(s.CrossTabs))
	}
	if s.CrossTabs[0].Association != nil {
		t.Error("expected nil association for a single-persona table")
	}
}
