package survey

import "testing"

func TestBuildRecords_RankOneExtraction(t *testing.T) {
	pt := DefaultPatternTable()
	res := Resolve([]string{"Motivation", "Format Pref", "Freq", "Hours/week"}, pt)
	rows := []map[string]string{
		{
			"Motivation":  "Career advancement;Personal growth;Staying updated",
			"Format Pref": "Short Videos;Case Studies",
			"Freq":        "Daily",
			"Hours/week":  "1-2 hours",
		},
	}

	records := BuildRecords(rows, res, pt)

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if got := rec.Dimension(FieldMotivation); got != "career advancement" {
		t.Errorf("motivation = %q, want rank-1 item lowercased", got)
	}
	if got := rec.Dimension(FieldFormat); got != "short videos" {
		t.Errorf("format = %q", got)
	}
	if rec.Index != 0 {
		t.Errorf("index = %d, want 0", rec.Index)
	}
}

func TestBuildRecords_MissingColumnYieldsUnknown(t *testing.T) {
	pt := DefaultPatternTable()
	res := Resolve([]string{"Motivation", "Format Pref", "Freq"}, pt)
	rows := []map[string]string{
		{"Motivation": "Career", "Format Pref": "Videos", "Freq": "Daily"},
	}

	records := BuildRecords(rows, res, pt)

	if got := records[0].Dimension(FieldTime); got != ValueUnknown {
		t.Errorf("time = %q, want %q", got, ValueUnknown)
	}
}

func TestBuildRecords_EmptyCellYieldsUnknown(t *testing.T) {
	pt := DefaultPatternTable()
	res := Resolve([]string{"Motivation", "Format Pref", "Freq", "Hours/week"}, pt)
	rows := []map[string]string{
		{"Motivation": "  ;second", "Format Pref": "", "Freq": "Daily", "Hours/week": "1-2"},
	}

	records := BuildRecords(rows, res, pt)

	if got := records[0].Dimension(FieldMotivation); got != ValueUnknown {
		t.Errorf("blank rank-1 motivation = %q, want %q", got, ValueUnknown)
	}
	if got := records[0].Dimension(FieldFormat); got != ValueUnknown {
		t.Errorf("empty format = %q, want %q", got, ValueUnknown)
	}
}

func TestBuildRecords_SegmentAliases(t *testing.T) {
	pt := DefaultPatternTable()
	res := Resolve([]string{"Motivation", "Format Pref", "Freq", "Hours/week", "Role"}, pt)
	rows := []map[string]string{
		{"Role": "Territory Manager"},
		{"Role": "ZBM"},
		{"Role": "Data Scientist"},
	}

	records := BuildRecords(rows, res, pt)

	if got := records[0].Segment(FieldRole); got != "TM" {
		t.Errorf("row 0 role = %q, want TM", got)
	}
	if got := records[1].Segment(FieldRole); got != "ZBM" {
		t.Errorf("row 1 role = %q, want ZBM", got)
	}
	// Unknown roles pass through untouched.
	if got := records[2].Segment(FieldRole); got != "Data Scientist" {
		t.Errorf("row 2 role = %q, want passthrough", got)
	}
}

func TestBuildRecords_PIIValuesNeverStored(t *testing.T) {
	pt := DefaultPatternTable()
	res := Resolve([]string{"Name", "Email", "Motivation", "Format Pref", "Freq", "Hours/week"}, pt)
	rows := []map[string]string{
		{
			"Name":        "Alice",
			"Email":       "alice@example.com",
			"Motivation":  "Career growth",
			"Format Pref": "Short videos",
			"Freq":        "Daily",
			"Hours/week":  "<2",
		},
	}

	records := BuildRecords(rows, res, pt)

	rec := records[0]
	for f, v := range rec.Dimensions {
		if v == "alice" || v == "alice@example.com" {
			t.Errorf("PII value leaked into dimension %s", f)
		}
	}
	for f, v := range rec.Segments {
		if v == "Alice" || v == "alice@example.com" {
			t.Errorf("PII value leaked into segment %s", f)
		}
	}
}
