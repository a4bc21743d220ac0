package survey

import "strings"

// BuildRecords applies a Resolution to raw rows and produces one immutable
// Record per row. Dimension cells are reduced to their rank-1 item (survey
// tools export ranked answers as "first;second;third"), lowercased and
// trimmed. Anything empty or unusable becomes ValueUnknown. PII columns are
// never read.
func BuildRecords(rows []map[string]string, res Resolution, pt PatternTable) []Record {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec := Record{
			Index:      i,
			Dimensions: make(map[Field]string, 4),
			Segments:   make(map[Field]string),
		}
		for _, f := range DimensionFields() {
			rec.Dimensions[f] = resolveCell(row, res, f)
		}
		for _, f := range SegmentFields() {
			if !res.HasField(f) {
				continue
			}
			raw := strings.TrimSpace(row[res.Header(f)])
			if raw == "" {
				continue
			}
			rec.Segments[f] = canonicalSegment(pt, f, raw)
		}
		records = append(records, rec)
	}
	return records
}

// resolveCell extracts the normalized rank-1 value of a dimension cell.
func resolveCell(row map[string]string, res Resolution, f Field) string {
	if !res.HasField(f) {
		return ValueUnknown
	}
	v := rankOne(row[res.Header(f)])
	if v == "" {
		return ValueUnknown
	}
	return v
}

// rankOne returns the first item of a ";"-separated ranked cell, trimmed and
// lowercased. A plain cell is its own rank-1 item.
func rankOne(cell string) string {
	first, _, _ := strings.Cut(cell, ";")
	return strings.ToLower(strings.TrimSpace(first))
}

// canonicalSegment maps a raw segment value through the alias table,
// falling back to the trimmed original.
func canonicalSegment(pt PatternTable, f Field, raw string) string {
	if aliases, ok := pt.Aliases[f]; ok {
		if canon, ok := aliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
			return canon
		}
	}
	return strings.TrimSpace(raw)
}
