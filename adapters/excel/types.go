package excel

// Row is one respondent's raw cells keyed by header. Ephemeral — it exists
// only between ingestion and record building.
type Row map[string]string

// Table is the parsed upload: one header row plus zero or more data rows.
// A header-only upload is valid input; the pipeline degrades to an empty
// summary rather than rejecting it.
type Table struct {
	Headers []string
	Rows    []Row
}
