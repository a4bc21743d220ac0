package survey

// Field is a logical survey field that the column resolver can bind an
// uploaded header to.
type Field string

// Classification dimensions. Every record resolves all four, falling back
// to ValueUnknown when the column is missing or the cell is unusable.
const (
	FieldMotivation Field = "motivation"
	FieldFormat     Field = "format_preference"
	FieldFrequency  Field = "frequency"
	FieldTime       Field = "time_availability"
)

// Segment fields are optional categorical breakdowns used for cross-tabs.
const (
	FieldRole      Field = "role"
	FieldRegion    Field = "region"
	FieldEmpStatus Field = "employee_status"
)

// PII fields are detected only so the payload builder can report that they
// were excluded. Their cell values are never read into a Record.
const (
	FieldName       Field = "name"
	FieldEmail      Field = "email"
	FieldEmployeeID Field = "employee_id"
)

// ValueUnknown is the sentinel category for an unresolvable dimension value.
const ValueUnknown = "unknown"

// DimensionFields returns the four classification dimensions in their fixed
// evaluation order.
func DimensionFields() []Field {
	return []Field{FieldMotivation, FieldFormat, FieldFrequency, FieldTime}
}

// SegmentFields returns the optional cross-tab fields in a fixed order.
func SegmentFields() []Field {
	return []Field{FieldRole, FieldRegion, FieldEmpStatus}
}

// PIIFields returns the fields whose values must never leave the resolver.
func PIIFields() []Field {
	return []Field{FieldName, FieldEmail, FieldEmployeeID}
}

// IsDimension reports whether f is one of the four classification dimensions.
func (f Field) IsDimension() bool {
	for _, d := range DimensionFields() {
		if f == d {
			return true
		}
	}
	return false
}

// IsPII reports whether f carries personally identifying values.
func (f Field) IsPII() bool {
	for _, p := range PIIFields() {
		if f == p {
			return true
		}
	}
	return false
}

// Resolution is the outcome of matching uploaded headers against the
// pattern table. Bindings map each resolved field to the exact header found.
type Resolution struct {
	Bindings          map[Field]string
	MissingDimensions []Field
	UnboundHeaders    []string
}

// Header returns the bound header for a field, or "" when unresolved.
func (r Resolution) Header(f Field) string {
	return r.Bindings[f]
}

// HasField reports whether a header was bound to the field.
func (r Resolution) HasField(f Field) bool {
	_, ok := r.Bindings[f]
	return ok
}

// Record is one respondent's resolved survey answers. Respondent identity is
// the zero-based data-row index; no uploaded identifier is ever carried.
// Records are immutable once built.
type Record struct {
	Index      int
	Dimensions map[Field]string
	Segments   map[Field]string
}

// Dimension returns the resolved category for a classification dimension,
// ValueUnknown if it was not resolvable.
func (r Record) Dimension(f Field) string {
	if v, ok := r.Dimensions[f]; ok && v != "" {
		return v
	}
	return ValueUnknown
}

// Segment returns the resolved segment value, "" when absent.
func (r Record) Segment(f Field) string {
	return r.Segments[f]
}
