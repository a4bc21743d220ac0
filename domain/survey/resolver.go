package survey

import (
	"strings"
)

// Resolve matches uploaded headers against the pattern table and produces a
// Resolution. For each field, in table order, every variant is first tried
// as an exact normalized match across the remaining headers, then as a
// substring match. A header binds to at most one field; once bound it leaves
// the candidate pool. Unresolved dimensions are reported, never fatal.
func Resolve(headers []string, pt PatternTable) Resolution {
	type candidate struct {
		original   string
		normalized string
	}

	pool := make([]candidate, 0, len(headers))
	for _, h := range headers {
		if n := normalizeHeader(h); n != "" {
			pool = append(pool, candidate{original: h, normalized: n})
		}
	}

	bindings := make(map[Field]string)
	take := func(idx int) string {
		h := pool[idx].original
		pool = append(pool[:idx], pool[idx+1:]...)
		return h
	}

	for _, fp := range pt.Fields {
		bound := false
		// Exact matches first so "role" cannot steal "role expectations"
		// from a later field.
		for _, variant := range fp.Variants {
			nv := normalizeHeader(variant)
			for i, c := range pool {
				if c.normalized == nv {
					bindings[fp.Field] = take(i)
					bound = true
					break
				}
			}
			if bound {
				break
			}
		}
		if bound {
			continue
		}
		for _, variant := range fp.Variants {
			nv := normalizeHeader(variant)
			for i, c := range pool {
				if strings.Contains(c.normalized, nv) {
					bindings[fp.Field] = take(i)
					bound = true
					break
				}
			}
			if bound {
				break
			}
		}
	}

	var missing []Field
	for _, d := range DimensionFields() {
		if _, ok := bindings[d]; !ok {
			missing = append(missing, d)
		}
	}
	unbound := make([]string, 0, len(pool))
	for _, c := range pool {
		unbound = append(unbound, c.original)
	}

	return Resolution{
		Bindings:          bindings,
		MissingDimensions: missing,
		UnboundHeaders:    unbound,
	}
}

// normalizeHeader lowercases and strips everything but letters and digits,
// so "Format Pref.", "format_pref" and "FormatPref" compare equal.
func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
