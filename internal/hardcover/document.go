package hardcover

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Document is one raw, untyped record as returned by the Hardcover API.
// The search endpoint returns loosely shaped JSON whose field names drift
// between result types, so every read goes through an ordered list of
// candidate paths instead of fixed struct tags. Missing keys and values of
// the wrong shape are never errors, they just mean "try the next path".
type Document map[string]any

// AsDocument converts a decoded JSON value into a Document. Arrays and
// scalars are not documents.
func AsDocument(v any) (Document, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Document(m), true
}

// Get descends the document along path, returning false as soon as a key is
// missing or an intermediate value is not an object.
func (d Document) Get(path ...string) (any, bool) {
	var current any = map[string]any(d)
	for _, key := range path {
		next, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = next[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// FirstString returns the first non-empty trimmed string found along any of
// the candidate paths.
func (d Document) FirstString(paths ...[]string) (string, bool) {
	for _, path := range paths {
		v, ok := d.Get(path...)
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			return s, true
		}
	}
	return "", false
}

// FirstNumber returns the first value that is already numeric, or a string
// that parses cleanly to a finite number.
func (d Document) FirstNumber(paths ...[]string) (float64, bool) {
	for _, path := range paths {
		v, ok := d.Get(path...)
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			if !math.IsInf(n, 0) && !math.IsNaN(n) {
				return n, true
			}
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if err == nil && !math.IsInf(parsed, 0) && !math.IsNaN(parsed) {
				return parsed, true
			}
		}
	}
	return 0, false
}

// FirstID is FirstString falling back to FirstNumber stringified, for
// identifiers that arrive as either type.
func (d Document) FirstID(paths ...[]string) (string, bool) {
	if s, ok := d.FirstString(paths...); ok {
		return s, true
	}
	if n, ok := d.FirstNumber(paths...); ok {
		return formatNumber(n), true
	}
	return "", false
}

// StringList returns the trimmed non-empty strings of an array value, or
// nothing when the value is not an array.
func StringList(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	list := make([]string, 0, len(raw))
	for _, entry := range raw {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}
	return list
}

// DocumentList returns the object members of an array value.
func DocumentList(v any) []Document {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	list := make([]Document, 0, len(raw))
	for _, entry := range raw {
		if doc, ok := AsDocument(entry); ok {
			list = append(list, doc)
		}
	}
	return list
}

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// parseYear extracts the first 4-digit run from a release/published date
// string. Absent or malformed dates yield no year, never a guess.
func parseYear(value string) (int, bool) {
	match := yearPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, false
	}
	year, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

func normalizeLanguageCode(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// aggregateCount digs the count out of a GraphQL aggregate envelope,
// defaulting to zero.
func aggregateCount(v any) int {
	doc, ok := AsDocument(v)
	if !ok {
		return 0
	}
	n, ok := doc.FirstNumber([]string{"aggregate", "count"})
	if !ok {
		return 0
	}
	return int(n)
}

// formatNumber renders ids like JSON does: integral values without a
// fraction part.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
