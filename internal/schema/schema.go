package schema

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Kind enumerates the target primitive kinds of the output table.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "integer"
	KindFloat  Kind = "float"
	KindBool   Kind = "boolean"
)

// Column pairs an output column name with its target kind.
type Column struct {
	Name string
	Kind Kind
}

// Columns is the canonical CSV schema, in output order.
// last_theme_emotion is derived from themes[last].emotion, never read directly.
var Columns = []Column{
	{"callid", KindString},
	{"filename", KindString},
	{"timestamp", KindString},
	{"agent", KindString},
	{"account_id", KindString},
	{"total_call_time", KindFloat},
	{"primary_reason", KindString},
	{"call_type", KindString},
	{"call_category", KindString},
	{"call_outcome", KindString},
	{"last_theme_emotion", KindString},
	{"sentiment_score", KindInt},
	{"food_program", KindBool},
}

// Required holds the field names that must be present on every input record.
// The themes list is optional; it only feeds the derived column.
var Required = map[string]struct{}{
	"callid":          {},
	"filename":        {},
	"timestamp":       {},
	"agent":           {},
	"account_id":      {},
	"total_call_time": {},
	"primary_reason":  {},
	"call_type":       {},
	"call_category":   {},
	"call_outcome":    {},
	"sentiment_score": {},
	"food_program":    {},
}

// ColumnNames returns the header row in canonical order.
func ColumnNames() []string {
	names := make([]string, len(Columns))
	for i, c := range Columns {
		names[i] = c.Name
	}
	return names
}

// ValidationResult reports whether a record may proceed to extraction.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Validate verifies presence and basic type-compatibility before extraction.
// Validity does not guarantee coercion succeeds; that is a second gate.
func Validate(record map[string]any) ValidationResult {
	var errs []string

	var missing []string
	for name := range Required {
		if _, ok := record[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		errs = append(errs, fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	// lightweight shape checks; strict coercion happens later
	if v, ok := record["total_call_time"]; ok && !numericLike(v) {
		errs = append(errs, "total_call_time must be numeric-like or string")
	}
	if v, ok := record["sentiment_score"]; ok && !numericLike(v) {
		errs = append(errs, "sentiment_score must be numeric-like or string")
	}
	if v, ok := record["food_program"]; ok && !booleanLike(v) {
		errs = append(errs, "food_program must be boolean-like")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func numericLike(v any) bool {
	switch v.(type) {
	case float64, string, bool:
		return true
	}
	return false
}

func booleanLike(v any) bool {
	switch t := v.(type) {
	case bool, string:
		return true
	case float64:
		// JSON integers arrive as float64; fractional values are not boolean-like
		return t == math.Trunc(t)
	}
	return false
}
