// Package coerce converts decoded JSON values to the schema's target kinds.
package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"call-etl-go/internal/schema"
)

// Error reports a value that cannot be converted to its target kind.
type Error struct {
	Value any
	Kind  schema.Kind
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed coercion %#v -> %s: %s", e.Value, e.Kind, e.Msg)
}

var truthy = map[string]bool{"true": true, "1": true, "yes": true, "y": true}
var falsy = map[string]bool{"false": true, "0": true, "no": true, "n": true}

// Value converts v to the given kind. A nil input always yields nil.
// Callers short-circuit absent/null fields, but nil is guarded here too.
func Value(v any, kind schema.Kind) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch kind {
	case schema.KindString:
		return Stringify(v), nil
	case schema.KindInt:
		return toInt(v)
	case schema.KindFloat:
		return toFloat(v)
	case schema.KindBool:
		return toBool(v)
	}
	return nil, &Error{Value: v, Kind: kind, Msg: "unknown kind"}
}

// Stringify renders any decoded JSON scalar as its canonical text form.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// toInt widens to float first, then truncates, so "3.0" and 3.9 both land on 3.
func toInt(v any) (any, error) {
	switch t := v.(type) {
	case bool:
		if t {
			return int64(1), nil
		}
		return int64(0), nil
	case float64:
		return int64(math.Trunc(t)), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil, &Error{Value: v, Kind: schema.KindInt, Msg: "not parseable as a number"}
		}
		return int64(math.Trunc(f)), nil
	}
	return nil, &Error{Value: v, Kind: schema.KindInt, Msg: "unsupported input type"}
}

func toFloat(v any) (any, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil, &Error{Value: v, Kind: schema.KindFloat, Msg: "not parseable as a number"}
		}
		return f, nil
	}
	return nil, &Error{Value: v, Kind: schema.KindFloat, Msg: "unsupported input type"}
}

func toBool(v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		if truthy[s] {
			return true, nil
		}
		if falsy[s] {
			return false, nil
		}
		return nil, &Error{Value: v, Kind: schema.KindBool, Msg: "not a recognized boolean token"}
	}
	return nil, &Error{Value: v, Kind: schema.KindBool, Msg: "unsupported input type"}
}
