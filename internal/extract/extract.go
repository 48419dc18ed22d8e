// Package extract maps validated records to ordered output rows.
package extract

import (
	"fmt"

	"call-etl-go/internal/coerce"
	"call-etl-go/internal/schema"
)

// EmotionReason explains why the derived last_theme_emotion is or is not set.
type EmotionReason int

const (
	EmotionFound EmotionReason = iota
	ThemesAbsent
	ThemesNotList
	ThemesEmpty
	LastNotObject
	EmotionMissing
)

// LastThemeEmotion derives the emotion of the last theme object, if any.
// The derivation is best-effort: every failure mode maps to a nil value
// and a reason, never an error.
func LastThemeEmotion(record map[string]any) (any, EmotionReason) {
	raw, ok := record["themes"]
	if !ok || raw == nil {
		return nil, ThemesAbsent
	}
	themes, ok := raw.([]any)
	if !ok {
		return nil, ThemesNotList
	}
	if len(themes) == 0 {
		return nil, ThemesEmpty
	}
	last, ok := themes[len(themes)-1].(map[string]any)
	if !ok {
		return nil, LastNotObject
	}
	emo, ok := last["emotion"]
	if !ok || emo == nil {
		return nil, EmotionMissing
	}
	return coerce.Stringify(emo), EmotionFound
}

// Row extracts one output row in canonical column order. Any coercion
// failure rejects the whole record; there are no partial rows.
func Row(record map[string]any) ([]any, error) {
	values := make([]any, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		if col.Name == "last_theme_emotion" {
			emo, _ := LastThemeEmotion(record)
			values = append(values, emo)
			continue
		}
		raw, ok := record[col.Name]
		if !ok || raw == nil {
			values = append(values, nil)
			continue
		}
		v, err := coerce.Value(raw, col.Kind)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col.Name, err)
		}
		values = append(values, v)
	}
	return values, nil
}
