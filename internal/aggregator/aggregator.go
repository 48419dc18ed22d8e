package aggregator

import "call-etl-go/internal/schema"

// Insight summarizes one batch of written rows. It is logged with the final
// run summary and never written to the CSV.
type Insight struct {
	ByCallType map[string]int `json:"by_call_type"`
	ByOutcome  map[string]int `json:"by_outcome"`
	ByEmotion  map[string]int `json:"by_last_theme_emotion"`
}

// Aggregate counts rows per call type, outcome and derived emotion.
// Null cells are counted under "".
func Aggregate(rows [][]any) Insight {
	typeIdx := columnIndex("call_type")
	outcomeIdx := columnIndex("call_outcome")
	emotionIdx := columnIndex("last_theme_emotion")

	ins := Insight{
		ByCallType: map[string]int{},
		ByOutcome:  map[string]int{},
		ByEmotion:  map[string]int{},
	}
	for _, row := range rows {
		ins.ByCallType[cellString(row, typeIdx)]++
		ins.ByOutcome[cellString(row, outcomeIdx)]++
		ins.ByEmotion[cellString(row, emotionIdx)]++
	}
	return ins
}

func columnIndex(name string) int {
	for i, c := range schema.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func cellString(row []any, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	if s, ok := row[idx].(string); ok {
		return s
	}
	return ""
}
