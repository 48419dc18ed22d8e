package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(callType, outcome string, emotion any) []any {
	return []any{
		"id", "f.mp4", "2025-06-02T10:30:00Z", "Maria A.", "ACC-0001-QX", 1.0,
		"reason", callType, "Claims or Payments", outcome, emotion, int64(5), true,
	}
}

func TestAggregate(t *testing.T) {
	rows := [][]any{
		row("Inbound", "Resolved", "Relieved"),
		row("Inbound", "Dropped", "Angry"),
		row("Outbound", "Resolved", nil),
	}
	ins := Aggregate(rows)
	assert.Equal(t, map[string]int{"Inbound": 2, "Outbound": 1}, ins.ByCallType)
	assert.Equal(t, map[string]int{"Resolved": 2, "Dropped": 1}, ins.ByOutcome)
	assert.Equal(t, map[string]int{"Relieved": 1, "Angry": 1, "": 1}, ins.ByEmotion)
}

func TestAggregateEmpty(t *testing.T) {
	ins := Aggregate(nil)
	assert.Empty(t, ins.ByCallType)
	assert.Empty(t, ins.ByOutcome)
	assert.Empty(t, ins.ByEmotion)
}
