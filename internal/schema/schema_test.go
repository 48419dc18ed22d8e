package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() map[string]any {
	return map[string]any{
		"callid":          "831509590498",
		"filename":        "claim_0042.mp4",
		"timestamp":       "2025-06-02T10:30:00Z",
		"agent":           "Maria A.",
		"account_id":      "ACC-1234-QX",
		"total_call_time": 7.25,
		"primary_reason":  "Benefits card stopped working after enrollment update",
		"call_type":       "Inbound",
		"call_category":   "Benefits Access or Card Issues",
		"call_outcome":    "Resolved",
		"sentiment_score": 6.0,
		"food_program":    true,
	}
}

func TestValidateAccepts(t *testing.T) {
	res := Validate(validRecord())
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidateMissingFieldsSorted(t *testing.T) {
	rec := validRecord()
	delete(rec, "callid")
	delete(rec, "account_id")
	res := Validate(rec)
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "missing required fields: account_id, callid", res.Errors[0])
}

func TestValidateShapeChecks(t *testing.T) {
	rec := validRecord()
	rec["total_call_time"] = map[string]any{"minutes": 7.0}
	res := Validate(rec)
	require.False(t, res.Valid)
	assert.Contains(t, res.Errors, "total_call_time must be numeric-like or string")

	rec = validRecord()
	rec["sentiment_score"] = []any{6.0}
	res = Validate(rec)
	require.False(t, res.Valid)
	assert.Contains(t, res.Errors, "sentiment_score must be numeric-like or string")

	rec = validRecord()
	rec["food_program"] = 1.5
	res = Validate(rec)
	require.False(t, res.Valid)
	assert.Contains(t, res.Errors, "food_program must be boolean-like")
}

func TestValidateAdmitsLooseShapes(t *testing.T) {
	// these pass validation even though coercion may still reject them
	rec := validRecord()
	rec["total_call_time"] = true
	rec["sentiment_score"] = "not-a-number"
	rec["food_program"] = 1.0
	res := Validate(rec)
	assert.True(t, res.Valid)
}

func TestValidateNullCheckedField(t *testing.T) {
	rec := validRecord()
	rec["total_call_time"] = nil
	res := Validate(rec)
	assert.False(t, res.Valid)
}

func TestColumnNames(t *testing.T) {
	names := ColumnNames()
	require.Len(t, names, 13)
	assert.Equal(t, "callid", names[0])
	assert.Equal(t, "last_theme_emotion", names[10])
	assert.Equal(t, "food_program", names[12])
}
