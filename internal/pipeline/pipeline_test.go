package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-etl-go/internal/discover"
	"call-etl-go/internal/logger"
)

const validLine = `{"callid":"831509590498","filename":"claim_0042.mp4","timestamp":"2025-06-02T10:30:00Z","agent":"Maria A.","account_id":"ACC-1234-QX","total_call_time":7.25,"primary_reason":"Benefits card stopped working","call_type":"Inbound","call_category":"Benefits Access or Card Issues","call_outcome":"Resolved","themes":[{"theme":"card issue","emotion":"Frustrated","quote":"card stopped working"},{"theme":"resolution","emotion":"Relieved","quote":"thank you"}],"sentiment_score":6,"food_program":true}`

const missingAccountLine = `{"callid":"2","filename":"b.mp4","timestamp":"2025-06-03T11:00:00Z","agent":"Omar K.","total_call_time":2,"primary_reason":"r","call_type":"Outbound","call_category":"Claims or Payments","call_outcome":"Dropped","sentiment_score":3,"food_program":false}`

func quietLogger() *logger.Logger {
	log := logger.New()
	log.SetLevel("error")
	return log
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	return dir
}

func TestRunEndToEnd(t *testing.T) {
	input := writeInput(t, "calls.jsonl",
		validLine+"\n"+missingAccountLine+"\n"+"{oops\n")
	outDir := filepath.Join(t.TempDir(), "out")

	res, err := Run(input, outDir, "calls.csv", quietLogger())
	require.NoError(t, err)
	assert.Equal(t, Counters{Seen: 2, Written: 1, Skipped: 1}, res.Counters)
	assert.Equal(t, filepath.Join(outDir, "calls.csv"), res.OutputPath)
	assert.Equal(t, map[string]int{"Inbound": 1}, res.Insight.ByCallType)
	assert.Equal(t, map[string]int{"Relieved": 1}, res.Insight.ByEmotion)

	b, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Relieved")
}

func TestRunIdempotent(t *testing.T) {
	input := writeInput(t, "calls.jsonl", validLine+"\n"+validLine+"\n")
	outDir := t.TempDir()

	first, err := Run(input, outDir, "calls.csv", quietLogger())
	require.NoError(t, err)
	b1, err := os.ReadFile(first.OutputPath)
	require.NoError(t, err)

	second, err := Run(input, outDir, "calls.csv", quietLogger())
	require.NoError(t, err)
	b2, err := os.ReadFile(second.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, b1, b2)
	assert.Equal(t, first.Counters, second.Counters)
}

func TestRunIgnoresOtherExtensions(t *testing.T) {
	input := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(input, "calls.jsonl"), []byte(validLine+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(input, "notes.txt"), []byte(validLine+"\n"), 0o644))

	res, err := Run(input, t.TempDir(), "calls.csv", quietLogger())
	require.NoError(t, err)
	assert.Equal(t, Counters{Seen: 1, Written: 1}, res.Counters)
}

func TestRunAllSkippedStillWritesHeader(t *testing.T) {
	input := writeInput(t, "calls.jsonl", missingAccountLine+"\n")
	res, err := Run(input, t.TempDir(), "calls.csv", quietLogger())
	require.NoError(t, err)
	assert.Equal(t, Counters{Seen: 1, Skipped: 1}, res.Counters)

	b, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(b), "\n"))
	assert.True(t, strings.HasPrefix(string(b), "callid,"))
}

func TestRunBadInputDirProducesNothing(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	_, err := Run(filepath.Join(t.TempDir(), "nope"), outDir, "calls.csv", quietLogger())
	require.ErrorIs(t, err, discover.ErrNotDirectory)
	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}
