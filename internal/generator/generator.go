// Package generator produces seeded synthetic call records shaped like the
// upstream extraction output, for pipeline testing and demos.
package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Theme is one extracted conversation theme with its emotion.
type Theme struct {
	Theme   string `json:"theme"`
	Emotion string `json:"emotion"`
	Quote   string `json:"quote"`
}

// Question is one caller question with its supporting quote.
type Question struct {
	Question string `json:"question"`
	Quote    string `json:"quote"`
}

// CallRecord mirrors the flat extraction schema plus the nested
// questions/themes lists that the tabulator consumes.
type CallRecord struct {
	CallID         string     `json:"callid"`
	Filename       string     `json:"filename"`
	Timestamp      string     `json:"timestamp"`
	Agent          string     `json:"agent"`
	AccountID      string     `json:"account_id"`
	TotalCallTime  float64    `json:"total_call_time"`
	PrimaryReason  string     `json:"primary_reason"`
	CallType       string     `json:"call_type"`
	CallCategory   string     `json:"call_category"`
	CallOutcome    string     `json:"call_outcome"`
	Questions      []Question `json:"questions"`
	Themes         []Theme    `json:"themes"`
	SentimentScore int        `json:"sentiment_score"`
	FoodProgram    bool       `json:"food_program"`
}

// Generator emits deterministic records for a given seed.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

func New(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now().UTC(),
	}
}

// Record produces one synthetic call record.
func (g *Generator) Record() CallRecord {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// rand.Rand.Read never fails
		panic(err)
	}
	return CallRecord{
		CallID:         id.String(),
		Filename:       fmt.Sprintf("%s_%04d.mp4", g.word(), g.rng.Intn(10000)),
		Timestamp:      g.timestamp(),
		Agent:          g.agent(),
		AccountID:      fmt.Sprintf("ACC-%04d-%c%c", g.rng.Intn(10000), g.letter(), g.letter()),
		TotalCallTime:  math.Round((0.5+g.rng.Float64()*14.5)*100) / 100,
		PrimaryReason:  g.phrase(10, 15),
		CallType:       CallTypes[g.rng.Intn(len(CallTypes))],
		CallCategory:   CallReasons[g.rng.Intn(len(CallReasons))],
		CallOutcome:    CallOutcomes[g.rng.Intn(len(CallOutcomes))],
		Questions:      g.questions(),
		Themes:         g.themes(),
		SentimentScore: g.rng.Intn(11),
		FoodProgram:    g.rng.Intn(2) == 0,
	}
}

// Records produces n records.
func (g *Generator) Records(n int) []CallRecord {
	out := make([]CallRecord, n)
	for i := range out {
		out[i] = g.Record()
	}
	return out
}

func (g *Generator) questions() []Question {
	k := 1 + g.rng.Intn(3)
	out := make([]Question, k)
	for i := range out {
		out[i] = Question{
			Question: strings.ToLower(g.phrase(5, 7)),
			Quote:    g.phrase(6, 10),
		}
	}
	return out
}

func (g *Generator) themes() []Theme {
	k := 1 + g.rng.Intn(3)
	out := make([]Theme, 0, k)
	used := map[string]bool{}
	for len(out) < k {
		theme := g.phrase(2, 5)
		if used[theme] {
			continue
		}
		used[theme] = true
		out = append(out, Theme{
			Theme:   theme,
			Emotion: Emotions[g.rng.Intn(len(Emotions))],
			Quote:   g.phrase(6, 12),
		})
	}
	return out
}

// phrase samples min..max distinct pool words, capitalized like a sentence.
func (g *Generator) phrase(min, max int) string {
	n := min + g.rng.Intn(max-min+1)
	if n > len(wordPool) {
		n = len(wordPool)
	}
	perm := g.rng.Perm(len(wordPool))
	words := make([]string, n)
	for i := 0; i < n; i++ {
		words[i] = wordPool[perm[i]]
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func (g *Generator) word() string {
	return wordPool[g.rng.Intn(len(wordPool))]
}

func (g *Generator) letter() rune {
	return rune('A' + g.rng.Intn(26))
}

func (g *Generator) agent() string {
	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]
	return fmt.Sprintf("%s %c.", first, last[0])
}

// timestamp picks a second-resolution UTC instant within the past 180 days.
func (g *Generator) timestamp() string {
	back := time.Duration(g.rng.Intn(180))*24*time.Hour +
		time.Duration(g.rng.Intn(24))*time.Hour +
		time.Duration(g.rng.Intn(60))*time.Minute
	return g.now.Add(-back).Truncate(time.Second).Format(time.RFC3339)
}
