package grading

import (
	"encoding/json"

	"github.com/assesskit/assesskit/internal/quiz"
)

// Detail is the per-question grading outcome returned to the client and
// included in the emailed report.
type Detail struct {
	Question    string   `json:"question"`
	Code        string   `json:"code"`
	Options     []string `json:"options"`
	User        []int    `json:"user"`
	Correct     []int    `json:"correct"`
	Explanation string   `json:"explanation"`
	Topic       string   `json:"topic"`
	IsCorrect   bool     `json:"isCorrect"`
}

// Result is the aggregate outcome of grading one submission.
type Result struct {
	Score   int      `json:"score"`
	Total   int      `json:"total"`
	Percent float64  `json:"percent"`
	Detail  []Detail `json:"detail"`
}

// Engine grades submissions against an immutable question set. Grading is
// stateless per call, so a single Engine serves concurrent requests
// without locking.
type Engine struct {
	questions []quiz.Question
	correct   [][]int // normalized copies of the answer keys
}

// NewEngine builds an engine over the canonical question set. Answer keys
// are copied and normalized up front; the originals are never sorted or
// otherwise mutated.
func NewEngine(questions []quiz.Question) *Engine {
	correct := make([][]int, len(questions))
	for i, q := range questions {
		correct[i] = quiz.NormalizeIndices(q.Correct)
	}
	return &Engine{questions: questions, correct: correct}
}

// Total returns the number of questions in the set.
func (e *Engine) Total() int { return len(e.questions) }

// Grade scores a raw submission. Answers align to questions by position.
// A submission shorter than the question set grades the missing tail as
// unanswered; extra entries are ignored. Each question is correct only if
// the submitted index set equals the answer key exactly, order-independent
// with no partial credit.
func (e *Engine) Grade(submitted []json.RawMessage) Result {
	res := Result{
		Total:  len(e.questions),
		Detail: make([]Detail, 0, len(e.questions)),
	}
	for i, q := range e.questions {
		var raw json.RawMessage
		if i < len(submitted) {
			raw = submitted[i]
		}
		user := quiz.ParseSelection(raw, len(q.Options))
		isCorrect := equalInts(user, e.correct[i])
		if isCorrect {
			res.Score++
		}
		res.Detail = append(res.Detail, Detail{
			Question:    q.Text,
			Code:        q.Code,
			Options:     q.Options,
			User:        user,
			Correct:     e.correct[i],
			Explanation: q.Explanation,
			Topic:       q.Topic,
			IsCorrect:   isCorrect,
		})
	}
	if res.Total > 0 {
		res.Percent = float64(res.Score) / float64(res.Total) * 100
	}
	return res
}

// equalInts compares two sorted, deduplicated index slices.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
