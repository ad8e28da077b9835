// Package client holds the quiz-taking state machine: question list,
// current position and per-question selections. All transitions are
// explicit methods on Controller, so the flow is testable without any
// rendering layer on top.
package client

import (
	"context"
	"sort"

	"github.com/assesskit/assesskit/internal/grading"
	"github.com/assesskit/assesskit/internal/quiz"
)

// Controller owns one quiz session against one server.
type Controller struct {
	api *API

	questions []quiz.SanitizedQuestion
	current   int
	answers   map[int][]int // sparse; absent means unanswered
}

func NewController(api *API) *Controller {
	return &Controller{api: api, answers: map[int][]int{}}
}

// LoadQuestions fetches the sanitized question list and starts a fresh
// session. On failure it returns a *LoadError and leaves existing state
// untouched so the caller can prompt for a retry.
func (c *Controller) LoadQuestions(ctx context.Context) error {
	questions, err := c.api.FetchQuestions(ctx)
	if err != nil {
		return &LoadError{Err: err}
	}
	c.Start(questions)
	return nil
}

// Start installs a question list and begins a fresh session.
func (c *Controller) Start(questions []quiz.SanitizedQuestion) {
	c.questions = questions
	c.Reset()
}

// Reset clears all recorded answers and returns to the first question. The
// fetched question list is kept.
func (c *Controller) Reset() {
	c.current = 0
	c.answers = map[int][]int{}
}

// Questions returns the sanitized question list.
func (c *Controller) Questions() []quiz.SanitizedQuestion { return c.questions }

// Len returns the question count.
func (c *Controller) Len() int { return len(c.questions) }

// Current returns the active question index.
func (c *Controller) Current() int { return c.current }

// CurrentQuestion returns the active question.
func (c *Controller) CurrentQuestion() quiz.SanitizedQuestion {
	return c.questions[c.current]
}

// Selected reports whether the option is selected on the given question.
func (c *Controller) Selected(questionIndex, optionIndex int) bool {
	for _, idx := range c.answers[questionIndex] {
		if idx == optionIndex {
			return true
		}
	}
	return false
}

// Selections returns a copy of the recorded selection set for a question.
func (c *Controller) Selections(questionIndex int) []int {
	return append([]int(nil), c.answers[questionIndex]...)
}

// RecordSelection applies one checkbox/radio change. Single-select replaces
// the whole set with {optionIndex} when checked and clears it when
// unchecked; multi-select adds or removes optionIndex, keeping the rest.
func (c *Controller) RecordSelection(questionIndex, optionIndex int, checked bool) {
	if questionIndex < 0 || questionIndex >= len(c.questions) {
		return
	}
	q := c.questions[questionIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return
	}
	if !q.Multiple {
		if checked {
			c.answers[questionIndex] = []int{optionIndex}
		} else {
			c.answers[questionIndex] = []int{}
		}
		return
	}
	set := c.answers[questionIndex]
	out := make([]int, 0, len(set)+1)
	for _, idx := range set {
		if idx != optionIndex {
			out = append(out, idx)
		}
	}
	if checked {
		out = append(out, optionIndex)
		sort.Ints(out)
	}
	c.answers[questionIndex] = out
}

// GoNext advances to the next question; no-op on the last one.
func (c *Controller) GoNext() {
	if c.current < len(c.questions)-1 {
		c.current++
	}
}

// GoPrevious steps back; no-op on the first question.
func (c *Controller) GoPrevious() {
	if c.current > 0 {
		c.current--
	}
}

// AtFirst reports whether the first question is active.
func (c *Controller) AtFirst() bool { return c.current == 0 }

// AtLast reports whether the last question is active.
func (c *Controller) AtLast() bool { return c.current == len(c.questions)-1 }

// BuildSubmissionPayload produces exactly one entry per question: the
// recorded selection set, or an empty (never nil) slice for skipped
// questions, so the wire payload always matches the question count.
func (c *Controller) BuildSubmissionPayload() [][]int {
	payload := make([][]int, len(c.questions))
	for i := range c.questions {
		if set, ok := c.answers[i]; ok && set != nil {
			payload[i] = append([]int{}, set...)
		} else {
			payload[i] = []int{}
		}
	}
	return payload
}

// Submit sends the normalized payload for grading. On failure it returns a
// *SubmissionError and keeps all recorded answers so the user can retry.
func (c *Controller) Submit(ctx context.Context) (grading.Result, error) {
	result, err := c.api.SubmitAnswers(ctx, c.BuildSubmissionPayload())
	if err != nil {
		return grading.Result{}, &SubmissionError{Err: err}
	}
	return result, nil
}
