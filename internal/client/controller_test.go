package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/assesskit/assesskit/internal/api/http"
	"github.com/assesskit/assesskit/internal/grading"
	"github.com/assesskit/assesskit/internal/notify"
	"github.com/assesskit/assesskit/internal/quiz"
)

func serverQuestions() []quiz.Question {
	return []quiz.Question{
		{Topic: "t1", Text: "single", Options: []string{"A", "B", "C"}, Correct: []int{1}, Explanation: "e"},
		{Text: "multi", Options: []string{"A", "B", "C"}, Multiple: true, Correct: []int{0, 2}},
		{Text: "skippable", Options: []string{"yes", "no"}, Correct: []int{0}},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	questions := serverQuestions()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/questions", api.QuestionsHandler(questions))
	mux.HandleFunc("POST /api/submit", api.SubmitHandler(grading.NewEngine(questions), notify.Disabled{}))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func loadedController(t *testing.T) *Controller {
	t.Helper()
	srv := newTestServer(t)
	ctrl := NewController(NewAPI(srv.URL))
	require.NoError(t, ctrl.LoadQuestions(context.Background()))
	return ctrl
}

func TestLoadQuestions(t *testing.T) {
	ctrl := loadedController(t)

	assert.Equal(t, 3, ctrl.Len())
	assert.Equal(t, 0, ctrl.Current())
	assert.Equal(t, "single", ctrl.CurrentQuestion().Text)
	assert.False(t, ctrl.CurrentQuestion().Multiple)
}

func TestLoadQuestionsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctrl := NewController(NewAPI(srv.URL))
	err := ctrl.LoadQuestions(context.Background())

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 0, ctrl.Len(), "failed load must not transition into the quiz")
}

func TestRecordSelectionSingleSelect(t *testing.T) {
	ctrl := loadedController(t)

	ctrl.RecordSelection(0, 1, true)
	assert.Equal(t, []int{1}, ctrl.Selections(0))

	// Picking another option replaces the whole set.
	ctrl.RecordSelection(0, 2, true)
	assert.Equal(t, []int{2}, ctrl.Selections(0))

	// Unchecking the only selection clears it, leaving no stale value.
	ctrl.RecordSelection(0, 2, false)
	assert.Empty(t, ctrl.Selections(0))
}

func TestRecordSelectionMultiSelect(t *testing.T) {
	ctrl := loadedController(t)

	ctrl.RecordSelection(1, 2, true)
	ctrl.RecordSelection(1, 0, true)
	assert.Equal(t, []int{0, 2}, ctrl.Selections(1))

	ctrl.RecordSelection(1, 2, false)
	assert.Equal(t, []int{0}, ctrl.Selections(1))
}

func TestRecordSelectionIgnoresOutOfRange(t *testing.T) {
	ctrl := loadedController(t)

	ctrl.RecordSelection(0, 99, true)
	ctrl.RecordSelection(99, 0, true)
	ctrl.RecordSelection(-1, 0, true)
	for i := 0; i < ctrl.Len(); i++ {
		assert.Empty(t, ctrl.Selections(i))
	}
}

func TestNavigationClampsAtBoundaries(t *testing.T) {
	ctrl := loadedController(t)

	ctrl.GoPrevious()
	assert.Equal(t, 0, ctrl.Current(), "GoPrevious at first question is a no-op")
	assert.True(t, ctrl.AtFirst())

	ctrl.GoNext()
	ctrl.GoNext()
	assert.True(t, ctrl.AtLast())
	ctrl.GoNext()
	assert.Equal(t, 2, ctrl.Current(), "GoNext at last question is a no-op")
}

func TestBuildSubmissionPayloadNormalizes(t *testing.T) {
	ctrl := loadedController(t)
	ctrl.RecordSelection(0, 1, true)

	payload := ctrl.BuildSubmissionPayload()
	require.Len(t, payload, 3, "one entry per question, skipped or not")
	assert.Equal(t, []int{1}, payload[0])
	for _, entry := range payload[1:] {
		assert.NotNil(t, entry)
		assert.Empty(t, entry)
	}
}

func TestSubmitRoundTrip(t *testing.T) {
	ctrl := loadedController(t)
	ctrl.RecordSelection(0, 1, true) // correct
	ctrl.RecordSelection(1, 2, true) // incomplete multi
	// question 2 skipped

	result, err := ctrl.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.True(t, result.Detail[0].IsCorrect)
	assert.False(t, result.Detail[1].IsCorrect)
	assert.Empty(t, result.Detail[2].User)
}

func TestSubmitFailurePreservesAnswers(t *testing.T) {
	srv := newTestServer(t)
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer failing.Close()

	ctrl := NewController(NewAPI(srv.URL))
	require.NoError(t, ctrl.LoadQuestions(context.Background()))
	ctrl.RecordSelection(0, 1, true)
	ctrl.GoNext()

	// Point the controller at a broken server for the submit only.
	ctrl.api = NewAPI(failing.URL)
	_, err := ctrl.Submit(context.Background())

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, []int{1}, ctrl.Selections(0), "answers must survive a failed submit")
	assert.Equal(t, 1, ctrl.Current(), "position must survive a failed submit")
}

func TestResetClearsAnswersKeepsQuestions(t *testing.T) {
	ctrl := loadedController(t)
	ctrl.RecordSelection(0, 1, true)
	ctrl.GoNext()

	ctrl.Reset()

	assert.Equal(t, 3, ctrl.Len())
	assert.Equal(t, 0, ctrl.Current())
	assert.Empty(t, ctrl.Selections(0))
}

func TestSubmissionErrorUnwraps(t *testing.T) {
	cause := errors.New("cause")
	assert.ErrorIs(t, &SubmissionError{Err: cause}, cause)
	assert.ErrorIs(t, &LoadError{Err: cause}, cause)
}
