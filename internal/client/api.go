package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/assesskit/assesskit/internal/grading"
	"github.com/assesskit/assesskit/internal/quiz"
)

// API talks to the assessment server's JSON endpoints.
type API struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchQuestions retrieves the sanitized question list.
func (a *API) FetchQuestions(ctx context.Context) ([]quiz.SanitizedQuestion, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.BaseURL+"/api/questions", nil)
	if err != nil {
		return nil, err
	}
	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("questions: unexpected status %d", resp.StatusCode)
	}
	var payload struct {
		Questions []quiz.SanitizedQuestion `json:"questions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return payload.Questions, nil
}

// SubmitAnswers posts a normalized answer payload and returns the grading
// result.
func (a *API) SubmitAnswers(ctx context.Context, answers [][]int) (grading.Result, error) {
	body, err := json.Marshal(map[string]interface{}{"answers": answers})
	if err != nil {
		return grading.Result{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/api/submit", bytes.NewReader(body))
	if err != nil {
		return grading.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return grading.Result{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return grading.Result{}, fmt.Errorf("submit: unexpected status %d", resp.StatusCode)
	}
	var result grading.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return grading.Result{}, fmt.Errorf("decode result: %w", err)
	}
	return result, nil
}
