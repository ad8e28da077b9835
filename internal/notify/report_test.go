package notify

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/assesskit/assesskit/internal/grading"
)

func sampleSubmission() Submission {
	return Submission{
		ID: "sub-123",
		Result: grading.Result{
			Score:   2,
			Total:   3,
			Percent: 66.666666,
			Detail: []grading.Detail{
				{Question: "first", Topic: "a", User: []int{0}, Correct: []int{0}, IsCorrect: true, Explanation: "ok"},
				{Question: "second", User: []int{0, 2}, Correct: []int{0, 2}, IsCorrect: true},
				{Question: "third <b>bold</b>", User: nil, Correct: []int{1}, IsCorrect: false},
			},
		},
		RemoteAddr: "203.0.113.9",
		UserAgent:  "curl/8.0",
		When:       time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
}

func TestSubjectRoundsPercent(t *testing.T) {
	got := Subject(sampleSubmission())
	want := "Assessment Result – 2/3 (67%)"
	if got != want {
		t.Errorf("Subject = %q, want %q", got, want)
	}
}

func TestLetterList(t *testing.T) {
	cases := []struct {
		in   []int
		want string
	}{
		{nil, "—"},
		{[]int{0}, "A"},
		{[]int{0, 2}, "A, C"},
		{[]int{1, 3, 4}, "B, D, E"},
	}
	for _, tc := range cases {
		if got := letterList(tc.in); got != tc.want {
			t.Errorf("letterList(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	body, err := RenderHTML(sampleSubmission())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"sub-123",
		"2 / 3 (67%)",
		"203.0.113.9",
		"curl/8.0",
		"A, C",
		"✅", "❌",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	// Question text is escaped, not injected.
	if strings.Contains(body, "<b>bold</b>") {
		t.Error("HTML in question text was not escaped")
	}
	if !strings.Contains(body, "&lt;b&gt;bold&lt;/b&gt;") {
		t.Error("escaped question text missing from body")
	}
}

func TestSMTPSenderSkipsWithoutCredentials(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "localhost", Port: 25})
	if err := s.Send(context.Background(), sampleSubmission()); err != nil {
		t.Errorf("unconfigured sender must skip, got %v", err)
	}
}
