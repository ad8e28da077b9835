// Package notify dispatches a best-effort email report after each graded
// submission. Sending is one-way: failures are logged by the caller and
// never influence the HTTP response.
package notify

import (
	"context"
	"time"

	"github.com/assesskit/assesskit/internal/grading"
)

// Submission bundles a grading result with request metadata for the report.
type Submission struct {
	ID         string // unique per submission, stamped into the report
	Result     grading.Result
	RemoteAddr string
	UserAgent  string
	When       time.Time
}

// Sender dispatches one submission report.
type Sender interface {
	Send(ctx context.Context, sub Submission) error
}

// Disabled is a Sender that drops every report.
type Disabled struct{}

func (Disabled) Send(context.Context, Submission) error { return nil }
