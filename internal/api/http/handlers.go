package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/assesskit/assesskit/internal/grading"
	"github.com/assesskit/assesskit/internal/notify"
	"github.com/assesskit/assesskit/internal/quiz"
)

const maxSubmitBody = 1 << 20 // 1 MiB

// HealthHandler returns a timestamped liveness payload.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":   true,
			"time": time.Now().Format(time.RFC3339),
		})
	}
}

// QuestionsHandler serves the sanitized question list. Sanitization happens
// once at construction; the canonical set never reaches this handler's
// response.
func QuestionsHandler(questions []quiz.Question) http.HandlerFunc {
	sanitized := quiz.Sanitize(questions)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"questions": sanitized,
		})
	}
}

// SubmitHandler grades a submission and dispatches the report email in the
// background. The report is best-effort: a send failure is logged and has
// no bearing on the response.
func SubmitHandler(engine *grading.Engine, sender notify.Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answers []json.RawMessage `json:"answers"`
		}
		body := http.MaxBytesReader(w, r.Body, maxSubmitBody)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}

		result := engine.Grade(req.Answers)

		sub := notify.Submission{
			ID:         uuid.NewString(),
			Result:     result,
			RemoteAddr: r.RemoteAddr, // middleware.RealIP resolves X-Forwarded-For
			UserAgent:  userAgentOr(r, "unknown"),
			When:       time.Now(),
		}
		// Detached from the request context so the send outlives the response.
		go func() {
			if err := sender.Send(context.Background(), sub); err != nil {
				log.Printf("notify: report %s failed: %v", sub.ID, err)
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}
}

func userAgentOr(r *http.Request, def string) string {
	if ua := r.UserAgent(); ua != "" {
		return ua
	}
	return def
}
