package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/assesskit/assesskit/internal/api/http"
	"github.com/assesskit/assesskit/internal/config"
	"github.com/assesskit/assesskit/internal/db"
	"github.com/assesskit/assesskit/internal/grading"
	"github.com/assesskit/assesskit/internal/notify"
	"github.com/assesskit/assesskit/internal/quiz"
)

func main() {
	cfg := config.FromEnv()

	// --- Question bank (loaded once, immutable afterwards) ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	questions, err := loadBank(ctx, cfg)
	if err != nil {
		log.Fatalf("question bank load failed: %v", err)
	}
	if len(questions) == 0 {
		log.Fatalf("question bank is empty (source=%s)", cfg.QuestionSource)
	}
	engine := grading.NewEngine(questions)

	// --- Outbound report ---
	var sender notify.Sender = notify.Disabled{}
	if cfg.NotifyEnabled {
		sender = notify.NewSMTPSender(notify.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			To:   cfg.AdminEmail,
		})
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/health", api.HealthHandler())
		ar.Get("/questions", api.QuestionsHandler(questions))
		ar.Post("/submit", api.SubmitHandler(engine, sender))
	})

	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); err == nil {
			api.MountStatic(r, cfg.StaticDir)
		} else {
			log.Printf("static dir %s not found; serving API only", cfg.StaticDir)
		}
	}

	log.Printf("listening on %s (questions=%d, source=%s)",
		cfg.HTTPAddr, len(questions), cfg.QuestionSource)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func loadBank(ctx context.Context, cfg config.Config) ([]quiz.Question, error) {
	switch cfg.QuestionSource {
	case config.SourceDB:
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		defer dbh.Close()
		return quiz.NewSQLBank(dbh).Load(ctx)
	default:
		return quiz.LoadFile(cfg.QuestionFile)
	}
}
