package config

import (
	"os"
	"strconv"
	"strings"
)

// Source selects where the canonical question bank is loaded from.
type Source string

const (
	SourceFile Source = "file"
	SourceDB   Source = "db"
)

type Config struct {
	HTTPAddr  string
	StaticDir string // front-end assets; empty disables static serving

	QuestionSource Source
	QuestionFile   string // for SourceFile: JSON or YAML bank

	DBDriver string // sqlite|postgres, for SourceDB and bankctl
	DBDSN    string

	CORSOrigins []string

	// Outbound result report.
	NotifyEnabled bool
	AdminEmail    string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
}

func FromEnv() Config {
	src := Source(envOr("QUESTION_SOURCE", string(SourceFile)))
	return Config{
		HTTPAddr:  envOr("HTTP_ADDR", ":8080"),
		StaticDir: envOr("STATIC_DIR", "./web"),

		QuestionSource: src,
		QuestionFile:   envOr("QUESTION_FILE", "./questions.json"),

		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000"),

		NotifyEnabled: envBool("NOTIFY_ENABLED", true),
		AdminEmail:    envOr("ADMIN_EMAIL", ""),
		SMTPHost:      envOr("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      envInt("SMTP_PORT", 587),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envInt(k string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return v
	}
	return def
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
