// bankctl imports a question-bank file (JSON or YAML) into the SQL store
// that assessd reads when QUESTION_SOURCE=db.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/assesskit/assesskit/internal/db"
	"github.com/assesskit/assesskit/internal/quiz"
)

func main() {
	var (
		file   = flag.String("file", "questions.json", "question bank file to import")
		driver = flag.String("driver", "sqlite", "database driver (sqlite|postgres)")
		dsn    = flag.String("dsn", "", "database DSN (driver default when empty)")
	)
	flag.Parse()

	questions, err := quiz.LoadFile(*file)
	if err != nil {
		log.Fatalf("load %s: %v", *file, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(*driver), *dsn)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer dbh.Close()

	if err := quiz.NewSQLBank(dbh).Put(ctx, questions); err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("imported %d questions from %s (driver=%s)", len(questions), *file, *driver)
}
