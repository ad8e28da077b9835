package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// SQLBank stores the question bank in a SQL database, one row per question
// with the full question serialized as JSON. Works against sqlite and
// postgres alike.
type SQLBank struct {
	db *sql.DB
}

func NewSQLBank(db *sql.DB) *SQLBank { return &SQLBank{db: db} }

// Put replaces the stored bank with the given questions, preserving order
// via an explicit ordinal column.
func (b *SQLBank) Put(ctx context.Context, questions []Question) error {
	if err := Validate(questions); err != nil {
		return err
	}
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM question_bank`); err != nil {
		return err
	}
	for i, q := range questions {
		buf, err := json.Marshal(q)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO question_bank (ord, question_json) VALUES ($1,$2)`,
			i, string(buf)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load reads the full bank in stored order and validates it.
func (b *SQLBank) Load(ctx context.Context) ([]Question, error) {
	rows, err := b.db.QueryContext(ctx,
		`SELECT question_json FROM question_bank ORDER BY ord`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var buf string
		if err := rows.Scan(&buf); err != nil {
			return nil, err
		}
		var q Question
		if err := json.Unmarshal([]byte(buf), &q); err != nil {
			return nil, fmt.Errorf("decode stored question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := Validate(questions); err != nil {
		return nil, err
	}
	return questions, nil
}
