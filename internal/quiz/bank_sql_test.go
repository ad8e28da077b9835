package quiz

import (
	"context"
	"reflect"
	"testing"

	"github.com/assesskit/assesskit/internal/db"
)

func TestSQLBankRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:banktest?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	defer dbh.Close()
	bank := NewSQLBank(dbh)

	questions := []Question{
		{Topic: "a", Text: "first", Options: []string{"x", "y"}, Correct: []int{0}, Explanation: "e1"},
		{Topic: "b", Text: "second", Options: []string{"x", "y", "z"}, Multiple: true, Correct: []int{1, 2}, Explanation: "e2"},
	}
	if err := bank.Put(ctx, questions); err != nil {
		t.Fatal(err)
	}

	loaded, err := bank.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded, questions) {
		t.Errorf("round trip mismatch:\ngot:  %+v\nwant: %+v", loaded, questions)
	}

	// A second Put replaces the bank instead of appending.
	if err := bank.Put(ctx, questions[:1]); err != nil {
		t.Fatal(err)
	}
	loaded, err = bank.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 {
		t.Errorf("got %d questions after replace, want 1", len(loaded))
	}
}

func TestSQLBankRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:banktest2?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	defer dbh.Close()

	bad := []Question{{Text: "q", Options: []string{"a"}, Correct: []int{7}}}
	if err := NewSQLBank(dbh).Put(ctx, bad); err == nil {
		t.Fatal("want validation error, got nil")
	}
}
