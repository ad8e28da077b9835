package quiz

import "fmt"

// Question is the canonical, server-side form of a quiz item. The answer
// key (Correct) and Explanation must never leave the server ungraded.
type Question struct {
	ID          string   `json:"id,omitempty" yaml:"id"`
	Topic       string   `json:"topic" yaml:"topic"`
	Text        string   `json:"text" yaml:"text"`
	Code        string   `json:"code,omitempty" yaml:"code"`
	Options     []string `json:"options" yaml:"options"`
	Multiple    bool     `json:"multiple" yaml:"multiple"`
	Correct     []int    `json:"correct" yaml:"correct"`
	Explanation string   `json:"explanation" yaml:"explanation"`
}

// SanitizedQuestion is the client-visible view of a Question.
type SanitizedQuestion struct {
	ID       string   `json:"id,omitempty"`
	Topic    string   `json:"topic"`
	Text     string   `json:"text"`
	Code     string   `json:"code"`
	Options  []string `json:"options"`
	Multiple bool     `json:"multiple"`
}

// Sanitize strips answer keys and explanations, preserving order and all
// other fields.
func Sanitize(questions []Question) []SanitizedQuestion {
	out := make([]SanitizedQuestion, len(questions))
	for i, q := range questions {
		out[i] = SanitizedQuestion{
			ID:       q.ID,
			Topic:    q.Topic,
			Text:     q.Text,
			Code:     q.Code,
			Options:  q.Options,
			Multiple: q.Multiple,
		}
	}
	return out
}

// Validate checks every question in the bank: options present, answer key
// indices in bounds, exactly one correct index for single-select and at
// least one for multi-select.
func Validate(questions []Question) error {
	for i, q := range questions {
		if q.Text == "" {
			return fmt.Errorf("question %d: empty text", i)
		}
		if len(q.Options) == 0 {
			return fmt.Errorf("question %d: no options", i)
		}
		if len(q.Correct) == 0 {
			return fmt.Errorf("question %d: no correct indices", i)
		}
		if !q.Multiple && len(q.Correct) != 1 {
			return fmt.Errorf("question %d: single-select must have exactly one correct index, got %d", i, len(q.Correct))
		}
		for _, c := range q.Correct {
			if c < 0 || c >= len(q.Options) {
				return fmt.Errorf("question %d: correct index %d out of range [0,%d)", i, c, len(q.Options))
			}
		}
	}
	return nil
}
