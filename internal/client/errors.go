package client

// LoadError reports a failed question fetch. The caller should offer a
// retry; controller state is left untouched.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return "load questions: " + e.Err.Error() }
func (e *LoadError) Unwrap() error { return e.Err }

// SubmissionError reports a failed submit. Recorded answers survive so the
// user can retry without losing work.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string { return "submit answers: " + e.Err.Error() }
func (e *SubmissionError) Unwrap() error { return e.Err }
