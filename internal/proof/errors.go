package proof

import "errors"

// Ingestion failure classes. A proof that trips one of these was never
// checked line by line; the failure applies to the input as a whole.
var (
	// ErrEmptyProof means the input contained no proof lines.
	ErrEmptyProof = errors.New("no proof lines read")
	// ErrBadLineNumber means a non-comment line did not start with a line number.
	ErrBadLineNumber = errors.New("missing line number")
	// ErrMissingFormula means nothing followed the line number.
	ErrMissingFormula = errors.New("missing formula")
	// ErrNonConsecutive means line numbers did not run 1, 2, 3, ...
	ErrNonConsecutive = errors.New("line numbers not consecutive")
	// ErrNotWFF means a formula failed to parse.
	ErrNotWFF = errors.New("formula is not a WFF")
)

// LineError ties an ingestion failure to the input that caused it.
// It unwraps to one of the sentinel errors above, and its Error text is
// the exact diagnostic that appears in the transcript.
type LineError struct {
	Line int    // proof line number, 0 when none was parsed
	Raw  string // offending input text
	Err  error
	Msg  string
}

func (e *LineError) Error() string {
	return e.Msg
}

func (e *LineError) Unwrap() error {
	return e.Err
}
