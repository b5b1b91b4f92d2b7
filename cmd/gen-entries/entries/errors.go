package entries

import (
	"errors"
	"fmt"
)

var (
	ErrBadSignature = errors.New("invalid function signature")
	ErrBadParameter = errors.New("invalid parameter")
	ErrBadEncoding  = errors.New("invalid UTF-8")
)

// LineError is a problem found on one line of an entries file.
// Text is the offending line, or the offending parameter for ErrBadParameter.
// Lines with ErrBadEncoding are not echoed.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if errors.Is(e.Err, ErrBadEncoding) {
		return fmt.Sprintf("%d: %v", e.Line, e.Err)
	}
	if errors.Is(e.Err, ErrBadParameter) {
		return fmt.Sprintf("%d: parameter '%s'", e.Line, e.Text)
	}
	return fmt.Sprintf("%d: '%s'", e.Line, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }
