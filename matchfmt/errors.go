package matchfmt

import "errors"

// Wrapped by every [ArgumentError]
var ErrInvalidArgument = errors.New("invalid matcher argument")

// Returned by the Ensure* guards when a matcher is called with arguments it
// can't work with. Error() is the fully rendered, multi-line message and is
// meant to be shown to the test author as-is.
type ArgumentError struct {
	// name of the matcher, as it appears in the hint line
	Matcher string
	msg     string
}

func newArgumentError(matcher, msg string) *ArgumentError {
	return &ArgumentError{Matcher: matcher, msg: msg}
}

func (e *ArgumentError) Error() string {
	return e.msg
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// Tests to see if error is or wraps a [*ArgumentError]. If not, returns nil
func IsArgumentError(err error) (ae *ArgumentError) {
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
