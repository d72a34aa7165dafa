package valuetype

import (
	"errors"
	"fmt"
)

// Wrapped by every [ClassificationError]
var ErrUnclassifiable = errors.New("unclassifiable value")

// Returned by [Classify] when a value's kind falls outside the known set.
type ClassificationError struct {
	value any
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("value of unknown type: %#v (%T)", e.value, e.value)
}

// The value that could not be classified
func (e *ClassificationError) Value() any {
	return e.value
}

func (e *ClassificationError) Unwrap() error {
	return ErrUnclassifiable
}

// Tests to see if [err] is or wraps a [*ClassificationError]. If not, returns nil
func IsClassificationError(err error) (ce *ClassificationError) {
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}
