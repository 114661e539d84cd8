package ct

import (
	"errors"
	"fmt"
)

// ErrMissingKey matches every *MissingKeyError under errors.Is.
var ErrMissingKey = errors.New("missing key")

// MissingKeyError reports a lookup of a key that the map does not hold.
type MissingKeyError struct {
	Key any
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%v: %q", ErrMissingKey, fmt.Sprint(e.Key))
}

// Is reports whether target is ErrMissingKey.
func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingKey
}
