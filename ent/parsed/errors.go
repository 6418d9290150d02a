package parsed

import (
	"errors"
	"fmt"
	"time"
)

// UnparsableError is returned when a name string cannot be parsed.
// Type classifies the reason. A Scientific type means the input looks
// like a genuine name the grammar nevertheless failed on.
type UnparsableError struct {
	Type NameType
	Name string
}

func (e *UnparsableError) Error() string {
	return fmt.Sprintf("unparsable %s name: %q", e.Type, e.Name)
}

// ErrTimeout signals that structural matching exceeded its wall-clock
// budget. It is distinct from any UnparsableError classification.
var ErrTimeout = errors.New("parsing timeout")

// TimeoutError carries the input and budget of a timed out parse. It
// matches ErrTimeout with errors.Is.
type TimeoutError struct {
	Name   string
	Budget time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("parsing of %q exceeded %s", e.Name, e.Budget)
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}
