package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidMovie   = errors.New("movie violates a datastore constraint")
)

// DependencyError reports a failed call to the datastore. Op names the
// operation that failed and is safe to expose to clients.
type DependencyError struct {
	Op  string
	Err error
}

func NewDependencyError(op string, err error) *DependencyError {
	return &DependencyError{Op: op, Err: err}
}

func (e *DependencyError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
