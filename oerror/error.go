package oerror

import "fmt"

// SubcmdError is an error raised by subcmd itself, as opposed to one returned by a host library.
type SubcmdError struct {
	Err string
}

// New formats a SubcmdError.
func New(format string, args ...any) *SubcmdError {
	return &SubcmdError{Err: fmt.Sprintf(format, args...)}
}

func (e *SubcmdError) Error() string {
	return e.Err
}
