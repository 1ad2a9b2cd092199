package cc

import "fmt"

// CCError marks a fatal programmer-bug condition detected by the library
// (dereferencing a dropped handle, count overflow/underflow, dropping a
// handle twice, ...). The library panics with a *CCError rather than
// returning one: these are all invariant violations, not recoverable
// runtime errors.
type CCError struct {
	msg string
}

func (e *CCError) Error() string { return e.msg }

func fatalf(format string, args ...any) *CCError {
	return &CCError{msg: fmt.Sprintf("cc: "+format, args...)}
}
