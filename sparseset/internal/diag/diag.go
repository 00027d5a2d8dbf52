// Package diag builds the panic payloads the sparseset package raises on
// precondition violations. Per spec, a violation is a programming error in
// the caller (the world), never a recoverable condition: the storage
// aborts the current execution with a diagnostic identifying the operation
// and the offending state, instead of returning an error.
package diag

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Violation is the payload panic() carries for a precondition violation.
type Violation struct {
	Op     string // the operation that was called, e.g. "InsertUnique"
	Reason string // why the precondition does not hold
	State  any    // a snapshot of the offending receiver state
}

// Error satisfies the error interface so Violation reads naturally in a
// recovered panic or in test output, even though it is never returned as an
// error in the normal control flow.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s\n%s", v.Op, v.Reason, spew.Sdump(v.State))
}

// Panic raises a Violation for op, explaining reason and dumping state.
func Panic(op, reason string, state any) {
	panic(&Violation{Op: op, Reason: reason, State: state})
}
