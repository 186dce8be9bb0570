//go:build planardebug

package contract

import (
	"fmt"
	"runtime/debug"
)

// Violation is the panic payload raised by a failed assertion in debug
// builds. It carries the diagnostic message and the captured stack trace.
type Violation struct {
	Message string
	Stack   []byte
}

// Error implements the error interface so recovered violations can be
// reported through ordinary error plumbing.
func (v *Violation) Error() string {
	return "contract violation: " + v.Message
}

// Assert panics with a Violation when cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic(&Violation{Message: msg, Stack: debug.Stack()})
	}
}

// Assertf panics with a formatted Violation when cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(&Violation{Message: fmt.Sprintf(format, args...), Stack: debug.Stack()})
	}
}
