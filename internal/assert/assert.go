// Package assert is a helper to allow assertions in a more standardized
// and simple manner. Using it makes it clear that this is a debug-time
// check, not production error handling.
package assert

import "fmt"

// DEBUG controls whether Assert actually evaluates its condition. It is a
// const so the compiler can eliminate the call entirely in release builds.
const DEBUG = false

// Assert panics with the formatted message if test is false.
//
// Callers still pay for evaluating the arguments even when DEBUG is false,
// so guard call sites with "if assert.DEBUG { ... }" when the arguments are
// expensive to compute:
//
//	if assert.DEBUG {
//		assert.Assert(sq.IsValid(), "invalid square: %d", sq)
//	}
func Assert(test bool, msg string, a ...interface{}) {
	if !DEBUG {
		return
	}
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
