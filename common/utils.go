package common

import "fmt"

// Assert checks a condition and panics if it is false.
//
// Use it for invariants of the plan tree that upstream construction must
// guarantee, e.g. a rebuilt node receiving the same number of children it
// had. Conditions a caller can reasonably trigger (bad configuration, a nil
// plan handed to the optimizer) return an error instead.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
