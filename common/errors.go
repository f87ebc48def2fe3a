package common

import "fmt"

type GoDBErrorCode int

const (
	// InvalidPlanError indicates a plan tree that violates the structural
	// preconditions of the optimizer: a nil node, a nil child, or a node
	// reachable through more than one parent.
	InvalidPlanError GoDBErrorCode = iota
	// UnknownRuleError indicates a request for an optimizer rule that is not
	// registered.
	UnknownRuleError
	// InvalidConfigError indicates an optimizer configuration that cannot be
	// applied, such as combining special rule sets with explicit rule names.
	InvalidConfigError
)

func (ec GoDBErrorCode) String() string {
	switch ec {
	case InvalidPlanError:
		return "InvalidPlanError"
	case UnknownRuleError:
		return "UnknownRuleError"
	case InvalidConfigError:
		return "InvalidConfigError"
	}
	return "unknown"
}

// GoDBError is the custom error type for the planner and optimizer.
// It wraps a specific GoDBErrorCode with a detailed message.
type GoDBError struct {
	Code      GoDBErrorCode
	ErrString string
}

func (e GoDBError) Error() string {
	return fmt.Sprintf("err: %s; msg: %s", e.Code.String(), e.ErrString)
}

// NewError builds a GoDBError with a formatted message.
func NewError(code GoDBErrorCode, format string, args ...any) GoDBError {
	return GoDBError{Code: code, ErrString: fmt.Sprintf(format, args...)}
}
