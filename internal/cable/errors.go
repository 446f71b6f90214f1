package cable

import "fmt"

// InvalidParameterError reports an input outside its documented domain.
// Param names the offending field so front ends can point at the right
// control when re-prompting.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

func invalidParam(param, format string, args ...any) error {
	return &InvalidParameterError{Param: param, Reason: fmt.Sprintf(format, args...)}
}
