package box

import "fmt"

// UnresolvedError reports a resolve that exhausted the parent chain without
// finding a registration. Under MustResolve and the generic Resolve this
// condition is treated as a wiring bug and escalates to a panic.
type UnresolvedError struct {
	Key string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("box: no service registered for [%s]", e.Key)
}

// ServiceTypeError reports a stored payload whose type does not match the one
// requested at the resolve boundary.
type ServiceTypeError struct {
	Key  string
	Want string
	Got  string
}

func (e *ServiceTypeError) Error() string {
	return fmt.Sprintf("box: service [%s] resolved to %s, want %s", e.Key, e.Got, e.Want)
}
