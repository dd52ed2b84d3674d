package step

import (
	"errors"
	"fmt"
	"strings"
)

var errNoActions = errors.New("step: at least one action is required")

// Validate checks the structural invariants a step must satisfy before
// synthesis. Malformed steps are synthesis-time errors reported to the
// caller; a valid step with absent optional fields is never an error.
func (s Step) Validate() error {
	if len(s.Actions) == 0 {
		return errNoActions
	}
	for _, a := range s.Actions {
		if !a.Valid() {
			return fmt.Errorf("step: unknown action %q", a)
		}
	}
	for name := range s.Parameters {
		if strings.TrimSpace(name) == "" {
			return errors.New("step: parameter name is required")
		}
	}
	for i, addr := range s.Addresses {
		if addr.IsZero() {
			return fmt.Errorf("step: address at position %d is empty", i+1)
		}
	}
	return nil
}
