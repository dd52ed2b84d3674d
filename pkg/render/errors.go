package render

import (
	"fmt"
	"strings"

	"github.com/benchforge/stepgen/pkg/step"
)

// TemplateSelectionError reports that no registered template family matched
// a step. The generic family is a catch-all, so in a correctly assembled
// registry this signals a wiring bug rather than a bad step.
type TemplateSelectionError struct {
	Actions   []step.Action
	Equipment []string
}

func (e *TemplateSelectionError) Error() string {
	actions := make([]string, len(e.Actions))
	for i, a := range e.Actions {
		actions[i] = string(a)
	}
	return fmt.Sprintf("render: no template matches step (actions=[%s] equipment=[%s])",
		strings.Join(actions, " "), strings.Join(e.Equipment, " "))
}
