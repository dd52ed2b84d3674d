package step

// Action names one operation requested by a test step. Presence drives which
// code sections a template family includes; the order actions were listed is
// irrelevant because emitted code always follows the fixed pipeline order.
type Action string

const (
	ActionInitialize Action = "initialize"
	ActionConnect    Action = "connect"
	ActionSet        Action = "set"
	ActionGet        Action = "get"
	ActionVerify     Action = "verify"
	ActionWait       Action = "wait"
	ActionDisconnect Action = "disconnect"
	ActionShutdown   Action = "shutdown"
)

// pipelineOrder is the fixed execution order of generated code. Disconnect
// shares the shutdown slot, and connect is accepted on input but no template
// family defines a section for it.
var pipelineOrder = []Action{
	ActionInitialize,
	ActionConnect,
	ActionSet,
	ActionWait,
	ActionGet,
	ActionVerify,
	ActionDisconnect,
	ActionShutdown,
}

// Valid reports whether the action belongs to the recognized vocabulary.
func (a Action) Valid() bool {
	switch a {
	case ActionInitialize, ActionConnect, ActionSet, ActionGet,
		ActionVerify, ActionWait, ActionDisconnect, ActionShutdown:
		return true
	default:
		return false
	}
}

// OrderedActions filters the pipeline order down to the actions present in
// the given set, yielding a deterministic sequence regardless of input order.
func OrderedActions(actions []Action) []Action {
	present := make(map[Action]struct{}, len(actions))
	for _, a := range actions {
		present[a] = struct{}{}
	}

	out := make([]Action, 0, len(present))
	for _, a := range pipelineOrder {
		if _, ok := present[a]; ok {
			out = append(out, a)
		}
	}
	return out
}
