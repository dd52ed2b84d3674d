package step

import (
	"sort"
	"strings"
	"time"
)

// TimestampLayout is the format used when embedding the step's generation
// time into code headers and configuration records.
const TimestampLayout = "2006-01-02 15:04:05"

// Step is the normalized description of one hardware test step. Treat it as
// immutable: the synthesis core never mutates a Step, and callers must not
// modify one after handing it to the pipeline.
type Step struct {
	// OriginalText preserves the source sentence verbatim for traceability;
	// it is embedded as a comment block in generated code.
	OriginalText string `json:"original_text" yaml:"original_text"`

	// Timestamp is the generation time, an explicit input so that repeated
	// synthesis from the same record stays byte-identical.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// Actions is the set of requested operations. Presence, not sequence,
	// governs section inclusion.
	Actions []Action `json:"actions" yaml:"actions"`

	// Equipment holds equipment-category tags. Empty means a generic or
	// register-only step.
	Equipment []string `json:"equipment" yaml:"equipment"`

	// Parameters maps recognized parameter names (plus pass-through numeric
	// keys) to optional targets.
	Parameters map[string]Param `json:"parameters" yaml:"parameters"`

	// Addresses is the ordered register-address list. Order is significant:
	// generated read/write lines carry the 1-based list position.
	Addresses []Address `json:"addresses" yaml:"addresses"`
}

// Has reports whether the step requests the given action.
func (s Step) Has(a Action) bool {
	for _, candidate := range s.Actions {
		if candidate == a {
			return true
		}
	}
	return false
}

// HasAny reports whether the step requests any of the given actions.
func (s Step) HasAny(actions ...Action) bool {
	for _, a := range actions {
		if s.Has(a) {
			return true
		}
	}
	return false
}

// HasEquipment reports whether the step carries the given category tag,
// ignoring case.
func (s Step) HasEquipment(tag string) bool {
	for _, candidate := range s.Equipment {
		if strings.EqualFold(candidate, tag) {
			return true
		}
	}
	return false
}

// OrderedActions returns the step's actions in the fixed pipeline order.
func (s Step) OrderedActions() []Action {
	return OrderedActions(s.Actions)
}

// PrimaryAction returns the first present action in pipeline order, or an
// empty Action when the step carries none.
func (s Step) PrimaryAction() Action {
	ordered := s.OrderedActions()
	if len(ordered) == 0 {
		return Action("")
	}
	return ordered[0]
}

// OrderedParameters returns the step's parameter names in canonical order:
// the recognized vocabulary first, then remaining keys sorted. The fixed
// order keeps generated artifacts deterministic.
func (s Step) OrderedParameters() []string {
	out := make([]string, 0, len(s.Parameters))
	seen := make(map[string]struct{}, len(s.Parameters))

	for _, name := range canonicalParams {
		if _, ok := s.Parameters[name]; ok {
			out = append(out, name)
			seen[name] = struct{}{}
		}
	}

	var rest []string
	for name := range s.Parameters {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// SortedEquipment returns the equipment tags sorted, so both artifacts list
// categories in the same order.
func (s Step) SortedEquipment() []string {
	out := make([]string, len(s.Equipment))
	copy(out, s.Equipment)
	sort.Strings(out)
	return out
}

// FormattedTimestamp renders the generation time in the artifact layout.
func (s Step) FormattedTimestamp() string {
	return s.Timestamp.Format(TimestampLayout)
}
