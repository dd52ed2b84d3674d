package config

import (
	"fmt"

	"github.com/benchforge/stepgen/pkg/step"
)

// DefaultTolerance is the relative verification tolerance recorded for every
// configured parameter unless overridden.
const DefaultTolerance = 0.05

// Option configures the synthesizer.
type Option func(*Synthesizer)

// WithTolerance overrides the default relative tolerance.
func WithTolerance(tolerance float64) Option {
	return func(s *Synthesizer) {
		if tolerance > 0 {
			s.tolerance = tolerance
		}
	}
}

// Synthesizer derives configuration records from steps. It holds no mutable
// state, so a single instance can serve concurrent callers.
type Synthesizer struct {
	tolerance float64
}

// New constructs a Synthesizer applying any provided options.
func New(options ...Option) *Synthesizer {
	s := &Synthesizer{tolerance: DefaultTolerance}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Synthesize builds the configuration record for a step. Parameters without
// an explicit target are omitted: a none-valued entry requests a measurement
// in the code artifact but configures nothing.
func (s *Synthesizer) Synthesize(st step.Step) (Config, error) {
	if err := st.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	actions := st.OrderedActions()
	actionNames := make([]string, len(actions))
	for i, a := range actions {
		actionNames[i] = string(a)
	}

	parameters := make(map[string]Parameter)
	for name, param := range st.Parameters {
		if v, ok := param.Value(); ok {
			parameters[name] = Parameter{Value: v, Tolerance: s.tolerance}
		}
	}

	addresses := make([]step.Address, len(st.Addresses))
	copy(addresses, st.Addresses)

	cfg := Config{
		StepInfo: StepInfo{
			Description:   st.OriginalText,
			Timestamp:     st.FormattedTimestamp(),
			PrimaryAction: string(st.PrimaryAction()),
		},
		Actions:            actionNames,
		Equipment:          st.SortedEquipment(),
		Parameters:         parameters,
		Addresses:          addresses,
		RegisterOperations: s.registerOperations(st),
		Verification:       s.verification(st, parameters),
	}
	return cfg, nil
}

// registerOperations mirrors the per-address statements of the code
// artifact: one entry per address in list order, a write when the step sets,
// otherwise a read, with the expected literal attached when the step
// verifies.
func (s *Synthesizer) registerOperations(st step.Step) []RegisterOperation {
	ops := make([]RegisterOperation, 0, len(st.Addresses))
	writing := st.Has(step.ActionSet)

	for i, addr := range st.Addresses {
		position := i + 1
		op := RegisterOperation{
			Address:   addr,
			Position:  position,
			Operation: "read",
		}
		if writing {
			op.Operation = "write"
			v := registerValue(st, position)
			op.Value = &v
		}
		if st.Has(step.ActionVerify) {
			v := registerValue(st, position)
			op.ExpectedValue = &v
		}
		ops = append(ops, op)
	}
	return ops
}

func (s *Synthesizer) verification(st step.Step, parameters map[string]Parameter) Verification {
	enabled := st.Has(step.ActionVerify)
	if !enabled {
		return Verification{}
	}

	tolerances := make(map[string]float64, len(parameters))
	for name := range parameters {
		tolerances[name] = s.tolerance
	}
	if len(tolerances) == 0 {
		tolerances = nil
	}
	return Verification{Enabled: true, Tolerances: tolerances}
}

// registerValue resolves the value written to (or expected at) the address
// at the given 1-based position: the positional pass-through parameter
// first, then the shared value parameter, then zero.
func registerValue(st step.Step, position int) float64 {
	if v, ok := st.Parameters[fmt.Sprintf("reg_value_%d", position)].Value(); ok {
		return v
	}
	if v, ok := st.Parameters[step.ParamValue].Value(); ok {
		return v
	}
	return 0
}
