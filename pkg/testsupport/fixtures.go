// Package testsupport provides shared fixtures for contract tests across the
// synthesis packages. Steps are built with a fixed timestamp so artifact
// comparisons stay byte-stable.
package testsupport

import (
	"context"
	"time"

	"github.com/benchforge/stepgen/pkg/step"
)

// Context returns the context used by contract tests.
func Context() context.Context {
	return context.Background()
}

// Timestamp is the fixed generation time all fixtures share.
func Timestamp() time.Time {
	return time.Date(2025, 5, 2, 15, 43, 50, 0, time.UTC)
}

// PowerSupplyStep models "set the Keysight power supply voltage to 3.3V and
// measure the current": a full pipeline against a recognized instrument.
func PowerSupplyStep() step.Step {
	return step.Step{
		OriginalText: "Set the Keysight power supply voltage to 3.3V and measure the current.",
		Timestamp:    Timestamp(),
		Actions: []step.Action{
			step.ActionInitialize,
			step.ActionSet,
			step.ActionGet,
			step.ActionVerify,
			step.ActionShutdown,
		},
		Equipment: []string{"keysight"},
		Parameters: map[string]step.Param{
			step.ParamVoltage: step.Target(3.3),
			step.ParamCurrent: step.NoTarget(),
		},
	}
}

// RegisterStep models "write 7 to registers 10 and 12": a register-only
// step with a shared write value.
func RegisterStep() step.Step {
	return step.Step{
		OriginalText: "Write the value 7 to register 10 and register 12.",
		Timestamp:    Timestamp(),
		Actions:      []step.Action{step.ActionSet},
		Parameters: map[string]step.Param{
			step.ParamValue: step.Target(7),
		},
		Addresses: []step.Address{
			step.NumericAddress(10),
			step.NumericAddress(12),
		},
	}
}

// MeasureStep models a generic configure-and-measure step with no equipment
// category and a parameter present without a target.
func MeasureStep() step.Step {
	return step.Step{
		OriginalText: "Set the voltage to 3.3V and measure the current.",
		Timestamp:    Timestamp(),
		Actions:      []step.Action{step.ActionSet, step.ActionGet},
		Parameters: map[string]step.Param{
			step.ParamVoltage: step.Target(3.3),
			step.ParamCurrent: step.NoTarget(),
		},
	}
}
