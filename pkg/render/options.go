package render

// Constants baked into generated artifacts when no override is supplied.
// They describe the behavior of the *generated* code, not of the synthesis
// call itself.
const (
	DefaultPollInterval      = 0.5
	DefaultPollTimeout       = 10.0
	DefaultRelativeTolerance = 0.05
)

// Absolute tolerance bands used by generated wait sections. Waiting succeeds
// as soon as any one monitored parameter enters its band.
const (
	VoltageWaitBand = 0.1
	CurrentWaitBand = 0.01
)

// RenderOptions carries per-request knobs that renderers bake into the
// generated source as literals. The zero value selects all defaults.
type RenderOptions struct {
	// PollInterval is the wait section's re-measure interval in seconds.
	PollInterval float64
	// PollTimeout is the wait section's overall timeout in seconds.
	PollTimeout float64
	// RelativeTolerance is the verify section's relative band (0.05 = ±5%).
	RelativeTolerance float64
}

// Normalize fills unset fields with the default constants.
func (o RenderOptions) Normalize() RenderOptions {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.PollTimeout <= 0 {
		o.PollTimeout = DefaultPollTimeout
	}
	if o.RelativeTolerance <= 0 {
		o.RelativeTolerance = DefaultRelativeTolerance
	}
	return o
}
