package device

import "os"

// Detection records the inputs and result of resolving the running model.
type Detection struct {
	Identifier string `json:"identifier"`
	Simulator  bool   `json:"simulator"`
	Override   string `json:"override,omitempty"`
	Model      Model  `json:"model"`
	Family     Family `json:"family"`
}

// DetectOptions overrides the live sources Detect reads from.
type DetectOptions struct {
	// Identifier replaces the uname machine field when non-empty.
	Identifier string
	// Override takes precedence over the simulator environment variable.
	Override *string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// OverrideFromEnv returns the simulator model identifier from the
// environment, or nil when unset.
func OverrideFromEnv(lookup func(string) (string, bool)) *string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, ok := lookup(SimulatorModelEnv)
	if !ok {
		return nil
	}
	return &v
}

// Detect resolves the model of the running machine. The returned Detection is
// always usable; a uname failure is reported alongside a ModelUnknown result.
func Detect(opts DetectOptions) (Detection, error) {
	var probeErr error

	raw := opts.Identifier
	if raw == "" {
		raw, probeErr = MachineIdentifier()
	}

	d := Detection{
		Identifier: raw,
		Simulator:  IsSimulator(raw),
	}

	override := opts.Override
	if d.Simulator && override == nil {
		override = OverrideFromEnv(opts.LookupEnv)
	}
	if d.Simulator && override != nil {
		d.Override = *override
	}

	d.Model = Resolve(raw, d.Simulator, override)
	d.Family = d.Model.Family()
	return d, probeErr
}
