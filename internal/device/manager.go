package device

import (
	"context"
	"fmt"
	"strings"

	"github.com/arnavsurve/devicectl/internal/process"
	"github.com/tidwall/gjson"
)

type commandRunner interface {
	RunSilent(ctx context.Context, name string, args []string) ([]byte, error)
}

// Manager queries CoreSimulator through xcrun simctl.
type Manager struct {
	runner commandRunner
}

func NewManager() *Manager {
	return &Manager{
		runner: process.NewRunner(),
	}
}

func (m *Manager) List(ctx context.Context, platform Platform, onlyBooted bool) ([]*Simulator, error) {
	output, err := m.runner.RunSilent(ctx, "xcrun", []string{"simctl", "list", "devices", "-j"})
	if err != nil {
		return nil, fmt.Errorf("simctl list: %w", err)
	}
	return parseSimulators(output, platform, onlyBooted), nil
}

func parseSimulators(output []byte, platform Platform, onlyBooted bool) []*Simulator {
	var sims []*Simulator

	gjson.ParseBytes(output).Get("devices").ForEach(func(runtime, devicesArray gjson.Result) bool {
		plat, version := parseRuntime(runtime.String())
		if platform != "" && plat != platform {
			return true
		}

		devicesArray.ForEach(func(_, dev gjson.Result) bool {
			if !dev.Get("isAvailable").Bool() {
				return true
			}

			state := DeviceState(dev.Get("state").String())
			if onlyBooted && state != StateBooted {
				return true
			}

			sims = append(sims, &Simulator{
				UDID:      dev.Get("udid").String(),
				Name:      dev.Get("name").String(),
				TypeID:    dev.Get("deviceTypeIdentifier").String(),
				Platform:  plat,
				OSVersion: version,
				State:     state,
				Model:     ModelUnknown,
			})
			return true
		})
		return true
	})

	return sims
}

// Get finds a simulator by UDID (exact), name (exact, case-insensitive), or name substring.
func (m *Manager) Get(ctx context.Context, nameOrUDID string) (*Simulator, error) {
	sims, err := m.List(ctx, "", false)
	if err != nil {
		return nil, err
	}

	for _, s := range sims {
		if s.UDID == nameOrUDID {
			return s, nil
		}
	}

	nameOrUDID = strings.ToLower(nameOrUDID)
	for _, s := range sims {
		if strings.ToLower(s.Name) == nameOrUDID {
			return s, nil
		}
	}

	for _, s := range sims {
		if strings.Contains(strings.ToLower(s.Name), nameOrUDID) {
			return s, nil
		}
	}

	return nil, fmt.Errorf("simulator not found: %s", nameOrUDID)
}

// ModelIdentifier reads SIMULATOR_MODEL_IDENTIFIER from a booted simulator.
func (m *Manager) ModelIdentifier(ctx context.Context, sim *Simulator) (string, error) {
	if sim.State != StateBooted {
		return "", fmt.Errorf("%s is not booted", sim.Name)
	}

	output, err := m.runner.RunSilent(ctx, "xcrun", []string{"simctl", "getenv", sim.UDID, SimulatorModelEnv})
	if err != nil {
		return "", fmt.Errorf("getenv on %s: %w", sim.Name, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// ResolveModels fills Identifier and Model for each simulator. Booted
// simulators are asked for their environment; the rest fall back to the
// model identifier of their device type.
func (m *Manager) ResolveModels(ctx context.Context, sims []*Simulator) error {
	types, err := m.ListDeviceTypes(ctx)
	if err != nil {
		return err
	}

	byType := make(map[string]string, len(types))
	for _, t := range types {
		byType[t.Identifier] = t.ModelIdentifier
	}

	for _, s := range sims {
		id := byType[s.TypeID]
		if s.State == StateBooted {
			if live, err := m.ModelIdentifier(ctx, s); err == nil && live != "" {
				id = live
			}
		}
		s.Identifier = id
		if id == "" {
			s.Model = ModelUnknown
			continue
		}
		s.Model = Resolve(id, false, nil)
	}
	return nil
}

func (m *Manager) ListDeviceTypes(ctx context.Context) ([]DeviceType, error) {
	output, err := m.runner.RunSilent(ctx, "xcrun", []string{"simctl", "list", "devicetypes", "-j"})
	if err != nil {
		return nil, fmt.Errorf("simctl list devicetypes: %w", err)
	}
	return parseDeviceTypes(output), nil
}

func parseDeviceTypes(output []byte) []DeviceType {
	var types []DeviceType
	gjson.ParseBytes(output).Get("devicetypes").ForEach(func(_, dt gjson.Result) bool {
		id := dt.Get("identifier").String()
		modelID := dt.Get("modelIdentifier").String()
		types = append(types, DeviceType{
			Identifier:      id,
			Name:            dt.Get("name").String(),
			Platform:        platformFromIdentifier(id),
			ModelIdentifier: modelID,
			Model:           Resolve(modelID, false, nil),
		})
		return true
	})
	return types
}

func platformFromIdentifier(id string) Platform {
	id = strings.ToLower(id)
	switch {
	case strings.Contains(id, "iphone"), strings.Contains(id, "ipad"), strings.Contains(id, "ipod"):
		return PlatformIOS
	case strings.Contains(id, "watch"):
		return PlatformWatchOS
	case strings.Contains(id, "tv"):
		return PlatformTVOS
	case strings.Contains(id, "vision"):
		return PlatformVisionOS
	default:
		return Platform("unknown")
	}
}

func parseRuntime(runtime string) (Platform, string) {
	runtime = strings.ToLower(runtime)

	var platform Platform
	switch {
	case strings.Contains(runtime, "ios"):
		platform = PlatformIOS
	case strings.Contains(runtime, "macos"):
		platform = PlatformMacOS
	case strings.Contains(runtime, "watchos"):
		platform = PlatformWatchOS
	case strings.Contains(runtime, "tvos"):
		platform = PlatformTVOS
	case strings.Contains(runtime, "xros"), strings.Contains(runtime, "visionos"):
		platform = PlatformVisionOS
	default:
		platform = Platform("unknown")
	}

	version := ""
	parts := strings.Split(runtime, "-")
	if len(parts) >= 2 {
		for i := len(parts) - 1; i >= 0; i-- {
			if parts[i] != "" && parts[i][0] >= '0' && parts[i][0] <= '9' {
				if version == "" {
					version = parts[i]
				} else {
					version = parts[i] + "." + version
				}
			} else {
				break
			}
		}
	}

	return platform, version
}
