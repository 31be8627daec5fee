package device

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const devicesJSON = `{
  "devices": {
    "com.apple.CoreSimulator.SimRuntime.iOS-17-0": [
      {
        "udid": "A1",
        "name": "iPhone 11",
        "state": "Booted",
        "isAvailable": true,
        "deviceTypeIdentifier": "com.apple.CoreSimulator.SimDeviceType.iPhone-11"
      },
      {
        "udid": "B2",
        "name": "iPad Pro (11-inch)",
        "state": "Shutdown",
        "isAvailable": true,
        "deviceTypeIdentifier": "com.apple.CoreSimulator.SimDeviceType.iPad-Pro--11-inch-"
      },
      {
        "udid": "C3",
        "name": "iPhone 6s",
        "state": "Shutdown",
        "isAvailable": false,
        "deviceTypeIdentifier": "com.apple.CoreSimulator.SimDeviceType.iPhone-6s"
      }
    ],
    "com.apple.CoreSimulator.SimRuntime.watchOS-10-0": [
      {
        "udid": "D4",
        "name": "Apple Watch Series 9 (45mm)",
        "state": "Shutdown",
        "isAvailable": true,
        "deviceTypeIdentifier": "com.apple.CoreSimulator.SimDeviceType.Apple-Watch-Series-9-45mm"
      }
    ]
  }
}`

const deviceTypesJSON = `{
  "devicetypes": [
    {
      "productFamily": "iPhone",
      "identifier": "com.apple.CoreSimulator.SimDeviceType.iPhone-11",
      "modelIdentifier": "iPhone12,1",
      "name": "iPhone 11"
    },
    {
      "productFamily": "iPad",
      "identifier": "com.apple.CoreSimulator.SimDeviceType.iPad-Pro--11-inch-",
      "modelIdentifier": "iPad8,1",
      "name": "iPad Pro (11-inch)"
    },
    {
      "productFamily": "Apple Watch",
      "identifier": "com.apple.CoreSimulator.SimDeviceType.Apple-Watch-Series-9-45mm",
      "modelIdentifier": "Watch7,4",
      "name": "Apple Watch Series 9 (45mm)"
    }
  ]
}`

type fakeRunner struct {
	outputs map[string]string
	calls   []string
}

func (f *fakeRunner) RunSilent(ctx context.Context, name string, args []string) ([]byte, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, key)
	out, ok := f.outputs[key]
	if !ok {
		return nil, errors.New("unexpected command: " + key)
	}
	return []byte(out), nil
}

func newFakeManager() (*Manager, *fakeRunner) {
	r := &fakeRunner{outputs: map[string]string{
		"xcrun simctl list devices -j":                      devicesJSON,
		"xcrun simctl list devicetypes -j":                  deviceTypesJSON,
		"xcrun simctl getenv A1 SIMULATOR_MODEL_IDENTIFIER": "iPhone12,3\n",
	}}
	return &Manager{runner: r}, r
}

func TestManagerList(t *testing.T) {
	m, _ := newFakeManager()

	sims, err := m.List(context.Background(), "", false)
	require.NoError(t, err)
	require.Len(t, sims, 3)

	assert.Equal(t, "A1", sims[0].UDID)
	assert.Equal(t, PlatformIOS, sims[0].Platform)
	assert.Equal(t, "17.0", sims[0].OSVersion)
	assert.Equal(t, StateBooted, sims[0].State)
	assert.Equal(t, ModelUnknown, sims[0].Model)

	ios, err := m.List(context.Background(), PlatformIOS, false)
	require.NoError(t, err)
	assert.Len(t, ios, 2)

	booted, err := m.List(context.Background(), "", true)
	require.NoError(t, err)
	require.Len(t, booted, 1)
	assert.Equal(t, "iPhone 11", booted[0].Name)
}

func TestManagerGet(t *testing.T) {
	m, _ := newFakeManager()
	ctx := context.Background()

	s, err := m.Get(ctx, "B2")
	require.NoError(t, err)
	assert.Equal(t, "iPad Pro (11-inch)", s.Name)

	s, err = m.Get(ctx, "IPHONE 11")
	require.NoError(t, err)
	assert.Equal(t, "A1", s.UDID)

	s, err = m.Get(ctx, "watch")
	require.NoError(t, err)
	assert.Equal(t, "D4", s.UDID)

	_, err = m.Get(ctx, "pixel")
	assert.Error(t, err)
}

func TestManagerListDeviceTypes(t *testing.T) {
	m, _ := newFakeManager()

	types, err := m.ListDeviceTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 3)

	assert.Equal(t, "iPhone12,1", types[0].ModelIdentifier)
	assert.Equal(t, ModelIPhone11, types[0].Model)
	assert.Equal(t, PlatformIOS, types[0].Platform)
	assert.Equal(t, ModelIPadPro11, types[1].Model)
	assert.Equal(t, ModelUnknown, types[2].Model)
	assert.Equal(t, PlatformWatchOS, types[2].Platform)
}

func TestManagerResolveModels(t *testing.T) {
	m, r := newFakeManager()
	ctx := context.Background()

	sims, err := m.List(ctx, "", false)
	require.NoError(t, err)
	require.NoError(t, m.ResolveModels(ctx, sims))

	// booted simulators report their live environment
	assert.Equal(t, "iPhone12,3", sims[0].Identifier)
	assert.Equal(t, ModelIPhone11Pro, sims[0].Model)

	assert.Equal(t, "iPad8,1", sims[1].Identifier)
	assert.Equal(t, ModelIPadPro11, sims[1].Model)

	assert.Equal(t, "Watch7,4", sims[2].Identifier)
	assert.Equal(t, ModelUnknown, sims[2].Model)

	assert.Contains(t, r.calls, "xcrun simctl getenv A1 SIMULATOR_MODEL_IDENTIFIER")
	assert.NotContains(t, r.calls, "xcrun simctl getenv B2 SIMULATOR_MODEL_IDENTIFIER")
}

func TestManagerModelIdentifierRequiresBoot(t *testing.T) {
	m, _ := newFakeManager()

	_, err := m.ModelIdentifier(context.Background(), &Simulator{UDID: "B2", Name: "iPad", State: StateShutdown})
	assert.Error(t, err)

	id, err := m.ModelIdentifier(context.Background(), &Simulator{UDID: "A1", Name: "iPhone 11", State: StateBooted})
	require.NoError(t, err)
	assert.Equal(t, "iPhone12,3", id)
}

func TestParseRuntime(t *testing.T) {
	tests := []struct {
		in       string
		platform Platform
		version  string
	}{
		{"com.apple.CoreSimulator.SimRuntime.iOS-17-0", PlatformIOS, "17.0"},
		{"com.apple.CoreSimulator.SimRuntime.watchOS-10-2", PlatformWatchOS, "10.2"},
		{"com.apple.CoreSimulator.SimRuntime.tvOS-17-0", PlatformTVOS, "17.0"},
		{"com.apple.CoreSimulator.SimRuntime.xrOS-1-0", PlatformVisionOS, "1.0"},
		{"something", Platform("unknown"), ""},
	}
	for _, tt := range tests {
		p, v := parseRuntime(tt.in)
		assert.Equal(t, tt.platform, p, tt.in)
		assert.Equal(t, tt.version, v, tt.in)
	}
}
