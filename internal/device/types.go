package device

// Platform represents a target platform
type Platform string

const (
	PlatformIOS      Platform = "ios"
	PlatformMacOS    Platform = "macos"
	PlatformWatchOS  Platform = "watchos"
	PlatformTVOS     Platform = "tvos"
	PlatformVisionOS Platform = "visionos"
)

// DeviceState represents the current state of a simulator
type DeviceState string

const (
	StateShutdown     DeviceState = "Shutdown"
	StateBooted       DeviceState = "Booted"
	StateBooting      DeviceState = "Booting"
	StateShuttingDown DeviceState = "Shutting Down"
)

// Simulator is a CoreSimulator device as reported by simctl.
type Simulator struct {
	UDID       string      `json:"udid"`
	Name       string      `json:"name"`
	TypeID     string      `json:"device_type"`
	Platform   Platform    `json:"platform"`
	OSVersion  string      `json:"os_version"`
	State      DeviceState `json:"state"`
	Identifier string      `json:"identifier,omitempty"`
	Model      Model       `json:"model"`
}

// DeviceType is a simulator hardware profile and the model it emulates.
type DeviceType struct {
	Identifier      string   `json:"identifier"`
	Name            string   `json:"name"`
	Platform        Platform `json:"platform"`
	ModelIdentifier string   `json:"model_identifier"`
	Model           Model    `json:"model"`
}
