package screen

// DeviceOrientation is the physical orientation of the device.
type DeviceOrientation string

const (
	DevicePortrait           DeviceOrientation = "portrait"
	DevicePortraitUpsideDown DeviceOrientation = "portraitUpsideDown"
	DeviceLandscapeLeft      DeviceOrientation = "landscapeLeft"
	DeviceLandscapeRight     DeviceOrientation = "landscapeRight"
	DeviceFaceUp             DeviceOrientation = "faceUp"
	DeviceFaceDown           DeviceOrientation = "faceDown"
	DeviceUnknown            DeviceOrientation = "unknown"
)

func (o DeviceOrientation) String() string { return string(o) }

// ParseDeviceOrientation returns DeviceUnknown for unrecognised input.
func ParseDeviceOrientation(s string) DeviceOrientation {
	switch o := DeviceOrientation(s); o {
	case DevicePortrait, DevicePortraitUpsideDown, DeviceLandscapeLeft,
		DeviceLandscapeRight, DeviceFaceUp, DeviceFaceDown:
		return o
	default:
		return DeviceUnknown
	}
}

// IsLandscape reports whether the device is held sideways.
func (o DeviceOrientation) IsLandscape() bool {
	return o == DeviceLandscapeLeft || o == DeviceLandscapeRight
}

// InterfaceOrientation is the orientation the UI is laid out in. Unlike
// DeviceOrientation it has no face up/down states.
type InterfaceOrientation string

const (
	InterfacePortrait           InterfaceOrientation = "portrait"
	InterfacePortraitUpsideDown InterfaceOrientation = "portraitUpsideDown"
	InterfaceLandscapeLeft      InterfaceOrientation = "landscapeLeft"
	InterfaceLandscapeRight     InterfaceOrientation = "landscapeRight"
	InterfaceUnknown            InterfaceOrientation = "unknown"
)

func (o InterfaceOrientation) String() string { return string(o) }

// ParseInterfaceOrientation returns InterfaceUnknown for unrecognised input.
func ParseInterfaceOrientation(s string) InterfaceOrientation {
	switch o := InterfaceOrientation(s); o {
	case InterfacePortrait, InterfacePortraitUpsideDown, InterfaceLandscapeLeft, InterfaceLandscapeRight:
		return o
	default:
		return InterfaceUnknown
	}
}

func (o InterfaceOrientation) IsLandscape() bool {
	return o == InterfaceLandscapeLeft || o == InterfaceLandscapeRight
}
