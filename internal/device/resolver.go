package device

import (
	"slices"
)

// SimulatorModelEnv is set inside simulator processes to the hardware
// identifier of the simulated device.
const SimulatorModelEnv = "SIMULATOR_MODEL_IDENTIFIER"

// Hardware revisions that share a marketing model map to the same Model.
var identifierTable = map[string]Model{
	"iPod9,1":    ModelIPodTouch7thGen,
	"iPhone8,1":  ModelIPhone6s,
	"iPhone8,2":  ModelIPhone6sPlus,
	"iPhone9,1":  ModelIPhone7,
	"iPhone9,3":  ModelIPhone7,
	"iPhone9,2":  ModelIPhone7Plus,
	"iPhone9,4":  ModelIPhone7Plus,
	"iPhone8,4":  ModelIPhoneSE,
	"iPhone10,1": ModelIPhone8,
	"iPhone10,4": ModelIPhone8,
	"iPhone10,2": ModelIPhone8Plus,
	"iPhone10,5": ModelIPhone8Plus,
	"iPhone10,3": ModelIPhoneX,
	"iPhone10,6": ModelIPhoneX,
	"iPhone11,2": ModelIPhoneXS,
	"iPhone11,4": ModelIPhoneXSMax,
	"iPhone11,6": ModelIPhoneXSMax,
	"iPhone11,8": ModelIPhoneXR,
	"iPhone12,1": ModelIPhone11,
	"iPhone12,3": ModelIPhone11Pro,
	"iPhone12,5": ModelIPhone11ProMax,
	"iPad6,11":   ModelIPad5thGen,
	"iPad6,12":   ModelIPad5thGen,
	"iPad7,5":    ModelIPad6thGen,
	"iPad7,6":    ModelIPad6thGen,
	"iPad7,11":   ModelIPad7thGen,
	"iPad7,12":   ModelIPad7thGen,
	"iPad5,3":    ModelIPadAir2,
	"iPad5,4":    ModelIPadAir2,
	"iPad11,4":   ModelIPadAir3rdGen,
	"iPad11,5":   ModelIPadAir3rdGen,
	"iPad5,1":    ModelIPadMini4,
	"iPad5,2":    ModelIPadMini4,
	"iPad11,1":   ModelIPadMini5thGen,
	"iPad11,2":   ModelIPadMini5thGen,
	"iPad6,3":    ModelIPadPro97,
	"iPad6,4":    ModelIPadPro97,
	"iPad6,7":    ModelIPadPro129,
	"iPad6,8":    ModelIPadPro129,
	"iPad7,1":    ModelIPadPro1292ndGen,
	"iPad7,2":    ModelIPadPro1292ndGen,
	"iPad7,3":    ModelIPadPro105,
	"iPad7,4":    ModelIPadPro105,
	"iPad8,1":    ModelIPadPro11,
	"iPad8,2":    ModelIPadPro11,
	"iPad8,3":    ModelIPadPro11,
	"iPad8,4":    ModelIPadPro11,
	"iPad8,5":    ModelIPadPro1293rdGen,
	"iPad8,6":    ModelIPadPro1293rdGen,
	"iPad8,7":    ModelIPadPro1293rdGen,
	"iPad8,8":    ModelIPadPro1293rdGen,
}

// On a simulator uname reports the host architecture, not a device.
var simulatorArchitectures = []string{"x86_64", "i386"}

// IsSimulator reports whether raw is a host architecture rather than a
// device identifier.
func IsSimulator(raw string) bool {
	return slices.Contains(simulatorArchitectures, raw)
}

// Lookup returns the model mapped to id.
func Lookup(id string) (Model, bool) {
	m, ok := identifierTable[id]
	return m, ok
}

// Identifiers returns every known hardware identifier, sorted.
func Identifiers() []string {
	ids := make([]string, 0, len(identifierTable))
	for id := range identifierTable {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Resolve maps a raw hardware identifier to a Model. In simulator mode raw is
// ignored and override, when present, is looked up instead. Unmapped input
// resolves to ModelUnknown.
func Resolve(raw string, isSimulator bool, override *string) Model {
	id := raw
	if isSimulator {
		if override == nil {
			return ModelUnknown
		}
		id = *override
	}
	if m, ok := identifierTable[id]; ok {
		return m
	}
	return ModelUnknown
}
