package device

import (
	"slices"
	"strings"
)

// Model is a known hardware model, named by its marketing identity.
type Model string

const (
	ModelIPodTouch7thGen  Model = "iPodTouch7thGen"
	ModelIPhone6s         Model = "iPhone6s"
	ModelIPhone6sPlus     Model = "iPhone6sPlus"
	ModelIPhone7          Model = "iPhone7"
	ModelIPhone7Plus      Model = "iPhone7Plus"
	ModelIPhoneSE         Model = "iPhoneSE"
	ModelIPhone8          Model = "iPhone8"
	ModelIPhone8Plus      Model = "iPhone8Plus"
	ModelIPhoneX          Model = "iPhoneX"
	ModelIPhoneXS         Model = "iPhoneXS"
	ModelIPhoneXSMax      Model = "iPhoneXSMax"
	ModelIPhoneXR         Model = "iPhoneXR"
	ModelIPhone11         Model = "iPhone11"
	ModelIPhone11Pro      Model = "iPhone11Pro"
	ModelIPhone11ProMax   Model = "iPhone11ProMax"
	ModelIPad5thGen       Model = "iPad5thGen"
	ModelIPad6thGen       Model = "iPad6thGen"
	ModelIPad7thGen       Model = "iPad7thGen"
	ModelIPadAir2         Model = "iPadAir2"
	ModelIPadAir3rdGen    Model = "iPadAir3rdGen"
	ModelIPadMini4        Model = "iPadMini4"
	ModelIPadMini5thGen   Model = "iPadMini5thGen"
	ModelIPadPro97        Model = "iPadPro97"
	ModelIPadPro129       Model = "iPadPro129"
	ModelIPadPro1292ndGen Model = "iPadPro1292ndGen"
	ModelIPadPro105       Model = "iPadPro105"
	ModelIPadPro11        Model = "iPadPro11"
	ModelIPadPro1293rdGen Model = "iPadPro1293rdGen"
	ModelUnknown          Model = "unknown"
)

// Models lists every named model in declaration order, excluding ModelUnknown.
var Models = []Model{
	ModelIPodTouch7thGen,
	ModelIPhone6s,
	ModelIPhone6sPlus,
	ModelIPhone7,
	ModelIPhone7Plus,
	ModelIPhoneSE,
	ModelIPhone8,
	ModelIPhone8Plus,
	ModelIPhoneX,
	ModelIPhoneXS,
	ModelIPhoneXSMax,
	ModelIPhoneXR,
	ModelIPhone11,
	ModelIPhone11Pro,
	ModelIPhone11ProMax,
	ModelIPad5thGen,
	ModelIPad6thGen,
	ModelIPad7thGen,
	ModelIPadAir2,
	ModelIPadAir3rdGen,
	ModelIPadMini4,
	ModelIPadMini5thGen,
	ModelIPadPro97,
	ModelIPadPro129,
	ModelIPadPro1292ndGen,
	ModelIPadPro105,
	ModelIPadPro11,
	ModelIPadPro1293rdGen,
}

func (m Model) String() string { return string(m) }

// IsKnown reports whether m is one of the named models.
func (m Model) IsKnown() bool {
	return slices.Contains(Models, m)
}

// Family is the coarse product line a model belongs to.
type Family string

const (
	FamilyIPhone  Family = "iPhone"
	FamilyIPad    Family = "iPad"
	FamilyIPod    Family = "iPod"
	FamilyUnknown Family = "unknown"
)

func (f Family) String() string { return string(f) }

// Family derives the product line from the model name.
func (m Model) Family() Family {
	if !m.IsKnown() {
		return FamilyUnknown
	}
	name := string(m)
	switch {
	case strings.HasPrefix(name, "iPhone"):
		return FamilyIPhone
	case strings.HasPrefix(name, "iPad"):
		return FamilyIPad
	case strings.HasPrefix(name, "iPod"):
		return FamilyIPod
	default:
		return FamilyUnknown
	}
}
