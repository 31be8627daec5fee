package screen

import (
	"math"
	"slices"
)

// AspectRatio groups screens by their rounded width/height proportion.
type AspectRatio string

const (
	AspectIPhoneShort AspectRatio = "iphoneShort"
	AspectIPhoneLong  AspectRatio = "iphoneLong"
	AspectIPad        AspectRatio = "ipad"
	AspectUnknown     AspectRatio = "unknown"
)

func (a AspectRatio) String() string { return string(a) }

func (a AspectRatio) IsIPad() bool { return a == AspectIPad }

func (a AspectRatio) IsIPhone() bool {
	return a == AspectIPhoneShort || a == AspectIPhoneLong
}

type ratioFamily struct {
	aspect AspectRatio
	// rounded ratios in hundredths; sets must not overlap across families
	hundredths []int
}

// Tablets appear in both orientations, hence two entries for ipad.
var ratioTable = []ratioFamily{
	{AspectIPhoneShort, []int{56}},
	{AspectIPhoneLong, []int{46}},
	{AspectIPad, []int{133, 75}},
}

// roundedHundredths rounds width/height to two decimals, half away from
// zero, and returns the result scaled by 100.
func roundedHundredths(width, height float64) (int, bool) {
	if !(height > 0) || math.IsInf(height, 0) || math.IsNaN(width) || math.IsInf(width, 0) {
		return 0, false
	}
	return int(math.Round(width / height * 100)), true
}

// Ratio returns width/height rounded to two decimal places. Ties round away
// from zero, so 1/8 yields 0.13. It returns NaN when height is not positive.
func Ratio(width, height float64) float64 {
	h, ok := roundedHundredths(width, height)
	if !ok {
		return math.NaN()
	}
	return float64(h) / 100
}

// ClassifyAspectRatio maps screen dimensions to an aspect ratio family.
// Ratios outside every family, and non-positive heights, yield AspectUnknown.
func ClassifyAspectRatio(width, height float64) AspectRatio {
	h, ok := roundedHundredths(width, height)
	if !ok {
		return AspectUnknown
	}
	for _, f := range ratioTable {
		if slices.Contains(f.hundredths, h) {
			return f.aspect
		}
	}
	return AspectUnknown
}
