package screen

// Window width breakpoints. Each is the inclusive lower bound of its class.
const (
	NarrowWidth   = 650.0
	WideWidth     = 1000.0
	VeryWideWidth = 1150.0
)

// WindowClass buckets the available window width.
type WindowClass string

const (
	WindowVeryNarrow WindowClass = "veryNarrow"
	WindowNarrow     WindowClass = "narrow"
	WindowWide       WindowClass = "wide"
	WindowVeryWide   WindowClass = "veryWide"
)

// WindowClasses lists every class in ascending width order.
var WindowClasses = []WindowClass{WindowVeryNarrow, WindowNarrow, WindowWide, WindowVeryWide}

func (c WindowClass) String() string { return string(c) }

// ClassifyWindow returns the class for a window width. Widths below
// NarrowWidth, negative ones included, are WindowVeryNarrow.
func ClassifyWindow(width float64) WindowClass {
	switch {
	case width < NarrowWidth:
		return WindowVeryNarrow
	case width < WideWidth:
		return WindowNarrow
	case width < VeryWideWidth:
		return WindowWide
	default:
		return WindowVeryWide
	}
}

// PanelWidth is the width reserved for the master panel at class c. A
// very narrow window has no room for one.
func PanelWidth(c WindowClass) float64 {
	switch c {
	case WindowNarrow:
		return 320
	case WindowWide:
		return 375
	case WindowVeryWide:
		return 414
	default:
		return 0
	}
}
