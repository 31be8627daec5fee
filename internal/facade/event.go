package facade

import (
	"context"

	"github.com/arnavsurve/devicectl/internal/screen"
)

type EventKind string

const (
	// EventOrientation follows a device or interface rotation.
	EventOrientation EventKind = "orientation"
	// EventLayout follows a window resize or accessibility layout change.
	EventLayout EventKind = "layout"
)

// Event describes a change. Zero-valued fields leave the current value as is.
type Event struct {
	Kind                 EventKind
	DeviceOrientation    screen.DeviceOrientation
	InterfaceOrientation screen.InterfaceOrientation
	WindowWidth          *float64
}

// EventSource delivers orientation and layout changes. The returned channel
// is closed when the source stops.
type EventSource interface {
	Events(ctx context.Context) (<-chan Event, error)
}
