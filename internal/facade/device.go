// Package facade holds the classification of the running device and
// republishes it whenever orientation or layout changes.
//
// A Device is built once at startup and passed to whatever needs it. The
// model and aspect ratio are fixed at construction; orientation and window
// width change through Apply, and every change is published as an immutable
// Snapshot.
package facade

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/arnavsurve/devicectl/internal/device"
	"github.com/arnavsurve/devicectl/internal/screen"
	"github.com/sirupsen/logrus"
)

// Snapshot is a point-in-time view of the device. It is never mutated after
// publication.
type Snapshot struct {
	Identifier           string                      `json:"identifier"`
	IsSimulator          bool                        `json:"is_simulator"`
	Model                device.Model                `json:"model"`
	Family               device.Family               `json:"family"`
	AspectRatio          screen.AspectRatio          `json:"aspect_ratio"`
	IsIPad               bool                        `json:"is_ipad"`
	IsIPhone             bool                        `json:"is_iphone"`
	DeviceOrientation    screen.DeviceOrientation    `json:"device_orientation"`
	InterfaceOrientation screen.InterfaceOrientation `json:"interface_orientation"`
	WindowWidth          float64                     `json:"window_width"`
	WindowClass          screen.WindowClass          `json:"window_class"`
	MasterPanelWidth     float64                     `json:"master_panel_width"`
}

type Options struct {
	Detection device.Detection

	ScreenWidth  float64
	ScreenHeight float64
	WindowWidth  float64

	DeviceOrientation    screen.DeviceOrientation
	InterfaceOrientation screen.InterfaceOrientation

	Logger logrus.FieldLogger
}

type Device struct {
	detection device.Detection
	aspect    screen.AspectRatio
	log       logrus.FieldLogger

	current atomic.Pointer[Snapshot]

	// mu guards subs and serialises Apply so subscribers see snapshots in order.
	mu     sync.Mutex
	subs   map[int]chan Snapshot
	nextID int
}

func New(opts Options) *Device {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	d := &Device{
		detection: opts.Detection,
		aspect:    screen.ClassifyAspectRatio(opts.ScreenWidth, opts.ScreenHeight),
		log:       log,
		subs:      make(map[int]chan Snapshot),
	}
	if d.detection.Model == "" {
		d.detection.Model = device.ModelUnknown
	}

	devOrientation := opts.DeviceOrientation
	if devOrientation == "" {
		devOrientation = screen.DeviceUnknown
	}
	uiOrientation := opts.InterfaceOrientation
	if uiOrientation == "" {
		uiOrientation = screen.InterfaceUnknown
	}

	snap := d.build(devOrientation, uiOrientation, opts.WindowWidth)
	d.current.Store(&snap)

	d.log.WithFields(logrus.Fields{
		"event":        "device_resolved",
		"identifier":   snap.Identifier,
		"model":        snap.Model,
		"aspect_ratio": snap.AspectRatio,
	}).Debug("device classified")

	return d
}

func (d *Device) build(devO screen.DeviceOrientation, uiO screen.InterfaceOrientation, width float64) Snapshot {
	class := screen.ClassifyWindow(width)
	return Snapshot{
		Identifier:           d.detection.Identifier,
		IsSimulator:          d.detection.Simulator,
		Model:                d.detection.Model,
		Family:               d.detection.Model.Family(),
		AspectRatio:          d.aspect,
		IsIPad:               d.aspect.IsIPad(),
		IsIPhone:             d.aspect.IsIPhone(),
		DeviceOrientation:    devO,
		InterfaceOrientation: uiO,
		WindowWidth:          width,
		WindowClass:          class,
		MasterPanelWidth:     screen.PanelWidth(class),
	}
}

// Snapshot returns the most recently published snapshot.
func (d *Device) Snapshot() Snapshot {
	return *d.current.Load()
}

func (d *Device) Model() device.Model { return d.detection.Model }

func (d *Device) AspectRatio() screen.AspectRatio { return d.aspect }

// WindowClass classifies the latest window width.
func (d *Device) WindowClass() screen.WindowClass {
	return screen.ClassifyWindow(d.current.Load().WindowWidth)
}

// Apply folds ev into the current state and publishes the result to every
// subscriber.
func (d *Device) Apply(ev Event) Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	prev := d.current.Load()
	devO, uiO, width := prev.DeviceOrientation, prev.InterfaceOrientation, prev.WindowWidth
	if ev.DeviceOrientation != "" {
		devO = ev.DeviceOrientation
	}
	if ev.InterfaceOrientation != "" {
		uiO = ev.InterfaceOrientation
	}
	if ev.WindowWidth != nil {
		width = *ev.WindowWidth
	}

	snap := d.build(devO, uiO, width)
	d.current.Store(&snap)

	d.log.WithFields(logrus.Fields{
		"event":        string(ev.Kind),
		"orientation":  snap.InterfaceOrientation,
		"window_class": snap.WindowClass,
	}).Debug("publishing snapshot")

	for _, ch := range d.subs {
		publish(ch, snap)
	}
	return snap
}

// publish replaces any undelivered snapshot with snap.
func publish(ch chan Snapshot, snap Snapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}

// Subscribe returns a channel that first yields the current snapshot and then
// every later one. A slow reader only ever sees the latest snapshot. The
// channel is closed once ctx is done.
func (d *Device) Subscribe(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.subs[id] = ch
	ch <- *d.current.Load()
	d.mu.Unlock()

	go func() {
		<-ctx.Done()
		d.mu.Lock()
		delete(d.subs, id)
		close(ch)
		d.mu.Unlock()
	}()

	return ch
}

// Run applies events from src until ctx is done or the source closes.
func (d *Device) Run(ctx context.Context, src EventSource) error {
	events, err := src.Events(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			d.Apply(ev)
		}
	}
}
