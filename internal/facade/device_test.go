package facade

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/arnavsurve/devicectl/internal/device"
	"github.com/arnavsurve/devicectl/internal/screen"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func width(w float64) *float64 { return &w }

func newIPhone() *Device {
	return New(Options{
		Detection: device.Detection{
			Identifier: "iPhone12,1",
			Model:      device.ModelIPhone11,
			Family:     device.FamilyIPhone,
		},
		ScreenWidth:          375,
		ScreenHeight:         812,
		WindowWidth:          375,
		DeviceOrientation:    screen.DevicePortrait,
		InterfaceOrientation: screen.InterfacePortrait,
		Logger:               quietLogger(),
	})
}

func TestNewSnapshot(t *testing.T) {
	d := newIPhone()
	snap := d.Snapshot()

	assert.Equal(t, device.ModelIPhone11, snap.Model)
	assert.Equal(t, device.FamilyIPhone, snap.Family)
	assert.Equal(t, screen.AspectIPhoneLong, snap.AspectRatio)
	assert.True(t, snap.IsIPhone)
	assert.False(t, snap.IsIPad)
	assert.Equal(t, screen.WindowVeryNarrow, snap.WindowClass)
	assert.Equal(t, 0.0, snap.MasterPanelWidth)
	assert.Equal(t, screen.DevicePortrait, snap.DeviceOrientation)
	assert.Equal(t, device.ModelIPhone11, d.Model())
	assert.Equal(t, screen.AspectIPhoneLong, d.AspectRatio())
}

func TestNewDefaults(t *testing.T) {
	d := New(Options{Logger: quietLogger()})
	snap := d.Snapshot()

	assert.Equal(t, device.ModelUnknown, snap.Model)
	assert.Equal(t, device.FamilyUnknown, snap.Family)
	assert.Equal(t, screen.AspectUnknown, snap.AspectRatio)
	assert.Equal(t, screen.DeviceUnknown, snap.DeviceOrientation)
	assert.Equal(t, screen.InterfaceUnknown, snap.InterfaceOrientation)
}

func TestApplyRecomputesWindowClass(t *testing.T) {
	d := New(Options{
		Detection:   device.Detection{Identifier: "iPad8,1", Model: device.ModelIPadPro11},
		ScreenWidth: 1024, ScreenHeight: 768,
		WindowWidth: 1024,
		Logger:      quietLogger(),
	})
	assert.Equal(t, screen.WindowWide, d.WindowClass())

	snap := d.Apply(Event{Kind: EventLayout, WindowWidth: width(678)})
	assert.Equal(t, screen.WindowNarrow, snap.WindowClass)
	assert.Equal(t, 320.0, snap.MasterPanelWidth)
	assert.Equal(t, screen.WindowNarrow, d.WindowClass())

	snap = d.Apply(Event{Kind: EventLayout, WindowWidth: width(1366)})
	assert.Equal(t, screen.WindowVeryWide, snap.WindowClass)
	assert.Equal(t, 414.0, snap.MasterPanelWidth)

	// model and aspect ratio stay fixed
	assert.Equal(t, device.ModelIPadPro11, snap.Model)
	assert.Equal(t, screen.AspectIPad, snap.AspectRatio)
}

func TestApplyKeepsUnsetFields(t *testing.T) {
	d := newIPhone()

	snap := d.Apply(Event{Kind: EventOrientation, DeviceOrientation: screen.DeviceFaceUp})
	assert.Equal(t, screen.DeviceFaceUp, snap.DeviceOrientation)
	assert.Equal(t, screen.InterfacePortrait, snap.InterfaceOrientation)
	assert.Equal(t, 375.0, snap.WindowWidth)

	snap = d.Apply(Event{
		Kind:                 EventOrientation,
		DeviceOrientation:    screen.DeviceLandscapeLeft,
		InterfaceOrientation: screen.InterfaceLandscapeRight,
		WindowWidth:          width(812),
	})
	assert.Equal(t, screen.InterfaceLandscapeRight, snap.InterfaceOrientation)
	assert.Equal(t, screen.WindowNarrow, snap.WindowClass)
	assert.Equal(t, snap, d.Snapshot())
}

func TestSubscribeDeliversCurrentThenUpdates(t *testing.T) {
	d := newIPhone()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := d.Subscribe(ctx)
	first := <-sub
	assert.Equal(t, screen.InterfacePortrait, first.InterfaceOrientation)

	d.Apply(Event{Kind: EventOrientation, InterfaceOrientation: screen.InterfaceLandscapeLeft})
	next := <-sub
	assert.Equal(t, screen.InterfaceLandscapeLeft, next.InterfaceOrientation)
}

func TestSubscribeLatestWins(t *testing.T) {
	d := newIPhone()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := d.Subscribe(ctx)
	for _, w := range []float64{700, 1000, 1200} {
		d.Apply(Event{Kind: EventLayout, WindowWidth: width(w)})
	}

	snap := <-sub
	assert.Equal(t, 1200.0, snap.WindowWidth)
	assert.Equal(t, screen.WindowVeryWide, snap.WindowClass)

	select {
	case extra := <-sub:
		t.Fatalf("unexpected stale snapshot: %+v", extra)
	default:
	}
}

func TestSubscribeClosesOnCancel(t *testing.T) {
	d := newIPhone()
	ctx, cancel := context.WithCancel(context.Background())

	sub := d.Subscribe(ctx)
	<-sub
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-sub:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	// publishing after the subscriber left must not panic
	d.Apply(Event{Kind: EventLayout, WindowWidth: width(900)})
}

type sliceSource []Event

func (s sliceSource) Events(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event)
	go func() {
		defer close(ch)
		for _, ev := range s {
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

func TestRunAppliesSourceEvents(t *testing.T) {
	d := newIPhone()

	src := sliceSource{
		{Kind: EventOrientation, InterfaceOrientation: screen.InterfaceLandscapeLeft},
		{Kind: EventLayout, WindowWidth: width(1100)},
	}
	require.NoError(t, d.Run(context.Background(), src))

	snap := d.Snapshot()
	assert.Equal(t, screen.InterfaceLandscapeLeft, snap.InterfaceOrientation)
	assert.Equal(t, screen.WindowWide, snap.WindowClass)
	assert.Equal(t, 375.0, snap.MasterPanelWidth)
}

func TestConcurrentApplyAndRead(t *testing.T) {
	d := newIPhone()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := d.Subscribe(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			d.Apply(Event{Kind: EventLayout, WindowWidth: width(float64(i * 10))})
		}
	}()

	for {
		select {
		case snap := <-sub:
			assert.Equal(t, screen.ClassifyWindow(snap.WindowWidth), snap.WindowClass)
			assert.Equal(t, screen.PanelWidth(snap.WindowClass), snap.MasterPanelWidth)
		case <-done:
			assert.Equal(t, 1990.0, d.Snapshot().WindowWidth)
			return
		}
	}
}
