package geometry

import (
	"context"
	"time"

	"github.com/arnavsurve/devicectl/internal/facade"
	"github.com/arnavsurve/devicectl/internal/logging"
	"github.com/arnavsurve/devicectl/internal/watcher"
	"github.com/sirupsen/logrus"
)

const DefaultDebounce = 150 * time.Millisecond

// FileSource turns edits of a geometry file into facade events.
type FileSource struct {
	path     string
	debounce time.Duration
	last     *Geometry
	log      logrus.FieldLogger
}

// NewFileSource watches path. initial is the geometry the facade was built
// from and is used to tell orientation changes from layout changes.
func NewFileSource(path string, initial *Geometry, log logrus.FieldLogger) *FileSource {
	return &FileSource{
		path:     path,
		debounce: DefaultDebounce,
		last:     initial,
		log:      log.WithField("path", path),
	}
}

func (s *FileSource) Events(ctx context.Context) (<-chan facade.Event, error) {
	w, err := watcher.New(s.debounce)
	if err != nil {
		return nil, err
	}
	if err := w.AddFile(s.path); err != nil {
		w.Close()
		return nil, err
	}

	changes := w.Watch(ctx)
	out := make(chan facade.Event)

	go func() {
		defer close(out)
		defer w.Close()

		for range changes {
			g, err := Load(s.path)
			if err != nil {
				logging.Event(s.log, "geometry_reload").WithError(err).Warn("keeping previous geometry")
				continue
			}

			ev := EventFor(s.last, g)
			s.last = g
			logging.Event(s.log, "geometry_reload").WithField("kind", ev.Kind).Debug("geometry changed")

			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// EventFor describes the move from prev to next. The event carries the full
// new state; its kind is orientation when either orientation differs, layout
// otherwise.
func EventFor(prev, next *Geometry) facade.Event {
	width := next.Window.Width
	ev := facade.Event{
		Kind:                 facade.EventLayout,
		DeviceOrientation:    next.DeviceOrientation(),
		InterfaceOrientation: next.InterfaceOrientation(),
		WindowWidth:          &width,
	}
	if prev == nil || prev.Orientation != next.Orientation {
		ev.Kind = facade.EventOrientation
	}
	return ev
}
