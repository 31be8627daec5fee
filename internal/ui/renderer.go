package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Renderer handles terminal output with colors and spinners
type Renderer struct {
	out io.Writer

	mu          sync.Mutex
	spinning    bool
	spinnerDone chan struct{}
}

// NewRenderer creates a Renderer writing to stderr
func NewRenderer() *Renderer {
	return NewRendererTo(os.Stderr)
}

func NewRendererTo(w io.Writer) *Renderer {
	return &Renderer{out: w}
}

// Colors
var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// Spinner frames
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StartSpinner starts an animated spinner with a message
func (r *Renderer) StartSpinner(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.spinning {
		return
	}

	r.spinning = true
	r.spinnerDone = make(chan struct{})
	done := r.spinnerDone

	msg := fmt.Sprintf(format, args...)

	go func() {
		frame := 0
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				r.mu.Lock()
				fmt.Fprintf(r.out, "\r%s %s", cyan(spinnerFrames[frame]), msg)
				r.mu.Unlock()
				frame = (frame + 1) % len(spinnerFrames)
			}
		}
	}()
}

// StopSpinner stops the spinner and clears its line
func (r *Renderer) StopSpinner() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.spinning {
		return
	}

	close(r.spinnerDone)
	r.spinning = false

	fmt.Fprint(r.out, "\r\033[K")
}

// Success prints a success message
func (r *Renderer) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(r.out, "%s %s\n", green("✓"), msg)
}

// Error prints an error message
func (r *Renderer) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(r.out, "%s %s\n", red("✗"), msg)
}

// Warning prints a warning message
func (r *Renderer) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(r.out, "%s %s\n", yellow("!"), msg)
}

// Info prints an info message
func (r *Renderer) Info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(r.out, "  %s\n", msg)
}

// Dim prints dimmed/secondary text
func (r *Renderer) Dim(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(r.out, "  %s\n", dim(msg))
}

// Field is one labelled value in a profile.
type Field struct {
	Label string
	Value string
}

// RenderFields prints a titled, aligned list of fields. Fields whose value is
// "unknown" are dimmed.
func (r *Renderer) RenderFields(title string, fields []Field) {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Label))
	}

	fmt.Fprintf(r.out, "%s\n", bold(title))
	for _, f := range fields {
		value := f.Value
		if value == "unknown" || value == "" {
			value = dim("unknown")
		}
		fmt.Fprintf(r.out, "  %-*s  %s\n", width, f.Label, value)
	}
}

// ModelRow pairs a hardware identifier with the model it resolves to.
type ModelRow struct {
	Identifier string
	Model      string
	Family     string
}

// RenderModelTable prints identifiers grouped by family.
func (r *Renderer) RenderModelTable(rows []ModelRow) {
	if len(rows) == 0 {
		r.Info("No models")
		return
	}

	byFamily := make(map[string][]ModelRow)
	for _, row := range rows {
		byFamily[row.Family] = append(byFamily[row.Family], row)
	}

	families := make([]string, 0, len(byFamily))
	for f := range byFamily {
		families = append(families, f)
	}
	sort.Strings(families)

	for _, family := range families {
		fmt.Fprintf(r.out, "\n%s\n", bold(family))
		for _, row := range byFamily[family] {
			fmt.Fprintf(r.out, "  %-12s %s\n", row.Identifier, row.Model)
		}
	}
	fmt.Fprintln(r.out)
}

// SimulatorInfo contains simulator information for display
type SimulatorInfo struct {
	Name       string
	State      string
	OSVersion  string
	Platform   string
	Identifier string
	Model      string
}

// RenderSimulatorList prints simulators grouped by platform
func (r *Renderer) RenderSimulatorList(sims []SimulatorInfo) {
	if len(sims) == 0 {
		r.Info("No simulators found")
		return
	}

	byPlatform := make(map[string][]SimulatorInfo)
	var platforms []string
	for _, s := range sims {
		if _, ok := byPlatform[s.Platform]; !ok {
			platforms = append(platforms, s.Platform)
		}
		byPlatform[s.Platform] = append(byPlatform[s.Platform], s)
	}

	for _, platform := range platforms {
		fmt.Fprintf(r.out, "\n%s\n", bold(strings.ToUpper(platform)))
		for _, s := range byPlatform[platform] {
			stateColor := dim
			if s.State == "Booted" {
				stateColor = green
			}
			model := s.Model
			if model == "unknown" || model == "" {
				model = dim("unknown")
			}
			fmt.Fprintf(r.out, "  %s %s %s %s %s\n",
				s.Name,
				dim(s.OSVersion),
				stateColor(fmt.Sprintf("[%s]", s.State)),
				dim(s.Identifier),
				model,
			)
		}
	}
	fmt.Fprintln(r.out)
}
