package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/arnavsurve/devicectl/internal/facade"
	"github.com/arnavsurve/devicectl/internal/geometry"
	"github.com/arnavsurve/devicectl/internal/logging"
	"github.com/arnavsurve/devicectl/internal/screen"
	"github.com/arnavsurve/devicectl/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func parseDimension(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

func aspectCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "aspect <width> <height>",
		Short: "Classify screen dimensions into an aspect ratio family",
		Example: `  devicectl aspect 375 812
  devicectl aspect 1024 768`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseDimension("width", args[0])
			if err != nil {
				return err
			}
			height, err := parseDimension("height", args[1])
			if err != nil {
				return err
			}

			family := screen.ClassifyAspectRatio(width, height)
			ratio := screen.Ratio(width, height)

			if jsonOut {
				out := struct {
					Ratio       *float64           `json:"ratio"`
					AspectRatio screen.AspectRatio `json:"aspect_ratio"`
				}{AspectRatio: family}
				if height > 0 {
					out.Ratio = &ratio
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			ratioText := "unknown"
			if height > 0 {
				ratioText = strconv.FormatFloat(ratio, 'f', 2, 64)
			}
			ui.NewRendererTo(cmd.OutOrStdout()).RenderFields("Screen", []ui.Field{
				{Label: "Ratio", Value: ratioText},
				{Label: "Aspect ratio", Value: family.String()},
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func windowCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "window <width>",
		Short: "Window size class and master panel width for a window width",
		Example: `  devicectl window 375
  devicectl window 1024`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseDimension("width", args[0])
			if err != nil {
				return err
			}

			class := screen.ClassifyWindow(width)
			panel := screen.PanelWidth(class)

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), struct {
					WindowClass screen.WindowClass `json:"window_class"`
					PanelWidth  float64            `json:"panel_width"`
				}{class, panel})
			}

			ui.NewRendererTo(cmd.OutOrStdout()).RenderFields("Window", []ui.Field{
				{Label: "Window class", Value: class.String()},
				{Label: "Panel width", Value: strconv.FormatFloat(panel, 'f', -1, 64)},
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

// newFacade builds the device context from the detection flags and a
// geometry file.
func newFacade(cmd *cobra.Command, flags *detectFlags, path string) (*facade.Device, *geometry.Geometry, error) {
	g, err := geometry.Load(path)
	if err != nil {
		return nil, nil, err
	}

	d, err := flags.detect(cmd)
	if err != nil {
		return nil, nil, err
	}

	dev := facade.New(facade.Options{
		Detection:            d,
		ScreenWidth:          g.Screen.Width,
		ScreenHeight:         g.Screen.Height,
		WindowWidth:          g.Window.Width,
		DeviceOrientation:    g.DeviceOrientation(),
		InterfaceOrientation: g.InterfaceOrientation(),
		Logger:               logger,
	})
	return dev, g, nil
}

func snapshotFields(s facade.Snapshot) []ui.Field {
	return []ui.Field{
		{Label: "Identifier", Value: s.Identifier},
		{Label: "Simulator", Value: strconv.FormatBool(s.IsSimulator)},
		{Label: "Model", Value: s.Model.String()},
		{Label: "Family", Value: s.Family.String()},
		{Label: "Aspect ratio", Value: s.AspectRatio.String()},
		{Label: "Orientation", Value: s.DeviceOrientation.String()},
		{Label: "UI orientation", Value: s.InterfaceOrientation.String()},
		{Label: "Window width", Value: strconv.FormatFloat(s.WindowWidth, 'f', -1, 64)},
		{Label: "Window class", Value: s.WindowClass.String()},
		{Label: "Panel width", Value: strconv.FormatFloat(s.MasterPanelWidth, 'f', -1, 64)},
	}
}

func profileCmd() *cobra.Command {
	var (
		flags   detectFlags
		geoPath string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Classify a device and its geometry in one snapshot",
		Example: `  devicectl profile --geometry geometry.yaml
  devicectl profile --geometry geometry.yaml --identifier iPad8,1 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, _, err := newFacade(cmd, &flags, geoPath)
			if err != nil {
				return err
			}

			snap := dev.Snapshot()
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), snap)
			}
			ui.NewRendererTo(cmd.OutOrStdout()).RenderFields("Profile", snapshotFields(snap))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.identifier, "identifier", "", "Hardware identifier (default: uname machine)")
	cmd.Flags().StringVarP(&geoPath, "geometry", "g", "", "Geometry YAML file")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("geometry")

	return cmd
}

func watchCmd() *cobra.Command {
	var (
		flags   detectFlags
		geoPath string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Republish the classification whenever the geometry file changes",
		Long: `Watch a geometry file and print a new snapshot each time orientation or
window width changes. The device model and aspect ratio are resolved once at
startup; the window class is recomputed on every change.`,
		Example: `  devicectl watch --geometry geometry.yaml
  devicectl watch -g geometry.yaml --identifier iPad8,1 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, g, err := newFacade(cmd, &flags, geoPath)
			if err != nil {
				return err
			}

			renderer := ui.NewRendererTo(cmd.OutOrStdout())
			renderer.Dim("Watching %s (Ctrl+C to stop)...", geoPath)

			src := geometry.NewFileSource(geoPath, g, logger)
			return runWatch(cmd.Context(), dev, src, func(s facade.Snapshot) error {
				if jsonOut {
					return writeJSON(cmd.OutOrStdout(), s)
				}
				renderer.RenderFields(time.Now().Format("15:04:05"), snapshotFields(s))
				return nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.identifier, "identifier", "", "Hardware identifier (default: uname machine)")
	cmd.Flags().StringVarP(&geoPath, "geometry", "g", "", "Geometry YAML file")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output snapshots as JSON")
	_ = cmd.MarkFlagRequired("geometry")

	return cmd
}

// runWatch feeds src into dev and hands every published snapshot to emit
// until ctx is done or the source stops.
func runWatch(ctx context.Context, dev *facade.Device, src facade.EventSource, emit func(facade.Snapshot) error) error {
	g, gctx := errgroup.WithContext(ctx)
	subCtx, cancel := context.WithCancel(gctx)

	snapshots := dev.Subscribe(subCtx)

	g.Go(func() error {
		defer cancel()
		return dev.Run(subCtx, src)
	})

	g.Go(func() error {
		for s := range snapshots {
			if err := emit(s); err != nil {
				cancel()
				return err
			}
		}
		return nil
	})

	err := g.Wait()
	logging.Event(logger, "watch").Debug("stopped")
	return err
}
