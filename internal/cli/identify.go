package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/arnavsurve/devicectl/internal/device"
	"github.com/arnavsurve/devicectl/internal/logging"
	"github.com/arnavsurve/devicectl/internal/ui"
	"github.com/spf13/cobra"
)

// detectFlags are shared by every command that resolves the running model.
type detectFlags struct {
	identifier string
	override   string
	simulator  string
}

func (f *detectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.override, "override", "", "Simulator model identifier (default: $"+device.SimulatorModelEnv+")")
	cmd.Flags().StringVar(&f.simulator, "simulator-device", "", "Read the model identifier from a booted simulator (name or UDID)")
}

func (f *detectFlags) detect(cmd *cobra.Command) (device.Detection, error) {
	opts := device.DetectOptions{Identifier: f.identifier}

	switch {
	case cmd.Flags().Changed("override"):
		opts.Override = &f.override
	case f.simulator != "":
		mgr := device.NewManager()
		sim, err := mgr.Get(cmd.Context(), f.simulator)
		if err != nil {
			return device.Detection{}, err
		}
		id, err := mgr.ModelIdentifier(cmd.Context(), sim)
		if err != nil {
			return device.Detection{}, err
		}
		opts.Override = &id
	}

	d, err := device.Detect(opts)
	if err != nil {
		// a failed probe still yields an unknown model
		logging.Event(logger, "identify").WithError(err).Warn("could not read machine identifier")
	}
	logging.Event(logger, "identify").WithField("identifier", d.Identifier).WithField("model", d.Model).Debug("resolved")
	return d, nil
}

func identifyCmd() *cobra.Command {
	var (
		flags   detectFlags
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "identify [identifier]",
		Short: "Resolve a hardware identifier to a device model",
		Long: `Resolve a hardware identifier to a device model.

Without an argument the machine field of uname(2) is used. Host architectures
(x86_64, i386) mean the process runs in a simulator; the model then comes
from --override, --simulator-device or $` + device.SimulatorModelEnv + `.`,
		Example: `  devicectl identify
  devicectl identify iPhone12,1
  devicectl identify x86_64 --override iPad8,1
  devicectl identify x86_64 --simulator-device "iPhone 11"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.identifier = args[0]
			}

			d, err := flags.detect(cmd)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), d)
			}

			fields := []ui.Field{
				{Label: "Identifier", Value: d.Identifier},
				{Label: "Simulator", Value: strconv.FormatBool(d.Simulator)},
			}
			if d.Simulator {
				fields = append(fields, ui.Field{Label: "Override", Value: d.Override})
			}
			fields = append(fields,
				ui.Field{Label: "Model", Value: d.Model.String()},
				ui.Field{Label: "Family", Value: d.Family.String()},
			)
			ui.NewRendererTo(cmd.OutOrStdout()).RenderFields("Device", fields)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func modelsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List known hardware identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]ui.ModelRow, 0, len(device.Identifiers()))
			for _, id := range device.Identifiers() {
				m, _ := device.Lookup(id)
				rows = append(rows, ui.ModelRow{
					Identifier: id,
					Model:      m.String(),
					Family:     m.Family().String(),
				})
			}

			if jsonOut {
				type entry struct {
					Identifier string `json:"identifier"`
					Model      string `json:"model"`
					Family     string `json:"family"`
				}
				out := make([]entry, len(rows))
				for i, r := range rows {
					out[i] = entry(r)
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			ui.NewRendererTo(cmd.OutOrStdout()).RenderModelTable(rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
