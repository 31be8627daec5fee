package cli

import (
	"fmt"

	"github.com/arnavsurve/devicectl/internal/device"
	"github.com/arnavsurve/devicectl/internal/process"
	"github.com/arnavsurve/devicectl/internal/ui"
	"github.com/spf13/cobra"
)

func simulatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "simulators",
		Aliases: []string{"sims"},
		Short:   "Resolve simulator models through simctl",
		Long:    `List simulators and simulator device types with the device model each one emulates.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.Root().PersistentPreRun(cmd, args)
			if !process.CommandExists("xcrun") {
				return fmt.Errorf("xcrun not found: simulators require Xcode command line tools")
			}
			return nil
		},
	}

	cmd.AddCommand(simulatorsListCmd())
	cmd.AddCommand(simulatorsTypesCmd())

	return cmd
}

func simulatorsListCmd() *cobra.Command {
	var (
		platform string
		booted   bool
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List simulators and the model each one emulates",
		Example: `  devicectl simulators list
  devicectl simulators list --booted
  devicectl simulators list --platform ios --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mgr := device.NewManager()
			renderer := ui.NewRenderer()

			renderer.StartSpinner("Querying simulators...")
			sims, err := mgr.List(ctx, device.Platform(platform), booted)
			if err == nil {
				err = mgr.ResolveModels(ctx, sims)
			}
			renderer.StopSpinner()
			if err != nil {
				return fmt.Errorf("failed to list simulators: %w", err)
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), sims)
			}

			display := make([]ui.SimulatorInfo, len(sims))
			for i, s := range sims {
				display[i] = ui.SimulatorInfo{
					Name:       s.Name,
					State:      string(s.State),
					OSVersion:  s.OSVersion,
					Platform:   string(s.Platform),
					Identifier: s.Identifier,
					Model:      s.Model.String(),
				}
			}
			ui.NewRendererTo(cmd.OutOrStdout()).RenderSimulatorList(display)
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Filter by platform (ios, watchos, tvos, visionos)")
	cmd.Flags().BoolVar(&booted, "booted", false, "Show only booted simulators")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func simulatorsTypesCmd() *cobra.Command {
	var (
		platform  string
		knownOnly bool
	)

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List simulator device types with their resolved model",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := device.NewManager()

			types, err := mgr.ListDeviceTypes(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, t := range types {
				if platform != "" && string(t.Platform) != platform {
					continue
				}
				if knownOnly && !t.Model.IsKnown() {
					continue
				}
				fmt.Fprintf(out, "%-40s %-12s %s\n", t.Name, t.ModelIdentifier, t.Model)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Filter by platform")
	cmd.Flags().BoolVar(&knownOnly, "known", false, "Only show types with a known model")

	return cmd
}
