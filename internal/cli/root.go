package cli

import (
	"context"

	"github.com/arnavsurve/devicectl/internal/logging"
	"github.com/arnavsurve/devicectl/internal/process"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = logrus.New()
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "devicectl",
		Short: "Classify Apple device models and screen geometry",
		Long: `devicectl resolves hardware identifiers to device models and classifies
screen geometry into aspect ratio families and window size classes.

Common workflows:
  devicectl identify                      Classify the machine you are on
  devicectl identify iPhone12,1           Resolve a hardware identifier
  devicectl window 1024                   Window class and panel width
  devicectl watch --geometry geo.yaml     Republish classification on change
  devicectl simulators list --booted      Resolve running simulators`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(verbose)
			process.SetGlobalLogger(logger)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs and underlying commands")
}

func Execute(ctx context.Context, version string) error {
	rootCmd.Version = version

	rootCmd.AddCommand(identifyCmd())
	rootCmd.AddCommand(modelsCmd())
	rootCmd.AddCommand(aspectCmd())
	rootCmd.AddCommand(windowCmd())
	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(simulatorsCmd())

	return rootCmd.ExecuteContext(ctx)
}
