package cmd

import (
	"os"

	"statusmsg/internal/config"
	"statusmsg/internal/terminal"
	"statusmsg/pkg/logging"

	"github.com/spf13/cobra"
)

// For mocking in tests
var (
	loadConfig = config.LoadConfig
	detectEnv  = terminal.FromOS
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "statusmsg",
		Short: "Render colored status messages in the terminal",
		Long: `statusmsg renders a status message: an icon followed by a message,
colored by one of four variants (info, success, error, warning).

Icons fall back to ASCII on terminals that cannot draw Unicode. Colors and
symbols can be configured in ~/.config/statusmsg/config.yaml and
./.statusmsg/config.yaml.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. unknown variants)
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logging.InitForCLI(level, cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newVariantCmds()...)
	cmd.AddCommand(newDetectCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "statusmsg version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
