package cmd

import (
	"fmt"
	"strings"

	"statusmsg/internal/tui"
	"statusmsg/internal/variant"
	"statusmsg/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var (
		flags       renderFlags
		variantName string
	)

	cmd := &cobra.Command{
		Use:   "preview [message...]",
		Short: "Interactively preview status messages",
		Long: `Start an interactive preview. Switch variants with the arrow keys,
edit the message with 'e' and copy the plain rendering with 'y'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := variant.Parse(variantName)
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(cmd.Flag("log-level").Value.String())
			if err != nil {
				return err
			}
			setup, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			message := strings.Join(args, " ")
			if message == "" {
				message = "Everything is up to date"
			}

			logChannel := logging.InitForTUI(level)
			defer logging.CloseTUIChannel()

			model := tui.NewModel(setup.renderer, setup.opts, start, message, logChannel)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("preview failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&variantName, "variant", "v", variant.Info.String(), "Variant to start with")
	flags.register(cmd)
	return cmd
}
