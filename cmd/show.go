package cmd

import (
	"fmt"
	"strings"

	"statusmsg/internal/config"
	"statusmsg/internal/figures"
	"statusmsg/internal/render"
	"statusmsg/internal/statusmessage"
	"statusmsg/internal/terminal"
	"statusmsg/internal/theme"
	"statusmsg/internal/variant"
	"statusmsg/pkg/logging"

	"github.com/spf13/cobra"
)

// renderFlags are the flags shared by every command that paints a message.
type renderFlags struct {
	width   int
	symbols string
	plain   bool
}

// renderSetup is everything needed to paint a status message.
type renderSetup struct {
	opts     statusmessage.Options
	renderer render.Renderer
	width    int
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.width, "width", "w", 0, "Total output width, 0 for natural width")
	cmd.Flags().StringVar(&f.symbols, "symbols", "", "Symbol set: auto, unicode or ascii (default from config)")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "Disable colors")
}

// resolve layers explicitly set flags over the loaded configuration.
func (f renderFlags) resolve(cmd *cobra.Command) (renderSetup, error) {
	cfg, err := loadConfig()
	if err != nil {
		return renderSetup{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("symbols") {
		cfg.Symbols = f.symbols
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = config.IntPtr(f.width)
	}
	if cmd.Flags().Changed("plain") {
		cfg.Plain = f.plain
	}
	if err := cfg.Validate(); err != nil {
		return renderSetup{}, err
	}

	mode, err := cfg.SymbolMode()
	if err != nil {
		return renderSetup{}, err
	}
	env := detectEnv()
	symbols, err := figures.Resolve(mode, env)
	if err != nil {
		return renderSetup{}, err
	}
	colors, err := cfg.ColorOverrides()
	if err != nil {
		return renderSetup{}, err
	}

	var r render.Renderer = render.NewLipgloss(cmd.OutOrStdout())
	if cfg.Plain {
		r = render.Plain{}
	}

	logging.Debug("CLI", "symbols=%s unicode=%t width=%d plain=%t",
		mode, terminal.IsUnicodeSupported(env), cfg.OutputWidth(), cfg.Plain)

	return renderSetup{
		opts: statusmessage.Options{
			Theme:   theme.Default().WithColors(colors),
			Symbols: symbols,
		},
		renderer: r,
		width:    cfg.OutputWidth(),
	}, nil
}

func printMessage(cmd *cobra.Command, flags renderFlags, v variant.Variant, args []string) error {
	setup, err := flags.resolve(cmd)
	if err != nil {
		return err
	}
	out := statusmessage.Render(setup.renderer, setup.opts, statusmessage.Props{
		Variant: v,
		Content: statusmessage.Text(strings.Join(args, " ")),
	}, setup.width)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func newShowCmd() *cobra.Command {
	var (
		flags       renderFlags
		variantName string
	)

	cmd := &cobra.Command{
		Use:   "show [message...]",
		Short: "Render a status message",
		Long: `Render a status message for the given variant.

Examples:
  statusmsg show --variant success "Deployed api"
  statusmsg show -v warning --width 40 "Disk usage is above 80 percent"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := variant.Parse(variantName)
			if err != nil {
				return err
			}
			return printMessage(cmd, flags, v, args)
		},
	}

	cmd.Flags().StringVarP(&variantName, "variant", "v", variant.Info.String(), "Variant: info, success, error or warning")
	flags.register(cmd)
	return cmd
}

// newVariantCmds returns one shortcut command per variant, e.g. "statusmsg success <message>".
func newVariantCmds() []*cobra.Command {
	var cmds []*cobra.Command
	for _, v := range variant.Variants() {
		v := v // per-iteration copy; go.mod targets go 1.21 (pre-1.22 loop semantics)
		var flags renderFlags
		cmd := &cobra.Command{
			Use:   v.String() + " [message...]",
			Short: fmt.Sprintf("Render a %s status message", v),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printMessage(cmd, flags, v, args)
			},
		}
		flags.register(cmd)
		cmds = append(cmds, cmd)
	}
	return cmds
}
