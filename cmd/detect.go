package cmd

import (
	"fmt"
	"text/tabwriter"

	"statusmsg/internal/figures"
	"statusmsg/internal/terminal"

	"github.com/spf13/cobra"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Show whether this terminal is treated as Unicode capable",
		Long: `Print the environment values used for Unicode detection, the
result, and the symbol set that would be used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := detectEnv()
			supported := terminal.IsUnicodeSupported(env)
			set := figures.ForEnv(env)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, key := range []string{terminal.KeyLang, terminal.KeyColorTerm, terminal.KeyTermProgram, terminal.KeyPlatform} {
				fmt.Fprintf(w, "%s\t%q\n", key, env.Get(key))
			}
			fmt.Fprintf(w, "unicode\t%t\n", supported)
			fmt.Fprintf(w, "symbols\t%s %s %s %s\n", set.Info, set.Tick, set.Cross, set.Warning)
			fmt.Fprintf(w, "width\t%d\n", set.Width())
			return w.Flush()
		},
	}
}
