package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"gonhanh/internal/types"
)

var Methods = &cobra.Command{
	Use:   "methods",
	Short: "Lists the supported input methods and tone styles.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, m := range []types.InputMethod{types.MethodTelex, types.MethodVNI} {
			marker := " "
			if m == settings.Method {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, m)
		}
		fmt.Fprintf(out, "tone style: %s\n", settings.ToneStyle)
		return nil
	},
}

func init() {
	Root.AddCommand(Methods)
}
