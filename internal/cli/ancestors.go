package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAncestorsCommand() *cobra.Command {
	var includeMixins bool
	var reflexive bool
	var formatted bool
	cmd := &cobra.Command{
		Use:   "ancestors <name>",
		Short: "List the ancestors of an element, primary lineage first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolkit, err := loadToolkit(cmd)
			if err != nil {
				return err
			}
			ancestors, err := toolkit.Ancestors(args[0], includeMixins, reflexive)
			if err != nil {
				return err
			}
			if formatted {
				ancestors = toolkit.FormatAll(ancestors)
			}
			for _, name := range ancestors {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&includeMixins, "mixins", true, "Follow mixin edges as well as is_a")
	cmd.Flags().BoolVar(&reflexive, "reflexive", false, "Include the element itself")
	cmd.Flags().BoolVar(&formatted, "formatted", false, "Print CURIEs instead of names")
	return cmd
}
