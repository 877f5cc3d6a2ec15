package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClassifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <name>",
		Short: "Print every root-classification verdict for a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolkit, err := loadToolkit(cmd)
			if err != nil {
				return err
			}
			verdict := toolkit.Classify(args[0])
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "known:              %t\n", verdict.Known)
			fmt.Fprintf(out, "is_category:        %t\n", verdict.IsCategory)
			fmt.Fprintf(out, "is_predicate:       %t\n", verdict.IsPredicate)
			fmt.Fprintf(out, "is_node_property:   %t\n", verdict.IsNodeProperty)
			fmt.Fprintf(out, "is_association_slot: %t\n", verdict.IsAssociationSlot)
			fmt.Fprintf(out, "is_association:     %t\n", verdict.IsAssociation)
			fmt.Fprintf(out, "is_mixin:           %t\n", verdict.IsMixin)
			fmt.Fprintf(out, "is_enum_value:      %t\n", verdict.IsEnumValue)
			fmt.Fprintf(out, "is_canonical_predicate: %t\n", toolkit.IsCanonicalPredicate(args[0]))
			printWarnings(toolkit)
			return nil
		},
	}
	return cmd
}
