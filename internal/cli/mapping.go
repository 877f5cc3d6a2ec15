package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biolink/biolink-model-toolkit/internal/types"
)

func newMappingCommand() *cobra.Command {
	var specificity string
	cmd := &cobra.Command{
		Use:   "mapping <identifier>",
		Short: "Resolve an external identifier to owning elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolkit, err := loadToolkit(cmd)
			if err != nil {
				return err
			}
			owners := toolkit.ResolveByMapping(args[0], types.MappingSpecificity(specificity))
			for _, name := range owners {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			printWarnings(toolkit)
			return nil
		},
	}
	cmd.Flags().StringVar(&specificity, "specificity", "any",
		"Mapping bucket: any, exact, close, narrow, broad, or related")
	return cmd
}

func newPrefixCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefix <prefix-or-curie>",
		Short: "Resolve a URI/CURIE prefix to owning elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolkit, err := loadToolkit(cmd)
			if err != nil {
				return err
			}
			owners := toolkit.ResolveByPrefix(args[0])
			for _, name := range owners {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			printWarnings(toolkit)
			return nil
		},
	}
	return cmd
}

func newSubsetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subset <subset-name>",
		Short: "List the elements belonging to a named subset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolkit, err := loadToolkit(cmd)
			if err != nil {
				return err
			}
			for _, name := range toolkit.SubsetMembers(args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	return cmd
}
