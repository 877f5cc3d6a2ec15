package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDescendantsCommand() *cobra.Command {
	var formatted bool
	cmd := &cobra.Command{
		Use:   "descendants <name>",
		Short: "List every element reachable downward from an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolkit, err := loadToolkit(cmd)
			if err != nil {
				return err
			}
			descendants, err := toolkit.Descendants(args[0])
			if err != nil {
				return err
			}
			if formatted {
				descendants = toolkit.FormatAll(descendants)
			}
			for _, name := range descendants {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&formatted, "formatted", false, "Print CURIEs instead of names")
	return cmd
}

func newChildrenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "children <name>",
		Short: "List the direct children of an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolkit, err := loadToolkit(cmd)
			if err != nil {
				return err
			}
			children, err := toolkit.Children(args[0])
			if err != nil {
				return err
			}
			for _, name := range children {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	return cmd
}

func newParentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parent <name>",
		Short: "Print the direct is_a parent of an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolkit, err := loadToolkit(cmd)
			if err != nil {
				return err
			}
			parent, err := toolkit.Parent(args[0])
			if err != nil {
				return err
			}
			if parent != "" {
				fmt.Fprintln(cmd.OutOrStdout(), parent)
			}
			return nil
		},
	}
	return cmd
}
