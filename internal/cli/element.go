package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newElementCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "element <name>",
		Short: "Print the full record of an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolkit, err := loadToolkit(cmd)
			if err != nil {
				return err
			}
			view, err := toolkit.GetElement(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:        %s\n", view.Name)
			fmt.Fprintf(out, "curie:       %s\n", view.CURIE)
			fmt.Fprintf(out, "kind:        %s\n", view.Kind)
			if view.IsA != "" {
				fmt.Fprintf(out, "is_a:        %s\n", view.IsA)
			}
			if len(view.Mixins) > 0 {
				fmt.Fprintf(out, "mixins:      %s\n", strings.Join(view.Mixins, ", "))
			}
			if len(view.Aliases) > 0 {
				fmt.Fprintf(out, "aliases:     %s\n", strings.Join(view.Aliases, ", "))
			}
			if view.Abstract {
				fmt.Fprintln(out, "abstract:    true")
			}
			if view.Mixin {
				fmt.Fprintln(out, "mixin:       true")
			}
			if view.Deprecated != "" {
				fmt.Fprintf(out, "deprecated:  %s\n", view.Deprecated)
			}
			if view.Domain != "" {
				fmt.Fprintf(out, "domain:      %s\n", view.Domain)
			}
			if view.Range != "" {
				fmt.Fprintf(out, "range:       %s\n", view.Range)
			}
			if view.Multivalued {
				fmt.Fprintln(out, "multivalued: true")
			}
			if view.Inverse != "" {
				fmt.Fprintf(out, "inverse:     %s\n", view.Inverse)
			}
			if view.EnumName != "" {
				fmt.Fprintf(out, "enum:        %s\n", view.EnumName)
			}
			if len(view.IDPrefixes) > 0 {
				fmt.Fprintf(out, "id_prefixes: %s\n", strings.Join(view.IDPrefixes, ", "))
			}
			if len(view.InSubset) > 0 {
				fmt.Fprintf(out, "in_subset:   %s\n", strings.Join(view.InSubset, ", "))
			}
			if len(view.Annotations) > 0 {
				tags := make([]string, 0, len(view.Annotations))
				for tag := range view.Annotations {
					tags = append(tags, tag)
				}
				sort.Strings(tags)
				for _, tag := range tags {
					fmt.Fprintf(out, "annotation:  %s=%s\n", tag, view.Annotations[tag])
				}
			}
			if view.Description != "" {
				fmt.Fprintf(out, "description: %s\n", view.Description)
			}
			return nil
		},
	}
	return cmd
}

func newModelVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model-version",
		Short: "Print the loaded schema's declared version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			toolkit, err := loadToolkit(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), toolkit.ModelVersion())
			return nil
		},
	}
	return cmd
}
