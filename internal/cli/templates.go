package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"resume-builder/internal/templates"

	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	var (
		category string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"ls"},
		Short:   "List the available templates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := templates.List()
			if category != "" {
				list = templates.ByCategory(category)
			}
			summaries := make([]templates.Summary, 0, len(list))
			for _, t := range list {
				summaries = append(summaries, t.Summary())
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tLAYOUT")
			for _, s := range summaries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Category, s.Layout)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only templates of this category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
