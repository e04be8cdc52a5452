package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SanthoshArigela/smartscan/internal/classify"
	"github.com/SanthoshArigela/smartscan/internal/cli"
	"github.com/SanthoshArigela/smartscan/internal/model"
)

func categoriesCmd() *cobra.Command {
	var showKeywords bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the supported spending categories",
		Long:  `Display the closed category set and the size of each keyword dictionary.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(cli.TitleStyle.Render("Supported categories"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tKEYWORDS")
			for _, cat := range model.AllCategories() {
				words := classify.Keywords(cat)
				fmt.Fprintf(w, "%s\t%d\n", cat, len(words))
				if showKeywords {
					fmt.Fprintf(w, "\t%s\n", cli.SubtleStyle.Render(strings.Join(words, ", ")))
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&showKeywords, "keywords", false, "also print every dictionary keyword")

	return cmd
}
