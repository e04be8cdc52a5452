package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/SanthoshArigela/smartscan/internal/cli"
	"github.com/SanthoshArigela/smartscan/internal/common"
)

func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <dir>",
		Short: "Interpret every .txt receipt dump in a directory",
		Long: `Classify every *.txt file in a directory and print a tab-separated summary.
Useful for eyeballing regressions against a corpus of saved OCR dumps.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := filepath.Glob(filepath.Join(args[0], "*.txt"))
			if err != nil {
				return common.NewUserError("failed to list receipt dumps", err)
			}
			if len(files) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No .txt files found."))
				return nil
			}

			eng := initEngine()

			bar := progressbar.NewOptions(len(files),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Scanning receipts..."),
			)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tAMOUNT\tCATEGORY\tNOTE")
			for _, file := range files {
				if err := cmd.Context().Err(); err != nil {
					return err
				}

				data, err := os.ReadFile(file)
				if err != nil {
					return common.NewUserError(fmt.Sprintf("failed to read %s", file), err)
				}

				res := eng.Classify(string(data))
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					filepath.Base(file), res.Amount.String(), res.Category, res.Note)
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			return w.Flush()
		},
	}
}
