package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SanthoshArigela/smartscan/internal/cli"
	"github.com/SanthoshArigela/smartscan/internal/common"
	"github.com/SanthoshArigela/smartscan/internal/engine"
)

func scanCmd() *cobra.Command {
	var (
		jsonOutput bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Interpret one receipt text dump",
		Long: `Read OCR text from a file (or stdin when no file is given) and print the
interpreted amount, category and note.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			report := initEngine().Inspect(text)

			if jsonOutput {
				return writeJSON(os.Stdout, report)
			}

			res := report.Result
			fmt.Println(cli.TitleStyle.Render("Receipt interpreted"))
			fmt.Printf("%s ₹%s\n", cli.BoldStyle.Render("Amount:  "), res.Amount.String())
			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Category:"), res.Category)
			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Note:    "), res.Note)
			if res.Amount.IsZero() {
				fmt.Println(cli.WarningStyle.Render("No amount cleared the acceptance floor; treat as unconfirmed."))
			}

			if verbose {
				printEvidence(report)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the result as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show ranked candidates and category scores")

	return cmd
}

// readInput loads the receipt text from the optional file argument or stdin.
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", common.NewUserError("failed to read receipt text", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", common.NewUserError("failed to read stdin", err)
	}
	if len(data) == 0 {
		return "", common.NewUserError("nothing to scan", common.ErrNoInput)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, report engine.Report) error {
	out := struct {
		Amount     string `json:"amount"`
		Category   string `json:"category"`
		Note       string `json:"note"`
		Confidence int    `json:"confidence"`
	}{
		Amount:     report.Result.Amount.String(),
		Category:   report.Result.Category.String(),
		Note:       report.Result.Note,
		Confidence: report.Confidence,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printEvidence(report engine.Report) {
	fmt.Println()
	fmt.Println(cli.SubtleStyle.Render("Amount candidates (best first):"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tVALUE\tORIGIN\tRAW")
	for _, c := range report.Candidates {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.Score, c.Value.String(), c.Origin, c.Raw)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(cli.SubtleStyle.Render("Category scores:"))
	for _, s := range report.Scores {
		fmt.Printf("  %-14s %d\n", s.Category, s.Score)
	}
}
