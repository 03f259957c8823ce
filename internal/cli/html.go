package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/shinh/cref/internal/report"
	"github.com/spf13/cobra"
)

var htmlCmd = &cobra.Command{
	Use:   "html [file]",
	Short: "Render a TSV report as an HTML table",
	Long: `Read a report in the tab-separated format printed by sizeof and macros
(from file, or stdin when omitted) and print it as an HTML table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHTML,
}

func init() {
	rootCmd.AddCommand(htmlCmd)
}

func runHTML(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}

	t, err := report.ReadTSV(in)
	if err != nil {
		return err
	}
	return report.WriteHTML(cmd.OutOrStdout(), t)
}
