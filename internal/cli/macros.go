package cli

import (
	"github.com/shinh/cref/internal/compare"
	"github.com/shinh/cref/internal/config"
	"github.com/spf13/cobra"
)

var macrosHTML bool

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Compare #define values across targets",
	Long: `Read <target>.txt from the data directory for every selected target. Each
line must be "#define NAME VALUE" (as printed by cpp -dM). One row is printed
per macro defined on the first target.`,
	Args: cobra.NoArgs,
	RunE: runMacros,
}

func init() {
	macrosCmd.Flags().BoolVar(&macrosHTML, "html", false, "Render HTML instead of TSV")
	rootCmd.AddCommand(macrosCmd)
}

func runMacros(cmd *cobra.Command, args []string) error {
	opts, err := compare.FromSettings(config.Current())
	if err != nil {
		return err
	}
	t, err := compare.Macros(opts)
	if err != nil {
		return err
	}
	return writeTable(cmd.OutOrStdout(), t, macrosHTML)
}
