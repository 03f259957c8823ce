package cli

import (
	"github.com/shinh/cref/internal/compare"
	"github.com/shinh/cref/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sizeofHTML bool

var sizeofCmd = &cobra.Command{
	Use:   "sizeof",
	Short: "Compare type sizes across targets",
	Long: `Load <target>.json (or .yaml) from the data directory for every selected
target, merge each target's compilation units, and print one row per type
with its resolved size on every target.

Types whose records disagree within one target abort the run unless they are
allow-listed (see --allow and the allow_conflicts config key).`,
	Args: cobra.NoArgs,
	RunE: runSizeof,
}

func init() {
	sizeofCmd.Flags().BoolVar(&sizeofHTML, "html", false, "Render HTML instead of TSV")
	sizeofCmd.Flags().String("allow", "", "Comma-separated extra type names allowed to disagree within a target")
	sizeofCmd.Flags().String("pointer-type", "", "Integer type whose size stands in for pointers and arrays")
	_ = viper.BindPFlag(config.KeyAllowConflicts, sizeofCmd.Flags().Lookup("allow"))
	_ = viper.BindPFlag(config.KeyPointerType, sizeofCmd.Flags().Lookup("pointer-type"))
	rootCmd.AddCommand(sizeofCmd)
}

func runSizeof(cmd *cobra.Command, args []string) error {
	opts, err := compare.FromSettings(config.Current())
	if err != nil {
		return err
	}
	t, err := compare.Sizeof(opts)
	if err != nil {
		return err
	}
	return writeTable(cmd.OutOrStdout(), t, sizeofHTML)
}
