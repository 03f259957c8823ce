package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/shinh/cref/internal/config"
	"github.com/shinh/cref/internal/targets"
	"github.com/spf13/cobra"
)

var (
	targetsJSON      bool
	targetsByVersion bool
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the compared targets",
	Long:  `List the targets selected by --targets and --libc (all targets by default).`,
	Args:  cobra.NoArgs,
	RunE:  runTargets,
}

func init() {
	targetsCmd.Flags().BoolVar(&targetsJSON, "json", false, "Output in JSON format")
	targetsCmd.Flags().BoolVar(&targetsByVersion, "by-version", false, "Sort by libc version, newest first")
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	s := config.Current()
	ts, err := targets.Select(targets.Selection{IDs: s.Targets, Libc: s.Libc})
	if err != nil {
		return err
	}
	if targetsByVersion {
		targets.ByVersion(ts)
	}

	if targetsJSON {
		out, err := json.MarshalIndent(ts, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling targets: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLIBC\tARCH\tABI\tPOINTER")
	for _, t := range ts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", t.ID, t.Libc, t.Arch, t.ABI, t.PointerSize)
	}
	return w.Flush()
}
