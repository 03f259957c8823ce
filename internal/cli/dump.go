package cli

import (
	"fmt"
	"os"

	"github.com/shinh/cref/internal/descriptor"
	"github.com/shinh/cref/internal/dwarfdump"
	"github.com/spf13/cobra"
)

var (
	dumpOutput string
	dumpFormat string
)

var dumpCmd = &cobra.Command{
	Use:   "dump <elf>",
	Short: "Extract type records from an ELF binary's debug info",
	Long: `Read the DWARF debug information of an ELF binary (typically libc built
with -g) and print a platform descriptor: one entry per compilation unit that
defines external functions, listing its base, struct and typedef records and
its function signatures. Save the output as <target>.json in the data
directory for the sizeof command.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "Write to file instead of stdout (format inferred from extension)")
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "", "Output format: json or yaml")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	format := descriptor.FormatJSON
	if dumpOutput != "" {
		format = descriptor.FormatOf(dumpOutput)
	}
	switch dumpFormat {
	case "":
	case string(descriptor.FormatJSON), string(descriptor.FormatYAML):
		format = descriptor.Format(dumpFormat)
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", dumpFormat)
	}

	units, err := dwarfdump.Open(args[0])
	if err != nil {
		return err
	}

	if dumpOutput == "" {
		return descriptor.Encode(cmd.OutOrStdout(), units, format)
	}
	return writeDump(dumpOutput, units, format)
}

func writeDump(path string, units []descriptor.Unit, format descriptor.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return descriptor.Encode(f, units, format)
}
