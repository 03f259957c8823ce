package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/shinh/cref/internal/branding"
	"github.com/shinh/cref/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` compares libc header and ABI metadata (type sizes and macro values)
across a fixed set of target builds and renders the differences as TSV or HTML tables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if viper.GetBool(config.KeyVerbose) {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetPrefix(branding.CLIName())
	log.SetLevel(log.WarnLevel)

	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Log progress to stderr")
	pf.String("data-dir", "", "Directory holding <target>.json descriptors and <target>.txt macro listings")
	pf.String("targets", "", "Comma-separated subset of targets to compare, in column order")
	pf.String("libc", "", "Only compare targets whose libc version satisfies this constraint (e.g. \">= 2.17\")")

	_ = viper.BindPFlag(config.KeyVerbose, pf.Lookup("verbose"))
	_ = viper.BindPFlag(config.KeyDataDir, pf.Lookup("data-dir"))
	_ = viper.BindPFlag(config.KeyTargets, pf.Lookup("targets"))
	_ = viper.BindPFlag(config.KeyLibc, pf.Lookup("libc"))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		log.Error(err)
	}
	return err
}
