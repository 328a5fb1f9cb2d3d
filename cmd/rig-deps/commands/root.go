// Package commands implements the CLI of the rig-deps dependency fetcher.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/rig/internal/app"
	"go.trai.ch/rig/internal/build"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
)

// Fetcher represents the dependency fetch the root command drives.
type Fetcher interface {
	Fetch(ctx context.Context, names []string, opts app.FetchOptions) (*domain.FetchReport, error)
}

// CLI represents the command line interface for rig-deps.
type CLI struct {
	fetcher Fetcher
	dir     string
	rootCmd *cobra.Command
}

// New creates a new CLI that resolves relative paths against dir.
func New(f Fetcher, dir string) *CLI {
	c := &CLI{
		fetcher: f,
		dir:     dir,
	}

	rootCmd := &cobra.Command{
		Use:   "rig-deps [names...]",
		Short: "Clone the named repositories listed in the dependency manifest",
		Long: `rig-deps clears the destination directory and clones every requested
repository from ` + domain.ManifestJSONName + ` at its configured branch and depth.

Unknown names are reported and skipped.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().Bool("shallow-submodules", false, "Perform a shallow clone of submodules")
	rootCmd.Flags().StringP("config", "f", "", "Path to the dependency manifest (default: "+domain.ManifestJSONName+")")
	rootCmd.Flags().StringP("dest", "d", domain.DefaultDepsDir, "Directory that receives the clones")
	rootCmd.Flags().IntP("jobs", "j", 1, "Number of repositories cloned concurrently")
	rootCmd.PersistentFlags().Bool("json", false, "Write the log as JSON lines")
	rootCmd.SetGlobalNormalizationFunc(wordSepNormalizeFunc)

	c.rootCmd = rootCmd
	return c
}

// wordSepNormalizeFunc accepts underscores in flag names, so
// --shallow_submodules is --shallow-submodules.
func wordSepNormalizeFunc(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	shallow, _ := cmd.Flags().GetBool("shallow-submodules")
	manifest, _ := cmd.Flags().GetString("config")
	dest, _ := cmd.Flags().GetString("dest")
	jobs, _ := cmd.Flags().GetInt("jobs")

	if jobs < 1 {
		return zerr.With(zerr.New("jobs must be at least 1"), "jobs", jobs)
	}

	_, err := c.fetcher.Fetch(cmd.Context(), args, app.FetchOptions{
		Dir:               c.dir,
		ManifestPath:      manifest,
		DestDir:           dest,
		ShallowSubmodules: shallow,
		Jobs:              jobs,
	})
	return err
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetLogFormatHook sets up a PersistentPreRun function that reports the
// --json flag to fn before any command runs.
func (c *CLI) SetLogFormatHook(fn func(json bool)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		jsonLogs, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		fn(jsonLogs)
		return nil
	}
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
