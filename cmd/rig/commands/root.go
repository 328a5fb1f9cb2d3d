// Package commands implements the CLI commands for the rig build orchestrator.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rig/internal/build"
	"go.trai.ch/rig/internal/core/domain"
)

// CLI represents the command line interface for rig.
type CLI struct {
	orchestrator Orchestrator
	workdir      domain.Workdir
	rootCmd      *cobra.Command
}

// Orchestrator represents the build pipeline the root command drives.
type Orchestrator interface {
	Run(ctx context.Context, wd domain.Workdir, inv domain.Invocation) error
}

// New creates a new CLI instance operating on wd.
func New(o Orchestrator, wd domain.Workdir) *CLI {
	c := &CLI{
		orchestrator: o,
		workdir:      wd,
	}

	rootCmd := &cobra.Command{
		Use:   "rig",
		Short: "Configure, build and run a CMake + Ninja project",
		Long: `rig drives the configure/build/run workflow of the current build directory.

With no flags it only configures. --build configures and builds, --run builds
and launches the first executable found in the directory.`,
		Example: `  rig              # configure only
  rig -b           # configure + build
  rig -r           # build + run
  rig -c -b -r     # clean, then configure + build + run`,
		Args:          cobra.NoArgs,
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

	rootCmd.Flags().BoolP("clean", "c", false, "Clean the current directory (excluding rig itself)")
	rootCmd.Flags().BoolP("build", "b", false, "Run configure, then build")
	rootCmd.Flags().BoolP("run", "r", false, "Build, then launch the first executable in the current directory")
	rootCmd.Flags().Bool("compact", false, "(Windows) make the console window compact")
	rootCmd.PersistentFlags().Bool("json", false, "Write the log as JSON lines")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, _ []string) error {
	clean, _ := cmd.Flags().GetBool("clean")
	buildFlag, _ := cmd.Flags().GetBool("build")
	run, _ := cmd.Flags().GetBool("run")
	compact, _ := cmd.Flags().GetBool("compact")

	return c.orchestrator.Run(cmd.Context(), c.workdir, domain.Invocation{
		Clean:   clean,
		Build:   buildFlag,
		Run:     run,
		Compact: compact,
	})
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
