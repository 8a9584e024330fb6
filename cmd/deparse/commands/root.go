// Package commands implements the CLI commands for deparse.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/deparse/internal/app"
	"go.trai.ch/deparse/internal/build"
)

// CLI represents the command line interface for deparse.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Tree(ctx context.Context, opts app.Options) error
	Graph(ctx context.Context, opts app.Options) error
	Direct(ctx context.Context, opts app.Options) error
	Export(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "deparse",
		Short:         "Derive dependency trees and graphs from package.json and yarn.lock",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to configuration file (default \".deparse.yaml\")")
	flags.StringP("manifest", "m", "", "Path to package.json")
	flags.StringP("lockfile", "l", "", "Path to yarn.lock")
	flags.Bool("progress", false, "Render phase progress to stderr")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newTreeCmd())
	rootCmd.AddCommand(c.newGraphCmd())
	rootCmd.AddCommand(c.newDirectCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
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

// options reads the persistent input flags shared by every subcommand.
func options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	manifest, _ := cmd.Flags().GetString("manifest")
	lockfile, _ := cmd.Flags().GetString("lockfile")
	progress, _ := cmd.Flags().GetBool("progress")
	return app.Options{
		ConfigPath: configPath,
		Manifest:   manifest,
		Lockfile:   lockfile,
		Progress:   progress,
	}
}
