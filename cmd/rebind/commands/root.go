// Package commands implements the CLI commands for rebind.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rebind/internal/app"
	"go.trai.ch/rebind/internal/build"
)

// CLI represents the command line interface for rebind.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rebind",
		Short:         "Query the annotation index of an incremental build",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "rebind.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().String("session", "", "Compilation session id (random when empty)")
	rootCmd.PersistentFlags().Bool("no-session", false, "Query as if no incremental build were in progress")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newAnnotatedCmd())
	rootCmd.AddCommand(c.newSubtypesCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func (c *CLI) openWorkspace(cmd *cobra.Command) (*app.Workspace, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	session, err := cmd.Flags().GetString("session")
	if err != nil {
		return nil, err
	}
	return c.app.Open(cmd.Context(), configPath, app.OpenOptions{SessionID: session})
}
