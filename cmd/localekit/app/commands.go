package app

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/localekit/cmd/localekit/cmd/list"
	"github.com/agentstation/localekit/cmd/localekit/cmd/merge"
	"github.com/agentstation/localekit/cmd/localekit/cmd/prune"
	"github.com/agentstation/localekit/cmd/localekit/cmd/translate"
	"github.com/agentstation/localekit/cmd/localekit/cmd/validate"
)

// registerCommands attaches every subcommand to the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.CreateMergeCommand())
	rootCmd.AddCommand(a.CreateValidateCommand())
	rootCmd.AddCommand(a.CreatePruneCommand())
	rootCmd.AddCommand(a.CreateListCommand())
	rootCmd.AddCommand(a.CreateTranslateCommand())
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// CreateMergeCommand creates the merge command with app dependencies.
func (a *App) CreateMergeCommand() *cobra.Command {
	return merge.NewCommand(a)
}

// CreateValidateCommand creates the validate command with app dependencies.
func (a *App) CreateValidateCommand() *cobra.Command {
	return validate.NewCommand(a)
}

// CreatePruneCommand creates the prune command with app dependencies.
func (a *App) CreatePruneCommand() *cobra.Command {
	return prune.NewCommand(a)
}

// CreateListCommand creates the list command with app dependencies.
func (a *App) CreateListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// CreateTranslateCommand creates the translate command with app dependencies.
func (a *App) CreateTranslateCommand() *cobra.Command {
	return translate.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("localekit %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:     %s\n", a.commit)
				cmd.Printf("  built:      %s\n", a.date)
				cmd.Printf("  built by:   %s\n", a.builtBy)
				cmd.Printf("  go version: %s\n", runtime.Version())
				cmd.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
