package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Execute() error {
	return run(newRootCmd())
}

// run executes rootCmd and then releases the app, also when the command
// failed. Cobra skips post-run hooks after a RunE error.
func run(rootCmd *cobra.Command, closeApp func() error) error {
	err := rootCmd.Execute()
	return errors.Join(err, closeApp())
}

func newRootCmd() (*cobra.Command, func() error) {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "omoc",
		Short:         "oh-my-openclaw (omoc): personas, todos and prompt context for OpenClaw agents",
		Long:          "omoc manages agent personas, per-session todo lists and the before_prompt_build context pipeline, and serves them to agents over MCP.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, func() error { return nil }
	}

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if verbose {
			app.logLevel.SetLevel(zapcore.DebugLevel)
		}
		app.logger.Debug("config loaded",
			zap.String("personas_dir", app.settings.PersonasDir),
			zap.String("todo_db", app.settings.TodoDBPath))
		return nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newInstallCmd(app),
		newPersonaCmd(app),
		newTodoCmd(app),
		newKeywordsCmd(app),
		newHookCmd(app),
		newServeCmd(app),
		newStatusCmd(app),
	)

	return rootCmd, app.close
}
