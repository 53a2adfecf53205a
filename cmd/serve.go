package cmd

import (
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/mcpserver"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve persona, todo and prompt tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			todos, err := app.todoService()
			if err != nil {
				return err
			}
			runtime, plugin, err := app.pipeline()
			if err != nil {
				return err
			}
			defer plugin.Wait()

			tools := mcpserver.NewTools(app.personas, todos, runtime, app.logger.Named("mcp"))
			app.logger.Info("serving mcp over stdio", zap.String("version", version.Version))

			return mcpserver.Serve(mcpserver.NewServer(tools, version.Version))
		},
	}
}
