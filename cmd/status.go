package cmd

import (
	"fmt"

	statusadapter "github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/render/status"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var sessionKey string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show personas, the active override and a session's todos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			personas, err := app.personas.List(cmd.Context())
			if err != nil {
				return err
			}
			active, hasActive, err := app.personas.Active(cmd.Context())
			if err != nil {
				return err
			}
			todos, err := app.todoService()
			if err != nil {
				return err
			}
			items, err := todos.List(cmd.Context(), sessionKey)
			if err != nil {
				return err
			}

			rendered, err := app.statusRenderer(statusadapter.Snapshot{
				Personas:   personas,
				Active:     active,
				HasActive:  hasActive,
				SessionKey: sessionKey,
				Todos:      items,
			}, statusadapter.RenderOptions{})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&sessionKey, "session", domain.DefaultSessionKey, "Session whose todos are shown")

	return cmd
}
