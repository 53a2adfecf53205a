package cmd

import (
	"encoding/json"
	"fmt"

	statusadapter "github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/render/status"
	"github.com/spf13/cobra"
)

func newPersonaCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "persona",
		Short: "Inspect and switch personas",
	}

	cmd.AddCommand(
		newPersonaListCmd(app),
		newPersonaShowCmd(app),
		newPersonaUseCmd(app),
		newPersonaResetCmd(app),
		newPersonaCurrentCmd(app),
	)

	return cmd
}

type personaJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Role        string `json:"role"`
	Active      bool   `json:"active"`
}

func newPersonaListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available personas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			personas, err := app.personas.List(cmd.Context())
			if err != nil {
				return err
			}
			active, hasActive, err := app.personas.Active(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]personaJSON, 0, len(personas))
				for _, persona := range personas {
					out = append(out, personaJSON{
						ID:          string(persona.ID),
						Name:        persona.Name,
						Description: persona.Description,
						Role:        string(persona.Role),
						Active:      hasActive && persona.ID == active,
					})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			rendered, err := app.statusRenderer(statusadapter.Snapshot{
				Personas:  personas,
				Active:    active,
				HasActive: hasActive,
			}, statusadapter.RenderOptions{})
			if err != nil {
				return fmt.Errorf("render personas: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newPersonaShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <persona>",
		Short: "Print a persona's prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			persona, err := app.personas.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), persona.Prompt)
			return err
		},
	}
}

func newPersonaUseCmd(app *app) *cobra.Command {
	var workspaceDir string

	cmd := &cobra.Command{
		Use:   "use <persona>",
		Short: "Make a persona the active override and write it to AGENTS.md",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.personas.Switch(cmd.Context(), args[0], workspaceDir)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "active persona: %s\n", id)
			return err
		},
	}

	cmd.Flags().StringVar(&workspaceDir, "workspace", "", "Workspace whose AGENTS.md is replaced (defaults to workspace.dir)")

	return cmd
}

func newPersonaResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the active persona override",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.personas.Reset(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "persona override cleared")
			return err
		},
	}
}

func newPersonaCurrentCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the active persona override",
		RunE: func(cmd *cobra.Command, _ []string) error {
			active, ok, err := app.personas.Active(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "none")
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), active)
			return err
		},
	}
}
