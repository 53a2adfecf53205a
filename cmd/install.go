package cmd

import (
	"fmt"

	personafile "github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/personas/file"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/config"
	"github.com/spf13/cobra"
)

func newInstallCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Write the default config and persona files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			wroteConfig, err := config.WriteDefault(app.homeDir, force)
			if err != nil {
				return err
			}
			if wroteConfig {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", config.Path(app.homeDir))
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "kept %s\n", config.Path(app.homeDir))
			}

			written, err := personafile.WriteDefaults(app.settings.PersonasDir, force)
			if err != nil {
				return fmt.Errorf("install personas: %w", err)
			}
			for _, path := range written {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "installed %d persona file(s) into %s\n", len(written), app.settings.PersonasDir)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config and persona files")

	return cmd
}
