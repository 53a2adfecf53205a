package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/application"
	"github.com/spf13/cobra"
)

func newKeywordsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Inspect workflow keyword detection",
	}

	cmd.AddCommand(newKeywordsDetectCmd(app))

	return cmd
}

type keywordsJSON struct {
	Types    []application.KeywordType `json:"types"`
	Guidance string                    `json:"guidance,omitempty"`
	Persona  string                    `json:"persona,omitempty"`
}

func newKeywordsDetectCmd(_ *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "detect [text]",
		Short: "Detect workflow keywords in text (reads stdin when no text is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxHookStdinBytes))
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}

			matches := application.DetectKeywords(text)
			persona, _ := application.PersonaSwitchFor(matches)

			if asJSON {
				out := keywordsJSON{
					Types:    application.KeywordTypes(matches),
					Guidance: application.GuidanceFor(matches),
					Persona:  string(persona),
				}
				if out.Types == nil {
					out.Types = []application.KeywordType{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			if len(matches) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no keywords detected")
				return err
			}

			for _, match := range matches {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), match.Type)
			}
			if persona != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "persona switch: %s\n", persona)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON including guidance")

	return cmd
}
