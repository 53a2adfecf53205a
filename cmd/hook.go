package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/spf13/cobra"
)

const maxHookStdinBytes = 1 << 20

// hookInput is the JSON document a host pipes into omoc hook commands.
type hookInput struct {
	Event   domain.PromptBuildEvent `json:"event"`
	Context domain.HookContext      `json:"ctx"`
}

func newHookCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Run plugin hooks for a host that shells out",
	}

	cmd.AddCommand(newHookBeforePromptBuildCmd(app))

	return cmd
}

func newHookBeforePromptBuildCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "before-prompt-build",
		Short: "Read {event, ctx} JSON on stdin and print the prompt build result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxHookStdinBytes+1))
			if err != nil {
				return fmt.Errorf("read hook input: %w", err)
			}
			if len(data) > maxHookStdinBytes {
				return fmt.Errorf("hook input exceeds %d bytes", maxHookStdinBytes)
			}

			var input hookInput
			if strings.TrimSpace(string(data)) != "" {
				if err := json.Unmarshal(data, &input); err != nil {
					return fmt.Errorf("decode hook input: %w", err)
				}
			}

			runtime, plugin, err := app.pipeline()
			if err != nil {
				return err
			}

			result := runtime.BuildPrompt(cmd.Context(), input.Event, input.Context)
			plugin.Wait()

			enc := json.NewEncoder(cmd.OutOrStdout())
			return enc.Encode(result)
		},
	}
}
