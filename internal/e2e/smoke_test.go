package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	workspace := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runOMOC(t, binaryPath, home, nil, "install")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "installed 10 persona file(s)")

	_, stderr, err = runOMOC(t, binaryPath, home, nil, "todo", "add", "--session", "smoke", "verify the release")
	require.NoError(t, err, "stderr: %s", stderr)

	input := `{"event":{"prompt":"ultrawork: ship it","systemPrompt":"host"},` +
		`"ctx":{"agentId":"main","sessionKey":"smoke","workspaceDir":"` + workspace + `"}}`
	stdout, stderr, err = runOMOC(t, binaryPath, home, strings.NewReader(input), "hook", "before-prompt-build")
	require.NoError(t, err, "stderr: %s", stderr)

	var result struct {
		PrependContext string `json:"prependContext"`
		SystemPrompt   string `json:"systemPrompt"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Contains(t, result.PrependContext, "[ultrawork mode]")
	assert.Contains(t, result.PrependContext, "verify the release")
	assert.Equal(t, "host", result.SystemPrompt)

	stdout, stderr, err = runOMOC(t, binaryPath, home, nil, "persona", "current")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "atlas\n", stdout)
	assert.FileExists(t, filepath.Join(workspace, "AGENTS.md"))

	stdout, stderr, err = runOMOC(t, binaryPath, home, nil, "status", "--session", "smoke")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "active persona: atlas")
	assert.Contains(t, stdout, "verify the release")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "omoc-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/omoc")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build omoc binary: %s", string(output))
	return binaryPath
}

func runOMOC(t *testing.T, binaryPath, home string, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Stdin = stdin

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
