package ports

import "context"

type WorkspaceWriter interface {
	WriteAgentsFile(ctx context.Context, workspaceDir, content string) error
}
