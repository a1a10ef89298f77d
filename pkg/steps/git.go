package steps

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-git/go-git/v5"
)

// CLIGit runs the git binary.
type CLIGit struct {
	run CommandRunner
}

// NewCLIGit creates a git client backed by the git binary.
func NewCLIGit() *CLIGit {
	return &CLIGit{run: ExecCommand}
}

func (g *CLIGit) Init(ctx context.Context, dir string) error {
	return g.run(ctx, dir, "git", "init")
}

// EmbeddedGit initialises repositories in-process, without a git binary.
type EmbeddedGit struct{}

// NewEmbeddedGit creates an in-process git client.
func NewEmbeddedGit() *EmbeddedGit {
	return &EmbeddedGit{}
}

func (g *EmbeddedGit) Init(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := git.PlainInit(dir, false); err != nil {
		return fmt.Errorf("initializing repository in %s: %w", dir, err)
	}
	slog.Info("initialized git repository", "dir", dir)
	return nil
}
