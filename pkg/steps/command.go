package steps

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// CommandRunner runs an external program in dir.
type CommandRunner func(ctx context.Context, dir, name string, args ...string) error

// ExecCommand runs name from PATH in dir. A non-zero exit is an error that
// carries the captured stderr.
func ExecCommand(ctx context.Context, dir, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s binary not found in PATH: %w", name, err)
	}

	slog.Info("running command", "command", name, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s failed: %w\nstderr: %s", name, strings.Join(args, " "), err, stderr.String())
	}
	return nil
}
