package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Runner executes an optional external helper and returns its trimmed
// stdout. Implementations must return an error rather than block when the
// helper is missing or hangs.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

type execRunner struct {
	timeout time.Duration
}

func NewExecRunner(timeout time.Duration) Runner {
	if timeout <= 0 {
		timeout = 500 * time.Millisecond
	}
	return &execRunner{timeout: timeout}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not installed: %w", name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, args...).Output()
	if err != nil {
		return "", fmt.Errorf("run %s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}
