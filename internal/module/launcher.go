package module

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
)

// Launcher builds and runs module processes. Inside the TUI the
// returned command is handed to the terminal layer, which releases the
// screen for the child and reclaims it on exit; Run is the direct path
// used by the CLI.
type Launcher struct {
	registry *Registry
	logger   *slog.Logger
}

// NewLauncher wires a launcher to its registry.
func NewLauncher(registry *Registry, logger *slog.Logger) *Launcher {
	return &Launcher{registry: registry, logger: logger}
}

// Command resolves name and returns a command ready to run in dir with
// the caller's terminal.
func (l *Launcher) Command(name string, args []string, dir string) (*exec.Cmd, error) {
	path, err := l.registry.Resolve(name)
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(path, args...)
	cmd.Dir = dir
	l.logger.Debug("resolved module", "name", name, "path", path, "dir", dir)
	return cmd, nil
}

// Run executes the module in the foreground with the process's own
// stdio and returns the child's exit code. A missing binary or a
// failure to start is an error; a child that ran and exited non-zero
// is not.
func (l *Launcher) Run(name string, args []string, dir string) (int, error) {
	cmd, err := l.Command(name, args, dir)
	if err != nil {
		return 0, err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	l.logger.Info("launching module", "name", name, "args", args)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, err
	}
	return 0, nil
}
