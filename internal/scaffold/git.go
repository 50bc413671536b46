package scaffold

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Soft-wa-re/forge-loop/internal/logging"
)

// GitAvailable reports whether a git binary is on PATH.
func GitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsRepo reports whether dir is already inside a git repository.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

// InitRepo runs git init and creates the initial commit in dir.
func InitRepo(dir string) error {
	commands := [][]string{
		{"git", "init"},
		{"git", "add", "."},
		{"git", "commit", "-m", "Initial commit from forgeloop template"},
	}

	for _, args := range commands {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = dir
		if output, err := cmd.CombinedOutput(); err != nil {
			logging.Warn("git command failed",
				zap.Strings("args", args),
				zap.String("output", string(output)),
			)
			return fmt.Errorf("%s: %w", args[1], err)
		}
	}
	return nil
}

// LookupTool returns the resolved path of an external CLI tool, or false
// when the tool is not installed. Used by the check command for agents
// whose companion CLI is required.
func LookupTool(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
