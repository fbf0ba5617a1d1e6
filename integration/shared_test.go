//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedBinaryPath holds the path to a shared faithboard binary built once for all tests.
	sharedBinaryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getBinary returns the path to the faithboard binary, building it once if needed.
func getBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "faithboard-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binPath := filepath.Join(tempDir, "faithboard")
		buildCmd := exec.Command("go", "build", "-o", binPath, "./cmd/faithboard")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		if out, err := buildCmd.CombinedOutput(); err != nil {
			panic(fmt.Sprintf("failed to build faithboard: %v\n%s", err, out))
		}

		sharedBinaryPath = binPath
	})

	return sharedBinaryPath
}

// runCommand runs the binary with an isolated HOME and the given extra
// environment, returning the combined output.
func runCommand(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getBinary(), args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), "HOME="+cmd.Dir)
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}
