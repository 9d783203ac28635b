package commands

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRegistersMigrationCommands(t *testing.T) {
	for _, name := range []string{"up", "down", "status"} {
		cmd, _, err := RootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestMigrationCommandFailsWithoutDatabase(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "")

	RootCmd.SetArgs([]string{"status"})
	err := RootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL is empty")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
