package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/psychmatch/internal/adapters/driven/notify"
	"github.com/custodia-labs/psychmatch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/psychmatch/internal/app"
)

// runCommand executes the root command with args and returns its combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// setupTestApp installs an application backed by an in-memory config store.
func setupTestApp(t *testing.T, config map[string]any) *app.App {
	t.Helper()
	store := memory.NewConfigStore(config)
	settings, err := app.LoadSettings(store)
	require.NoError(t, err)

	a, err := app.New(*settings, app.WithConfigStore(store), app.WithNotifier(notify.NewOutbox()))
	require.NoError(t, err)

	old := application
	SetApp(a)
	t.Cleanup(func() { SetApp(old) })
	return a
}

