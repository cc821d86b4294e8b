package configwatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string, totalModules string) {
	t.Helper()
	body := "storage:\n  local_path: " + filepath.Join(dir, "uploads") + "\n" +
		"calendar:\n  total_modules: " + totalModules + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
}

func startWatch(t *testing.T, dir string) (<-chan *config.Config, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	reloads := make(chan *config.Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, func(cfg *config.Config) { reloads <- cfg })
	}()
	// Give the watcher time to register the directory.
	time.Sleep(200 * time.Millisecond)
	return reloads, done
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "15")
	reloads, _ := startWatch(t, dir)

	writeConfig(t, dir, "12")

	select {
	case cfg := <-reloads:
		assert.Equal(t, 12, cfg.Calendar.TotalModules)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}
}

func TestWatch_SkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "15")
	reloads, _ := startWatch(t, dir)

	writeConfig(t, dir, "0")

	select {
	case cfg := <-reloads:
		t.Fatalf("unexpected reload with %d modules", cfg.Calendar.TotalModules)
	case <-time.After(2 * time.Second):
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "15")
	reloads, _ := startWatch(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case <-reloads:
		t.Fatal("reload triggered by an unrelated file")
	case <-time.After(2 * time.Second):
	}
}

func TestWatch_StopsWithContext(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "15")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, dir, func(*config.Config) {}) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "absent"), func(*config.Config) {})
	assert.Error(t, err)
}
