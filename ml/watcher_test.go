package ml

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWatchArtifactsWarnsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o600); err != nil {
		t.Fatal(err)
	}

	core, logs := observer.New(zap.WarnLevel)
	stop, err := WatchArtifacts(ArtifactPaths{Model: path}, zap.New(core))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte(`{"changed":true}`), 0o600); err != nil {
		t.Fatal(err)
	}

	// fsnotify delivery is asynchronous; poll for the warning.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if logs.FilterMessage("artifact changed on disk, restart required to reload").Len() > 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("expected a restart-required warning after the artifact changed")
}
