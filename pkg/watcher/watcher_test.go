package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherFiresOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.stl")
	if err := os.WriteFile(path, []byte("solid empty\nendsolid empty\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan string, 1)
	fw, err := New(path, 50*time.Millisecond, func(file string) {
		select {
		case fired <- file:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer fw.Close()
	fw.Start()

	if err := os.WriteFile(path, []byte("solid changed\nendsolid changed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("Start failed: no callback after writing the watched file")
	}
}

func TestWatcherMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.stl"), time.Millisecond, func(string) {})
	if err == nil {
		t.Error("New failed: expected an error for a missing file")
	}
}
