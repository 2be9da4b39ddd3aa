package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdfix/pkg/fsutil"
)

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	t.Run("first backup is written", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		if err := os.WriteFile(path, []byte("original\n"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		created, err := fsutil.CreateBackup(context.Background(), path)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if !created {
			t.Error("created = false, want true")
		}

		got, err := os.ReadFile(path + fsutil.BackupSuffix)
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(got) != "original\n" {
			t.Errorf("backup content = %q, want %q", got, "original\n")
		}
	})

	t.Run("existing backup is kept", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		if err := os.WriteFile(path, []byte("v2\n"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path+fsutil.BackupSuffix, []byte("v1\n"), 0644); err != nil {
			t.Fatalf("setup backup: %v", err)
		}

		created, err := fsutil.CreateBackup(context.Background(), path)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if created {
			t.Error("created = true, want false")
		}

		got, err := os.ReadFile(path + fsutil.BackupSuffix)
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(got) != "v1\n" {
			t.Errorf("backup content = %q, want the first backup preserved", got)
		}
	})

	t.Run("missing original is a no-op", func(t *testing.T) {
		t.Parallel()

		created, err := fsutil.CreateBackup(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if created {
			t.Error("created = true, want false")
		}
	})
}
