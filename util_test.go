package fileio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetAbs(t *testing.T) {
	t.Run("absolute path passthrough", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "file.txt")
		got, err := GetAbs(abs)
		if err != nil {
			t.Fatalf("GetAbs(%q) returned error: %v", abs, err)
		}
		if got != abs {
			t.Errorf("GetAbs(%q) = %q, want %q", abs, got, abs)
		}
	})

	t.Run("relative path conversion", func(t *testing.T) {
		got, err := GetAbs(".")
		if err != nil {
			t.Fatalf("GetAbs(.) returned error: %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("GetAbs(.) = %q, want absolute path", got)
		}
	})
}

func TestExists(t *testing.T) {
	t.Run("existing file returns true", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "fileio-exists-*")
		if err != nil {
			t.Fatalf("CreateTemp failed: %v", err)
		}
		_ = f.Close()

		ok, err := Exists(f.Name())
		if err != nil {
			t.Fatalf("Exists(%q) returned error: %v", f.Name(), err)
		}
		if !ok {
			t.Errorf("Exists(%q) = false, want true", f.Name())
		}
	})

	t.Run("existing directory returns true", func(t *testing.T) {
		dir := t.TempDir()
		ok, err := Exists(dir)
		if err != nil {
			t.Fatalf("Exists(%q) returned error: %v", dir, err)
		}
		if !ok {
			t.Errorf("Exists(%q) = false, want true", dir)
		}
	})

	t.Run("missing path returns false without error", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "does-not-exist")
		ok, err := Exists(p)
		if err != nil {
			t.Fatalf("Exists(%q) returned error: %v", p, err)
		}
		if ok {
			t.Errorf("Exists(%q) = true, want false", p)
		}
	})
}
