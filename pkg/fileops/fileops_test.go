package fileops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// Test helpers

func createTestFile(t *testing.T, dir, filename, content string) string {
	t.Helper()
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
	return path
}

func readFileContent(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// Tests for AtomicWriteFile

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("creates file and parents", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "deeper", "shot.png")
		if err := AtomicWriteFile(path, []byte("png-bytes"), 0644); err != nil {
			t.Fatalf("AtomicWriteFile failed: %v", err)
		}
		if got := readFileContent(t, path); got != "png-bytes" {
			t.Errorf("Content mismatch. Expected %q, got %q", "png-bytes", got)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		path := createTestFile(t, dir, "existing.txt", "old")
		if err := AtomicWriteFile(path, []byte("new"), 0644); err != nil {
			t.Fatalf("AtomicWriteFile failed: %v", err)
		}
		if got := readFileContent(t, path); got != "new" {
			t.Errorf("Expected overwritten content %q, got %q", "new", got)
		}
	})

	t.Run("applies permissions", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not meaningful on windows")
		}
		path := filepath.Join(dir, "secret.yaml")
		if err := AtomicWriteFile(path, []byte("k: v"), 0600); err != nil {
			t.Fatalf("AtomicWriteFile failed: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat failed: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("Expected permissions 0600, got %o", perm)
		}
	})

	t.Run("leaves no temporary files", func(t *testing.T) {
		clean := t.TempDir()
		if err := AtomicWriteFile(filepath.Join(clean, "a.txt"), []byte("a"), 0644); err != nil {
			t.Fatalf("AtomicWriteFile failed: %v", err)
		}
		entries, err := os.ReadDir(clean)
		if err != nil {
			t.Fatalf("ReadDir failed: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("Expected exactly one file, found %d", len(entries))
		}
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".tmp") {
				t.Errorf("Temporary file left behind: %s", e.Name())
			}
		}
	})
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	for i := 0; i < 2; i++ {
		if err := EnsureDirectoryExists(dir); err != nil {
			t.Fatalf("EnsureDirectoryExists call %d failed: %v", i+1, err)
		}
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("Expected directory to exist, err=%v", err)
	}
}

// Tests for validation

func TestValidateFileInDirectory(t *testing.T) {
	base := t.TempDir()
	outside := t.TempDir()
	inside := createTestFile(t, base, "card.md", "---\nkey: card\n---\n")
	outsideFile := createTestFile(t, outside, "evil.md", "x")
	if err := os.Mkdir(filepath.Join(base, "sub"), 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"regular file inside", inside, ""},
		{"file outside", outsideFile, "not within base directory"},
		{"traversal", filepath.Join(base, "..", filepath.Base(outside), "evil.md"), "not within base directory"},
		{"missing file", filepath.Join(base, "missing.md"), "does not exist"},
		{"directory", filepath.Join(base, "sub"), "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileInDirectory(tt.path, base)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestIsSymlink_MissingPathKeepsNotExist(t *testing.T) {
	_, err := IsSymlink(filepath.Join(t.TempDir(), "missing.md"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestValidateFileInDirectory_Symlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}
	base := t.TempDir()
	outside := t.TempDir()
	target := createTestFile(t, base, "real.md", "ok")
	escape := createTestFile(t, outside, "escape.md", "no")

	goodLink := filepath.Join(base, "good.md")
	if err := os.Symlink(target, goodLink); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}
	badLink := filepath.Join(base, "bad.md")
	if err := os.Symlink(escape, badLink); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	if isLink, err := IsSymlink(goodLink); err != nil || !isLink {
		t.Fatalf("IsSymlink(%s) = %v, %v", goodLink, isLink, err)
	}
	if isLink, err := IsSymlink(target); err != nil || isLink {
		t.Fatalf("IsSymlink(%s) = %v, %v", target, isLink, err)
	}

	if err := ValidateFileInDirectory(goodLink, base); err != nil {
		t.Errorf("Expected symlink inside base to pass, got %v", err)
	}
	if err := ValidateFileInDirectory(badLink, base); err == nil {
		t.Error("Expected symlink escaping base to fail")
	}
}

func TestValidateFileSizeLimit(t *testing.T) {
	dir := t.TempDir()
	small := createTestFile(t, dir, "small.md", "tiny")
	big := createTestFile(t, dir, "big.md", strings.Repeat("x", 2048))

	if err := ValidateFileSizeLimit(small, 1024); err != nil {
		t.Errorf("Expected small file to pass, got %v", err)
	}
	if err := ValidateFileSizeLimit(big, 1024); err == nil || !strings.Contains(err.Error(), "exceeds limit") {
		t.Errorf("Expected size error, got %v", err)
	}
	if err := ValidateFileSizeLimit(small, 0); err == nil {
		t.Error("Expected error for non-positive limit")
	}
	if err := ValidateFileSizeLimit(dir, 1024); err == nil {
		t.Error("Expected error for directory")
	}
	if err := ValidateFileSizeLimit(filepath.Join(dir, "nope"), 1024); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestValidateTextContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"plain markdown", "# Title\n\nBody text\twith tab\r\n", false},
		{"jsx with handlers", `<Button onClick={() => toast("hi")}>Go</Button>`, false},
		{"null byte", "abc\x00def", true},
		{"bell character", "ring\x07", true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTextContent(tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTextContent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
