//go:build !integration

package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "agent.md")
	if err := os.WriteFile(file, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists should return true for an existing file")
	}
	if FileExists(dir) {
		t.Error("FileExists should return false for a directory")
	}
	if FileExists(filepath.Join(dir, "missing.md")) {
		t.Error("FileExists should return false for a missing path")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	if !DirExists(dir) {
		t.Error("DirExists should return true for an existing directory")
	}

	file := filepath.Join(dir, "agent.md")
	if err := os.WriteFile(file, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}
	if DirExists(file) {
		t.Error("DirExists should return false for a file")
	}
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	if !PathExists(dir) {
		t.Error("PathExists should return true for a directory")
	}
	if PathExists(filepath.Join(dir, "nope")) {
		t.Error("PathExists should return false for a missing path")
	}
}

func TestFileSize(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "agent.md")
	if err := os.WriteFile(file, []byte("12345"), 0644); err != nil {
		t.Fatal(err)
	}

	size, err := FileSize(file)
	if err != nil {
		t.Fatalf("FileSize returned error: %v", err)
	}
	if size != 5 {
		t.Errorf("FileSize = %d, want 5", size)
	}

	if _, err := FileSize(dir); err == nil {
		t.Error("FileSize should fail for a directory")
	}
	if _, err := FileSize(filepath.Join(dir, "missing")); err == nil {
		t.Error("FileSize should fail for a missing path")
	}
}

func TestValidatePath(t *testing.T) {
	if _, err := ValidatePath(""); err == nil {
		t.Error("ValidatePath should reject empty paths")
	}

	got, err := ValidatePath("some/relative/../path.md")
	if err != nil {
		t.Fatalf("ValidatePath returned error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ValidatePath should return an absolute path, got %q", got)
	}
}
