//go:build !integration

package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollectAgentFilesExplicitArgs(t *testing.T) {
	files, err := CollectAgentFiles([]string{"b.agent.md", "a.agent.md"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 || files[0] != "a.agent.md" || files[1] != "b.agent.md" {
		t.Errorf("files = %v, want sorted [a.agent.md b.agent.md]", files)
	}
}

func TestCollectAgentFilesRejectsNonMarkdown(t *testing.T) {
	if _, err := CollectAgentFiles([]string{"agent.yaml"}, ""); err == nil {
		t.Error("expected error for non-markdown argument")
	}
}

func TestCollectAgentFilesScansDirectory(t *testing.T) {
	dir := t.TempDir()
	mustWrite := func(rel string) {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	mustWrite("reviewer.agent.md")
	mustWrite("triage.md")
	mustWrite("nested/helper.agent.md")
	mustWrite("README.txt") // not markdown, skipped

	files, err := CollectAgentFiles(nil, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("files = %v, want 3 markdown files", files)
	}
	// Sorted order
	want := []string{
		filepath.Join(dir, "nested/helper.agent.md"),
		filepath.Join(dir, "reviewer.agent.md"),
		filepath.Join(dir, "triage.md"),
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestCollectAgentFilesMissingRoot(t *testing.T) {
	if _, err := CollectAgentFiles(nil, filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}
