package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := ExpandPath("~/reports/out.sarif")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "reports/out.sarif"); got != want {
		t.Errorf("ExpandPath = %q, want %q", got, want)
	}

	got, err = ExpandPath("/tmp/x")
	if err != nil || got != "/tmp/x" {
		t.Errorf("ExpandPath(/tmp/x) = %q, %v", got, err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.html")
	if err := os.WriteFile(path, []byte("<p>x</p>"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if string(data) != "<p>x</p>" {
		t.Errorf("unexpected contents %q", data)
	}

	if _, err := ReadFile(dir); err == nil {
		t.Error("expected error reading a directory")
	}
	if _, err := ReadFile(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error reading a missing file")
	}
}

func TestCreateFolderIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b")
	if err := CreateFolderIfNotExists(path); err != nil {
		t.Fatalf("CreateFolderIfNotExists returned error: %v", err)
	}
	if err := CreateFolderIfNotExists(path); err != nil {
		t.Fatalf("second call should be a no-op, got %v", err)
	}
}
