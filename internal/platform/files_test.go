package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	if IsAndroid() {
		t.Skip("desktop only")
	}

	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	err := OpenFileInManager(filepath.Join(t.TempDir(), "missing.mp3"))
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}
}

func TestRevealCommand(t *testing.T) {
	path := filepath.Join(string(filepath.Separator), "tmp", "segments", "job-segment.mp3")
	dir := filepath.Dir(path)

	tests := []struct {
		goos     string
		wantName string
		wantLast string
	}{
		{OSDarwin, OpenCommand, path},
		{OSWindows, ExplorerCommand, WindowsSelectParam + path},
		{OSLinux, XDGOpenCommand, dir},
		{OSAndroid, AndroidAMTool, "file://" + dir},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := revealCommand(tt.goos, path)
			if err != nil {
				t.Fatalf("revealCommand() error = %v", err)
			}
			if name != tt.wantName {
				t.Errorf("command = %q, expected %q", name, tt.wantName)
			}
			if last := args[len(args)-1]; last != tt.wantLast {
				t.Errorf("last arg = %q, expected %q", last, tt.wantLast)
			}
		})
	}

	if _, _, err := revealCommand("plan9", path); err == nil {
		t.Error("expected error for unsupported OS")
	}
}

func TestOpenFileInManager_RunsRevealCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "job-segment.mp3")
	if err := os.WriteFile(file, []byte("ID3"), 0o644); err != nil {
		t.Fatal(err)
	}

	var gotName string
	execCommand = func(name string, args ...string) *exec.Cmd {
		gotName = name
		return exec.Command("true")
	}
	t.Cleanup(func() { execCommand = exec.Command })

	if err := OpenFileInManager(file); err != nil {
		// unsupported OS in the test environment
		t.Skipf("reveal not supported here: %v", err)
	}
	if gotName == "" {
		t.Error("expected reveal command to be executed")
	}
}
