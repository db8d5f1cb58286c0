package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	AndroidAMTool   = "am"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// AndroidDownloadsDir is the shared Downloads folder visible to file managers
const AndroidDownloadsDir = "/sdcard/Download"

// execCommand is swapped in tests
var execCommand = exec.Command

// IsAndroid reports whether the process runs inside a Fyne Android package
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	if IsAndroid() {
		return AndroidDownloadsDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	name, args, err := revealCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return execCommand(name, args...).Run()
}

// revealCommand returns the command that reveals path on the given OS
func revealCommand(goos, path string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{MacOSSelectFlag, path}, nil
	case OSWindows:
		return ExplorerCommand, []string{WindowsSelectParam + path}, nil
	case OSLinux:
		// xdg-open cannot select a file, so open its folder
		return XDGOpenCommand, []string{filepath.Dir(path)}, nil
	case OSAndroid:
		return AndroidAMTool, []string{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filepath.Dir(path)}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// NotifyMediaScanner notifies Android media scanner about a saved segment
// so it shows up in music players. It is a no-op elsewhere.
func NotifyMediaScanner(filePath string) {
	if !IsAndroid() {
		return
	}

	cmd := execCommand(AndroidAMTool, "broadcast", "-a", "android.intent.action.MEDIA_SCANNER_SCAN_FILE", "-d", "file://"+filePath)
	go func() {
		if err := cmd.Run(); err != nil {
			log.Warn("media scanner notification failed", "path", filePath, "err", err)
		}
	}()
}
