package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
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
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0600
)

// AppDirName is the directory name used under the user's config directory
const AppDirName = "vocab-trainer"

// Environment variables that identify an Android runtime
var androidEnvVars = []string{"ANDROID_DATA", "ANDROID_ROOT", "ANDROID_STORAGE"}

// IsAndroid reports whether the process runs on Android
func IsAndroid() bool {
	if runtime.GOOS == OSAndroid {
		return true
	}
	for _, env := range androidEnvVars {
		if os.Getenv(env) != "" {
			return true
		}
	}
	// Fyne Android apps run as libdist.so
	return filepath.Base(os.Args[0]) == "libdist.so"
}

// ConfigDir returns the directory holding the application's config file
func ConfigDir() (string, error) {
	// Fyne exposes the app's private storage on Android
	if IsAndroid() {
		if filesDir := os.Getenv("FILESDIR"); filesDir != "" {
			return filepath.Join(filesDir, AppDirName), nil
		}
	}

	dir, err := os.UserConfigDir()
	if err == nil {
		return filepath.Join(dir, AppDirName), nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", errors.Join(err, homeErr))
	}
	return filepath.Join(homeDir, ".config", AppDirName), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
