package hooks

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Resolve checks that command can be run and returns its path. Relative
// paths containing a separator are resolved against workDir; bare names are
// looked up in PATH.
func Resolve(command, workDir string) (string, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return "", fmt.Errorf("hook command is empty")
	}

	path := command
	if strings.ContainsRune(command, filepath.Separator) || strings.ContainsRune(command, '/') {
		if !filepath.IsAbs(path) && workDir != "" {
			path = filepath.Join(workDir, path)
		}
	} else {
		resolved, err := exec.LookPath(command)
		if err != nil {
			return "", fmt.Errorf("hook command not found: %w", err)
		}
		path = resolved
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("hook command not found: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("hook command is a directory: %s", path)
	}
	if !isExecutablePath(path, info) {
		return "", fmt.Errorf("hook command is not executable: %s", path)
	}
	return path, nil
}

func isExecutablePath(path string, info os.FileInfo) bool {
	if info == nil {
		return false
	}
	if runtime.GOOS == "windows" {
		return isWindowsExecutable(path)
	}
	return info.Mode().Perm()&0111 != 0
}

// windowsExecutableExtensions returns lowercase executable extensions (with
// leading dot) parsed from PATHEXT, or a default set if it is unset.
func windowsExecutableExtensions() map[string]bool {
	exts := map[string]bool{}
	pathext := os.Getenv("PATHEXT")
	if pathext == "" {
		pathext = ".COM;.EXE;.BAT;.CMD"
	}
	for _, ext := range strings.Split(pathext, ";") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[strings.ToLower(ext)] = true
	}
	return exts
}

func isWindowsExecutable(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	return windowsExecutableExtensions()[ext]
}
