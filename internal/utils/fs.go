package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileExists reports whether path names an existing file.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// WriteTOMLFile encodes v as TOML and writes it to path.
func WriteTOMLFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(v)
}

// AbsPath resolves path for display, handing it back unchanged when
// resolution fails.
func AbsPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// ExecutableDir returns the directory holding the running binary. Config
// files land there when no user directory is writable.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DirWritable reports whether dir can take new files, creating the
// directory first when missing. Creating a directory can succeed on a
// mount that then refuses file writes, so the check puts a real temp
// file through it.
func DirWritable(dir string) bool {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false
	}
	f, err := os.CreateTemp(dir, ".writecheck-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
