package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/config"
)

const probePattern = ".write-probe-*"

// Attempt records one candidate directory that was tried and rejected.
type Attempt struct {
	Path string
	Err  error
}

// StorageUnavailableError reports that no candidate directory accepted a
// write probe. It carries the full attempt history so the operator can
// see every path that was tried and why it failed.
type StorageUnavailableError struct {
	Attempts []Attempt
}

// Error implements the error interface
func (e *StorageUnavailableError) Error() string {
	var b strings.Builder
	b.WriteString("no writable storage location available; tried")
	for _, a := range e.Attempts {
		fmt.Fprintf(&b, " %s (%v);", a.Path, a.Err)
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Is lets callers classify this error with the domain taxonomy.
func (e *StorageUnavailableError) Is(target error) bool {
	return target == shared.ErrStorageUnavailable
}

// Locate resolves the first writable base directory for the database
// file. Candidates are tried in order:
//  1. the explicit override from configuration
//  2. the caller's preferred directory
//  3. the platform user-config directory
//  4. the system temporary directory
//
// Locate is safe to call on every process start: probing an already
// usable directory has no side effects.
func Locate(appName string, preferred string, cfg config.StorageConfig) (string, error) {
	var attempts []Attempt
	for _, dir := range candidateDirs(appName, preferred, cfg) {
		if dir == "" {
			continue
		}
		if err := probeDir(dir); err != nil {
			attempts = append(attempts, Attempt{Path: dir, Err: err})
			continue
		}
		return dir, nil
	}
	return "", &StorageUnavailableError{Attempts: attempts}
}

func candidateDirs(appName, preferred string, cfg config.StorageConfig) []string {
	dirs := []string{cfg.DataDir, preferred}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, appName))
	}
	return append(dirs, filepath.Join(os.TempDir(), appName))
}

// probeDir creates the directory if needed and verifies writability by
// creating and removing a marker file.
func probeDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	marker, err := os.CreateTemp(dir, probePattern)
	if err != nil {
		return err
	}
	name := marker.Name()
	if err := marker.Close(); err != nil {
		return err
	}
	return os.Remove(name)
}
