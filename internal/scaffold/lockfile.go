package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// LockFile is the name of the dependency lockfile.
const LockFile = "barley.lock"

// Lockfile pins each manifest dependency to the Go module that provides
// it.
type Lockfile struct {
	Dependencies map[string]LockedDependency `toml:"dependencies"`
}

// LockedDependency records the resolved version of one action module.
type LockedDependency struct {
	Version       string `toml:"version"`
	Module        string `toml:"module"`
	ModuleVersion string `toml:"module_version"`
}

// LoadLockfile reads the lockfile in dir. A missing lockfile is an empty
// one.
func LoadLockfile(dir string) (*Lockfile, error) {
	raw, err := os.ReadFile(filepath.Join(dir, LockFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &Lockfile{Dependencies: make(map[string]LockedDependency)}, nil
		}
		return nil, fmt.Errorf("read %s: %w", LockFile, err)
	}

	var lock Lockfile
	if err := toml.Unmarshal(raw, &lock); err != nil {
		return nil, fmt.Errorf("parse %s: %w", LockFile, err)
	}
	if lock.Dependencies == nil {
		lock.Dependencies = make(map[string]LockedDependency)
	}
	return &lock, nil
}

// Save writes the lockfile back to dir.
func (l *Lockfile) Save(dir string) error {
	raw, err := toml.Marshal(l)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", LockFile, err)
	}
	if err := os.WriteFile(filepath.Join(dir, LockFile), raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", LockFile, err)
	}
	return nil
}
