package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// ManifestFile is the name of the project manifest.
const ManifestFile = "barley.toml"

var projectNameRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Manifest describes a barley project: exactly one of Script or Library is
// set, plus the action modules the project depends on.
type Manifest struct {
	Script       *ProjectInfo      `toml:"script,omitempty" validate:"required_without=Library"`
	Library      *ProjectInfo      `toml:"library,omitempty" validate:"required_without=Script"`
	Dependencies map[string]string `toml:"dependencies"`
}

// ProjectInfo names a script or library project.
type ProjectInfo struct {
	Name    string `toml:"name" validate:"required,projectname"`
	Version string `toml:"version" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		return projectNameRe.MatchString(fl.Field().String())
	})
	return v
}

// ValidateProjectName reports whether name is acceptable for a new
// project.
func ValidateProjectName(name string) error {
	if !projectNameRe.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match %s", name, projectNameRe)
	}
	return nil
}

// LoadManifest reads and validates the manifest in dir.
func LoadManifest(dir string) (*Manifest, error) {
	raw, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ManifestFile, err)
	}

	var manifest Manifest
	if err := toml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestFile, err)
	}
	if manifest.Dependencies == nil {
		manifest.Dependencies = make(map[string]string)
	}

	if err := newValidator().Struct(&manifest); err != nil {
		return nil, fmt.Errorf("validate %s: %w", ManifestFile, err)
	}

	return &manifest, nil
}

// Save writes the manifest back to dir.
func (m *Manifest) Save(dir string) error {
	raw, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", ManifestFile, err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", ManifestFile, err)
	}
	return nil
}

// IsScript reports whether the manifest describes a script project.
func (m *Manifest) IsScript() bool {
	return m.Script != nil
}
