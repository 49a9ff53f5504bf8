package scaffold

import (
	"context"
	"fmt"
	"path/filepath"
)

// Init populates an empty directory with a new script or library project
// and initializes a git repository.
func Init(ctx context.Context, p *Project, lib bool) error {
	empty, err := p.IsEmpty()
	if err != nil {
		return err
	}
	if !empty {
		return fmt.Errorf("directory %s is not empty", p.Dir())
	}

	name := p.Name()
	if err := ValidateProjectName(name); err != nil {
		return err
	}

	manifest := &Manifest{Dependencies: make(map[string]string)}
	var files map[string]string
	if lib {
		manifest.Library = &ProjectInfo{Name: name, Version: "0.1.0"}
		files = map[string]string{
			"templates/library/lib.go.tmpl": "lib.go",
			"templates/library/go.mod.tmpl": "go.mod",
		}
	} else {
		manifest.Script = &ProjectInfo{Name: name, Version: "0.1.0"}
		files = map[string]string{
			"templates/script/main.go.tmpl": "main.go",
			"templates/script/go.mod.tmpl":  "go.mod",
		}
	}

	for tmpl, target := range files {
		content, err := renderTemplate(tmpl, name)
		if err != nil {
			return err
		}
		if err := p.WriteFile(target, content); err != nil {
			return err
		}
	}

	gitignore, err := templateFS.ReadFile("templates/gitignore")
	if err != nil {
		return fmt.Errorf("read gitignore template: %w", err)
	}
	if err := p.WriteFile(".gitignore", gitignore); err != nil {
		return err
	}

	if err := manifest.Save(p.Dir()); err != nil {
		return err
	}

	return p.InitGit(ctx)
}

// Add records an action module in the manifest and lockfile.
func Add(ctx context.Context, p *Project, name string) error {
	if !p.IsBarley() {
		return fmt.Errorf("directory %s is not a barley project", p.Dir())
	}

	manifest, err := LoadManifest(p.Dir())
	if err != nil {
		return err
	}
	if !manifest.IsScript() {
		return fmt.Errorf("modules can only be added to script projects")
	}
	if _, exists := manifest.Dependencies[name]; exists {
		return fmt.Errorf("module %q is already installed", name)
	}

	index, err := LoadIndex()
	if err != nil {
		return err
	}
	entry, err := index.Resolve(name)
	if err != nil {
		return err
	}

	lock, err := LoadLockfile(p.Dir())
	if err != nil {
		return err
	}

	manifest.Dependencies[name] = entry.Version
	lock.Dependencies[name] = LockedDependency{
		Version:       entry.Version,
		Module:        entry.Module,
		ModuleVersion: entry.ModuleVersion,
	}

	if err := manifest.Save(p.Dir()); err != nil {
		return err
	}
	return lock.Save(p.Dir())
}

// Remove deletes an action module from the manifest and lockfile.
func Remove(ctx context.Context, p *Project, name string) error {
	if !p.IsBarley() {
		return fmt.Errorf("directory %s is not a barley project", p.Dir())
	}

	manifest, err := LoadManifest(p.Dir())
	if err != nil {
		return err
	}
	if !manifest.IsScript() {
		return fmt.Errorf("modules can only be removed from script projects")
	}
	if _, exists := manifest.Dependencies[name]; !exists {
		return fmt.Errorf("module %q is not installed", name)
	}

	lock, err := LoadLockfile(p.Dir())
	if err != nil {
		return err
	}

	delete(manifest.Dependencies, name)
	delete(lock.Dependencies, name)

	if err := manifest.Save(p.Dir()); err != nil {
		return err
	}
	return lock.Save(p.Dir())
}

// Build compiles a script project into bin/.
func Build(ctx context.Context, p *Project, target string) error {
	if !p.IsBarley() {
		return fmt.Errorf("directory %s is not a barley project", p.Dir())
	}

	manifest, err := LoadManifest(p.Dir())
	if err != nil {
		return err
	}
	if !manifest.IsScript() {
		return fmt.Errorf("only script projects can be built")
	}

	output := filepath.Join("bin", manifest.Script.Name)
	return p.GoBuild(ctx, target, output)
}
