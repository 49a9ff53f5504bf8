package scaffold

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/panthios/barley/pkg/logging"
)

// Project is a directory a scaffolder command operates on.
type Project struct {
	dir string
	log logging.Logger
}

// NewProject creates a Project rooted at dir. An empty dir means the
// current working directory.
func NewProject(dir string, log logging.Logger) (*Project, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	if log == nil {
		log = logging.NewNoop()
	}
	return &Project{dir: dir, log: log}, nil
}

// Dir returns the project root.
func (p *Project) Dir() string {
	return p.dir
}

// Name derives the project name from the directory name.
func (p *Project) Name() string {
	return filepath.Base(p.dir)
}

// IsEmpty reports whether the project directory has no entries.
func (p *Project) IsEmpty() (bool, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return false, fmt.Errorf("read directory: %w", err)
	}
	return len(entries) == 0, nil
}

// IsBarley reports whether the directory holds a barley manifest.
func (p *Project) IsBarley() bool {
	_, err := os.Stat(filepath.Join(p.dir, ManifestFile))
	return err == nil
}

// WriteFile writes a file relative to the project root, creating parent
// directories as needed.
func (p *Project) WriteFile(rel string, content []byte) error {
	path := filepath.Join(p.dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(rel), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}

// InitGit initializes a git repository at the project root. An already
// initialized repository is left alone.
func (p *Project) InitGit(ctx context.Context) error {
	_, err := git.PlainInit(p.dir, false)
	if err != nil {
		if err == git.ErrRepositoryAlreadyExists {
			p.log.Debug(ctx, "git repository already present", "dir", p.dir)
			return nil
		}
		return fmt.Errorf("git init: %w", err)
	}
	p.log.Debug(ctx, "initialized git repository", "dir", p.dir)
	return nil
}

// GoBuild compiles the project with the Go toolchain. target is an
// optional "GOOS/GOARCH" pair.
func (p *Project) GoBuild(ctx context.Context, target, output string) error {
	args := []string{"build"}
	if output != "" {
		args = append(args, "-o", output)
	}
	args = append(args, "./...")

	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = p.dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if target != "" {
		goos, goarch, err := splitTarget(target)
		if err != nil {
			return err
		}
		cmd.Env = append(cmd.Env, "GOOS="+goos, "GOARCH="+goarch)
	}

	p.log.Info(ctx, "building project", "dir", p.dir, "target", target)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	return nil
}

func splitTarget(target string) (string, string, error) {
	for i := 0; i < len(target); i++ {
		if target[i] == '/' {
			goos, goarch := target[:i], target[i+1:]
			if goos == "" || goarch == "" {
				break
			}
			return goos, goarch, nil
		}
	}
	return "", "", fmt.Errorf("invalid build target %q: expected GOOS/GOARCH", target)
}
