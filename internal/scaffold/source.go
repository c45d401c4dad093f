package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	oerrors "github.com/libforge/cli/internal/errors"
	"github.com/libforge/cli/internal/output"
	"github.com/libforge/cli/internal/templates"
)

// Source materializes a template tree at a destination folder. Both
// implementations must leave the same post-condition: a complete template
// copy at the destination, ready for history stripping.
type Source interface {
	// Materialize produces the template's contents at dest.
	Materialize(ctx context.Context, dest string, overwrite bool) error

	// Describe returns a human-readable origin for logging.
	Describe() string
}

// SelectSource picks the source implementation for a run: a remote clone when
// a template URL is given, the bundled template otherwise.
func SelectSource(templateURL string) Source {
	if templateURL != "" {
		return &GitSource{URL: templateURL}
	}
	return &LocalSource{}
}

// GitSource clones a remote template repository.
type GitSource struct {
	// URL is the repository to clone.
	URL string
}

// Materialize performs a shallow, single-branch clone into dest. Clone
// failures are fatal and surfaced verbatim; there are no retries.
func (s *GitSource) Materialize(ctx context.Context, dest string, overwrite bool) error {
	// Replacing existing content means starting from an empty folder;
	// go-git refuses to clone into a non-empty directory.
	if overwrite {
		if err := os.RemoveAll(dest); err != nil {
			return fmt.Errorf("clearing destination %s: %w", dest, err)
		}
	}

	output.Debug("cloning template", "url", s.URL, "dest", dest)

	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:          s.URL,
		Depth:        1,
		SingleBranch: true,
	})
	if err != nil {
		return oerrors.NewAcquisitionError("cloning template repository failed",
			map[string]string{"url": s.URL}, err)
	}

	return nil
}

// Describe returns the clone URL.
func (s *GitSource) Describe() string {
	return s.URL
}

// LocalSource extracts the bundled template shipped inside the binary.
type LocalSource struct {
	// FS overrides the bundled template filesystem. Nil means the embedded
	// library template.
	FS fs.FS
}

// Materialize copies every file of the bundled template into dest. With
// overwrite disabled, an existing file at a target path is a conflict error
// rather than a silent merge.
func (s *LocalSource) Materialize(ctx context.Context, dest string, overwrite bool) error {
	fsys := s.FS
	if fsys == nil {
		fsys = templates.Library()
	}

	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == "." {
			return os.MkdirAll(dest, 0o755)
		}

		target := filepath.Join(dest, filepath.FromSlash(path))

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		if !overwrite {
			if _, statErr := os.Stat(target); statErr == nil {
				return oerrors.NewConflictError("file already exists", target,
					"Use --overwrite to replace existing files.")
			}
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading bundled template file %s: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", target, err)
		}

		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}

		output.Debug("copied template file", "path", path)
		return nil
	})
}

// Describe identifies the bundled template.
func (s *LocalSource) Describe() string {
	return "bundled template"
}
