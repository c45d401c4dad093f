package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/libforge/cli/internal/errors"
	"github.com/libforge/cli/internal/output"
	"github.com/libforge/cli/internal/pipeline"
)

// Options are the run parameters collected by the CLI harness. LibraryName
// and RepoName are expected to be normalized already (NormalizeLibraryName,
// NormalizeRepoName).
type Options struct {
	// LibraryName is the human-readable library name, first character
	// capitalized.
	LibraryName string

	// RepoName is the repository name without a leading "@", typically
	// owner/repo.
	RepoName string

	// Dest is the destination folder for the generated project.
	Dest string

	// TemplateURL selects a remote template. Empty means the bundled one.
	TemplateURL string

	// Source overrides the source selected from TemplateURL. Nil means
	// SelectSource(TemplateURL). Used by tests to inject fixture templates.
	Source Source

	// Overwrite allows replacing an existing destination.
	Overwrite bool

	// Tokens overrides the token resolution table. Nil means the default
	// table derived from LibraryName and RepoName.
	Tokens TokenTable

	// Diag overrides the diagnostics sink. Nil means output.Warn.
	Diag DiagFunc

	// NoSpinner disables the per-stage TTY spinner.
	NoSpinner bool
}

// Validate checks the run parameters before any stage executes.
func (o *Options) Validate() error {
	if o.LibraryName == "" {
		return oerrors.NewValidationError("library name must not be empty", "", "")
	}
	if o.RepoName == "" {
		return oerrors.NewValidationError("repository name must not be empty", "", "")
	}
	if o.Dest == "" {
		return oerrors.NewValidationError("destination folder must not be empty", "", "")
	}
	return nil
}

// Result describes a completed run.
type Result struct {
	// Dest is the absolute path of the generated project.
	Dest string

	// Files lists the project's files relative to Dest, for summary output.
	Files []string
}

// Run executes the whole scaffolding pipeline: source acquisition, history
// stripping, parameter loading, manifest rewriting, token substitution and
// cleanup, in that order, aborting on the first failing stage.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	dest, err := filepath.Abs(opts.Dest)
	if err != nil {
		return nil, fmt.Errorf("resolving destination path: %w", err)
	}

	// Precondition: never start a run that would partially overwrite an
	// existing destination.
	destExisted := false
	if _, statErr := os.Stat(dest); statErr == nil {
		if !opts.Overwrite {
			return nil, oerrors.NewConflictError("destination folder already exists", dest,
				"Choose a different destination or pass --overwrite.")
		}
		destExisted = true
	}

	rc := &RunContext{
		TemplateURL: opts.TemplateURL,
		Dest:        dest,
		LibraryName: opts.LibraryName,
		RepoName:    opts.RepoName,
		Overwrite:   opts.Overwrite,
		Tokens:      opts.Tokens,
		Diag:        opts.Diag,
	}
	if rc.Tokens == nil {
		rc.Tokens = DefaultTokenTable(opts.LibraryName, opts.RepoName)
	}
	if rc.Diag == nil {
		rc.Diag = output.Warn
	}

	source := opts.Source
	if source == nil {
		source = SelectSource(opts.TemplateURL)
	}
	output.Debug("starting run",
		"library", rc.LibraryName,
		"repo", rc.RepoName,
		"dest", rc.Dest,
		"source", source.Describe(),
	)

	stages := []pipeline.Stage{
		{
			Title: "Materializing template",
			Run: func(ctx context.Context) error {
				err := source.Materialize(ctx, rc.Dest, rc.Overwrite)
				if err != nil && !destExisted {
					// The run created the folder; do not leave a partial tree.
					_ = os.RemoveAll(rc.Dest)
				}
				return err
			},
		},
		{
			Title: "Removing version control history",
			Run: func(ctx context.Context) error {
				return StripHistory(rc.Dest)
			},
		},
		{
			Title: "Loading template parameters",
			Run: func(ctx context.Context) error {
				params, err := LoadParameters(rc.Dest)
				if err != nil {
					return err
				}
				rc.Params = params
				return nil
			},
		},
		{
			Title: "Rewriting package manifest",
			Run: func(ctx context.Context) error {
				return RewritePackageManifest(rc.Dest, rc.RepoName)
			},
		},
		{
			Title: "Substituting tokens",
			Run: func(ctx context.Context) error {
				return SubstituteTokens(ctx, rc.Dest, rc.Params, rc.Tokens, rc.Diag)
			},
		},
		{
			Title: "Cleaning up scaffold files",
			Run: func(ctx context.Context) error {
				return Cleanup(rc.Dest)
			},
		},
	}

	runner := pipeline.NewRunner(stages)
	if opts.NoSpinner {
		runner = runner.WithoutSpinner()
	}

	if err := runner.Run(ctx); err != nil {
		return nil, err
	}

	files, err := listProjectFiles(dest)
	if err != nil {
		return nil, err
	}

	return &Result{Dest: dest, Files: files}, nil
}

// listProjectFiles walks the generated project and returns its files relative
// to dest, for the post-run summary.
func listProjectFiles(dest string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dest, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dest, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing generated files: %w", err)
	}

	return files, nil
}
