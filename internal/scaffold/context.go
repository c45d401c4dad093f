// Package scaffold implements the template materialization pipeline behind
// `libforge new`: acquire a template, strip its history, load its parameter
// manifest, rewrite the package manifest, substitute tokens, and clean up
// scaffold-only artifacts.
package scaffold

import (
	"strings"
	"unicode"
)

// ParameterManifest maps a substitution token to the ordered list of relative
// file paths it applies to. It is loaded verbatim from the template's
// parameter manifest.
type ParameterManifest map[string][]string

// TokenTable maps well-known tokens to their per-run values. Tokens missing
// from the table are skipped with a diagnostic, not treated as errors: a
// template may declare tokens for optional features absent in a given run.
type TokenTable map[string]string

// DiagFunc receives non-fatal diagnostics from the pipeline. It matches the
// signature of the output package's leveled log functions so the default sink
// is output.Warn, while tests can inject a collector.
type DiagFunc func(msg string, keyvals ...interface{})

// Well-known substitution tokens.
const (
	// TokenLibName resolves to the library name.
	TokenLibName = "{{LIB_NAME}}"

	// TokenLibNameLegacy is an older spelling some templates still use.
	// It also resolves to the library name.
	TokenLibNameLegacy = "{{LIBRARY_NAME}}"

	// TokenRepo resolves to the repository name (owner/repo).
	TokenRepo = "{{REPO}}"
)

// DefaultTokenTable builds the token resolution table for a run.
func DefaultTokenTable(libraryName, repoName string) TokenTable {
	return TokenTable{
		TokenLibName:       libraryName,
		TokenLibNameLegacy: libraryName,
		TokenRepo:          repoName,
	}
}

// RunContext is the mutable state threaded through the pipeline stages.
// It has exactly one writer: the pipeline of a single run.
type RunContext struct {
	// TemplateURL is the remote template location. Empty means the bundled
	// template is used.
	TemplateURL string

	// Dest is the absolute destination folder.
	Dest string

	// LibraryName is the normalized library name (first character upper-cased).
	LibraryName string

	// RepoName is the normalized repository name (leading "@" stripped).
	RepoName string

	// Overwrite allows replacing existing destination content.
	Overwrite bool

	// Params is the loaded parameter manifest. Nil before the parameter
	// loading stage has run.
	Params ParameterManifest

	// Tokens is the token resolution table for this run.
	Tokens TokenTable

	// Diag receives non-fatal diagnostics.
	Diag DiagFunc
}

// NormalizeLibraryName upper-cases the first character of the library name.
func NormalizeLibraryName(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// NormalizeRepoName strips a single leading "@" from the repository name.
func NormalizeRepoName(name string) string {
	return strings.TrimPrefix(name, "@")
}
