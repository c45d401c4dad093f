package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	oerrors "github.com/libforge/cli/internal/errors"
)

// substituteConcurrency bounds the number of files rewritten at once.
// Per-file units are independent; within a file the read-transform-write is
// one atomic unit.
const substituteConcurrency = 8

// BuildPathIndex inverts the parameter manifest: each distinct relative path
// maps to the tokens that apply to it. A path listed under several tokens
// appears once, so every file is read and written at most once. Token order
// per path follows the manifest's listing order; duplicates are dropped.
func BuildPathIndex(params ParameterManifest) map[string][]string {
	index := make(map[string][]string)

	for token, paths := range params {
		for _, path := range paths {
			tokens := index[path]
			seen := false
			for _, t := range tokens {
				if t == token {
					seen = true
					break
				}
			}
			if !seen {
				index[path] = append(tokens, token)
			}
		}
	}

	return index
}

// SubstituteTokens rewrites every file the parameter manifest references,
// replacing each resolvable token with its value from the table. Tokens
// absent from the table are skipped with a diagnostic; a listed file that
// cannot be read aborts the run.
func SubstituteTokens(ctx context.Context, dest string, params ParameterManifest, tokens TokenTable, diag DiagFunc) error {
	index := BuildPathIndex(params)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(substituteConcurrency)

	for rel, fileTokens := range index {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return substituteFile(dest, rel, fileTokens, tokens, diag)
		})
	}

	return g.Wait()
}

// substituteFile applies all tokens for one file as a single
// read-transform-write unit. The file is written back only when at least one
// token resolved, leaving untouched files free of timestamp and mode churn.
func substituteFile(dest, rel string, fileTokens []string, tokens TokenTable, diag DiagFunc) error {
	path := filepath.Join(dest, filepath.FromSlash(rel))

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError(
				fmt.Sprintf("parameter manifest references %s, which does not exist", rel),
				path,
				"Every path in the parameter manifest must exist in the materialized template.")
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	applied := 0

	for _, token := range fileTokens {
		value, ok := tokens[token]
		if !ok {
			diag("token has no resolved value, skipping", "token", token, "file", rel)
			continue
		}

		// Tokens are matched as literal text, so pattern-special characters
		// like { and } in token names need no escaping here.
		content = strings.ReplaceAll(content, token, value)
		applied++
	}

	if applied == 0 {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
