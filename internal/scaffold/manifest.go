package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/libforge/cli/internal/errors"
)

const (
	// PackageManifestName is the generated project's own package manifest.
	PackageManifestName = "package.json"

	// InitialVersion is the version every generated project starts at.
	InitialVersion = "0.0.1"

	// githubBaseURL prefixes the derived repository, homepage and issue URLs.
	githubBaseURL = "https://github.com/"
)

// RewritePackageManifest rewrites the identity fields of the new project's
// package manifest: name, repository, homepage, bugs.url and version are
// replaced outright from the repo name, and every top-level key starting with
// an underscore is purged as scaffold-internal metadata. All other fields are
// preserved unchanged.
func RewritePackageManifest(dest, repoName string) error {
	path := filepath.Join(dest, PackageManifestName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError(
				fmt.Sprintf("%s not found", PackageManifestName), path,
				"The template must ship a package manifest at its root.")
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var manifest map[string]interface{}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return &oerrors.DetailError{
			Type:     "parse failed",
			Message:  fmt.Sprintf("malformed package manifest: %v", err),
			Location: path,
			Cause:    oerrors.ErrParse,
		}
	}

	repoURL := githubBaseURL + repoName

	manifest["name"] = "@" + repoName
	manifest["repository"] = repoURL
	manifest["homepage"] = repoURL
	manifest["version"] = InitialVersion

	bugs, ok := manifest["bugs"].(map[string]interface{})
	if !ok {
		bugs = map[string]interface{}{}
	}
	bugs["url"] = repoURL + "/issues"
	manifest["bugs"] = bugs

	for key := range manifest {
		if strings.HasPrefix(key, "_") {
			delete(manifest, key)
		}
	}

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
