package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/libforge/cli/internal/errors"
)

// ParameterManifestName is the parameter manifest's conventional filename at
// the template root.
const ParameterManifestName = "template.parameters.json"

// LoadParameters reads and parses the parameter manifest at the destination
// folder's root. A template without this manifest cannot be finished, so a
// missing file is fatal.
func LoadParameters(dest string) (ParameterManifest, error) {
	path := filepath.Join(dest, ParameterManifestName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("%s not found", ParameterManifestName), dest,
				"The template must declare its substitution parameters at the template root.")
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var params ParameterManifest
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, &oerrors.DetailError{
			Type:     "parse failed",
			Message:  fmt.Sprintf("malformed parameter manifest: %v", err),
			Location: path,
			Cause:    oerrors.ErrParse,
		}
	}

	return params, nil
}
