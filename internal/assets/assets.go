package assets

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

// DefaultManifestName is the file written by WriteDefaultManifestIfMissing.
const DefaultManifestName = "packages.yaml"

//go:embed default-manifest.yaml
var defaultManifest []byte

// ManifestSchema is the JSON Schema every merged manifest must satisfy.
//
//go:embed manifest.schema.json
var ManifestSchema []byte

// WriteDefaultManifestIfMissing writes packages.yaml to targetDir if it does not exist.
func WriteDefaultManifestIfMissing(targetDir string) (bool, error) {
	if targetDir == "" {
		return false, errors.New("empty targetDir")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return false, err
	}
	p := filepath.Join(targetDir, DefaultManifestName)
	if _, err := os.Stat(p); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := os.WriteFile(p, defaultManifest, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
