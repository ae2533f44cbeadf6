package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir loads every YAML file directly inside dir.
func LoadDir(dir string) (Manifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Manifest{}, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	files = sortedYAML(files)
	if len(files) == 0 {
		return Manifest{}, fmt.Errorf("no YAML manifest files found in %s", dir)
	}
	return LoadFromFiles(files)
}

// LoadFromFiles merges manifests in file name order. A package may be declared
// in only one file.
func LoadFromFiles(files []string) (Manifest, error) {
	combined := Manifest{}
	seen := map[string]string{}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Manifest{}, err
		}
		var part Manifest
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Manifest{}, fmt.Errorf("%s: %w", f, err)
		}
		if err := checkDuplicatesWithFiles(seen, part, f); err != nil {
			return Manifest{}, err
		}
		combined.Packages = append(combined.Packages, part.Packages...)
	}
	if err := ValidateNoDuplicates(combined); err != nil {
		return Manifest{}, err
	}
	return combined, nil
}

func ValidateNoDuplicates(m Manifest) error {
	p := map[string]struct{}{}
	for _, v := range m.Packages {
		if _, ok := p[v.Name]; ok {
			return fmt.Errorf("duplicate package name: %s", v.Name)
		}
		p[v.Name] = struct{}{}
	}
	return nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func checkDuplicatesWithFiles(seen map[string]string, part Manifest, file string) error {
	local := map[string]struct{}{}
	for _, p := range part.Packages {
		if _, ok := local[p.Name]; ok {
			return fmt.Errorf("duplicate package '%s' found in %s", p.Name, file)
		}
		local[p.Name] = struct{}{}
	}
	for _, p := range part.Packages {
		if prev, ok := seen[p.Name]; ok {
			return fmt.Errorf("duplicate package '%s' found in %s and %s", p.Name, prev, file)
		}
	}
	for _, p := range part.Packages {
		seen[p.Name] = file
	}
	return nil
}
