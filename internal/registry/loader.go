package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"inferd/internal/common/fsutil"
	"inferd/pkg/types"
)

// LoadDir scans a directory for model artifacts and builds a registry from
// filenames. *.gguf files become text models, *.onnx files vision models.
// ID is the full filename (including extension); Path is the absolute file path.
func LoadDir(dir string) ([]types.Model, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []types.Model
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		kind := kindForName(name)
		if kind == "" {
			continue
		}
		models = append(models, types.Model{
			ID:   name,
			Name: name,
			Path: filepath.Join(abs, name),
			Kind: kind,
		})
	}
	return models, nil
}

// FindByKind returns the model with the given id and kind, or the sole model of
// that kind when id is empty.
func FindByKind(models []types.Model, id, kind string) (types.Model, error) {
	if id != "" {
		for _, m := range models {
			if m.ID == id && m.Kind == kind {
				return m, nil
			}
		}
		return types.Model{}, fmt.Errorf("%s model not found: %s", kind, id)
	}
	var found []types.Model
	for _, m := range models {
		if m.Kind == kind {
			found = append(found, m)
		}
	}
	switch len(found) {
	case 0:
		return types.Model{}, fmt.Errorf("no %s model in registry", kind)
	case 1:
		return found[0], nil
	default:
		return types.Model{}, fmt.Errorf("multiple %s models found, set one explicitly", kind)
	}
}

func kindForName(name string) string {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".gguf"):
		return types.KindText
	case strings.HasSuffix(strings.ToLower(name), ".onnx"):
		return types.KindVision
	default:
		return ""
	}
}
