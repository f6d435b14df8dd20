package registry

import (
	"os"
	"path/filepath"
	"testing"

	"inferd/pkg/types"
)

func writeArtifacts(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, f := range names {
		if err := os.WriteFile(filepath.Join(dir, f), []byte(""), 0o644); err != nil {
			t.Fatalf("write temp file: %v", err)
		}
	}
}

func TestLoadDirFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir,
		"gpt2.gguf",
		"other.GGUF", // case-insensitive
		"vit.onnx",
		"not-model.txt",
		"model.bin",
	)
	models, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if len(models) != 3 {
		t.Fatalf("expected 3 models, got %d", len(models))
	}
	kinds := map[string]int{}
	for _, m := range models {
		kinds[m.Kind]++
		if m.ID != m.Name {
			t.Fatalf("id/name mismatch: %+v", m)
		}
		if !filepath.IsAbs(m.Path) {
			t.Fatalf("path not absolute: %s", m.Path)
		}
	}
	if kinds[types.KindText] != 2 || kinds[types.KindVision] != 1 {
		t.Fatalf("unexpected kinds: %+v", kinds)
	}
}

func TestLoadDirSkipsSubdirs(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "nested.gguf"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	models, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if len(models) != 0 {
		t.Fatalf("expected no models, got %+v", models)
	}
}

func TestLoadDirMissing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing dir")
	}
}

func TestFindByKindExplicitID(t *testing.T) {
	models := []types.Model{
		{ID: "a.gguf", Kind: types.KindText},
		{ID: "b.gguf", Kind: types.KindText},
		{ID: "v.onnx", Kind: types.KindVision},
	}
	m, err := FindByKind(models, "b.gguf", types.KindText)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if m.ID != "b.gguf" {
		t.Fatalf("unexpected model: %+v", m)
	}
	if _, err := FindByKind(models, "missing.gguf", types.KindText); err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestFindByKindSoleArtifact(t *testing.T) {
	models := []types.Model{
		{ID: "a.gguf", Kind: types.KindText},
		{ID: "b.gguf", Kind: types.KindText},
		{ID: "v.onnx", Kind: types.KindVision},
	}
	m, err := FindByKind(models, "", types.KindVision)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if m.ID != "v.onnx" {
		t.Fatalf("unexpected model: %+v", m)
	}
	// Ambiguous without an explicit id.
	if _, err := FindByKind(models, "", types.KindText); err == nil {
		t.Fatal("expected ambiguity error")
	}
	// Nothing of the kind at all.
	if _, err := FindByKind(nil, "", types.KindVision); err == nil {
		t.Fatal("expected empty-registry error")
	}
}
