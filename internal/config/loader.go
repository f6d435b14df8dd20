package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr        string `json:"addr" yaml:"addr" toml:"addr"`
	ModelsDir   string `json:"models_dir" yaml:"models_dir" toml:"models_dir"`
	TextModel   string `json:"text_model" yaml:"text_model" toml:"text_model"`
	VisionModel string `json:"vision_model" yaml:"vision_model" toml:"vision_model"`
	// Device is "auto", "cpu" or "cuda".
	Device string `json:"device" yaml:"device" toml:"device"`
	// GPULayers is the number of transformer layers offloaded to the GPU
	// by the text backend when Device resolves to cuda.
	GPULayers int `json:"gpu_layers" yaml:"gpu_layers" toml:"gpu_layers"`
	// Threads used by the text backend (0 = backend default).
	Threads int `json:"threads" yaml:"threads" toml:"threads"`
	// ContextSize is the text backend context window (0 = backend default).
	ContextSize int `json:"context_size" yaml:"context_size" toml:"context_size"`
	// ORTLibrary points at the onnxruntime shared library used by the vision
	// backend (empty = loader default).
	ORTLibrary string `json:"ort_library" yaml:"ort_library" toml:"ort_library"`
	// MaxBodyBytes limits JSON request bodies (0 = server default).
	MaxBodyBytes int64  `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	LogLevel     string `json:"log_level" yaml:"log_level" toml:"log_level"`
	// CORS is opt-in; when disabled no CORS middleware is installed.
	CORSEnabled        bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
