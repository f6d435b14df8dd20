package engine

import (
	"time"

	"inferd/pkg/types"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultContextSize = 1024
	defaultGPULayers   = 32
)

// Config encapsulates all tunables for Engine construction.
type Config struct {
	Registry []types.Model
	// TextModel / VisionModel select artifacts by ID; empty picks the sole
	// artifact of the kind.
	TextModel   string
	VisionModel string
	// Device is "auto", "cpu" or "cuda".
	Device      string
	GPULayers   int
	Threads     int
	ContextSize int
	// ORTLibrary points at the onnxruntime shared library (optional).
	ORTLibrary string
	// Backends may be injected for tests; nil selects the built-in ones.
	Text   TextBackend
	Vision VisionBackend
}

// NewWithConfig constructs an Engine from Config, applying package defaults.
func NewWithConfig(cfg Config) *Engine {
	e := &Engine{
		state:    StateLoading,
		registry: cfg.Registry,
		cfg:      cfg,
	}
	if e.cfg.ContextSize <= 0 {
		e.cfg.ContextSize = defaultContextSize
	}
	if e.cfg.GPULayers <= 0 {
		e.cfg.GPULayers = defaultGPULayers
	}
	e.device = ResolveDevice(cfg.Device)
	if e.cfg.Text == nil {
		e.cfg.Text = NewLlamaBackend()
	}
	if e.cfg.Vision == nil {
		e.cfg.Vision = NewONNXBackend()
	}
	e.startTime = time.Now()
	return e
}
