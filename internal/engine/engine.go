package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"inferd/internal/registry"
	"inferd/pkg/types"
)

// State represents the lifecycle state of the engine and its models.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
)

// loadedModel pairs an artifact with its usage counters.
type loadedModel struct {
	info     types.Model
	requests uint64
	lastUsed time.Time
}

// Engine holds both pretrained models. Weights are loaded exactly once via
// Load and are read-only afterwards; the mutex only guards lifecycle state
// and usage counters.
type Engine struct {
	mu        sync.RWMutex
	state     State
	lastErr   string
	registry  []types.Model
	cfg       Config
	device    string
	startTime time.Time

	text       loadedModel
	vision     loadedModel
	textSess   TextSession
	visionSess VisionSession
}

// Load resolves both artifacts from the registry and opens backend sessions.
// Any failure is fatal to the caller: the engine transitions to StateError
// and stays there.
func (e *Engine) Load(ctx context.Context) error {
	textModel, err := registry.FindByKind(e.registry, e.cfg.TextModel, types.KindText)
	if err != nil {
		return e.failLoad(err)
	}
	visionModel, err := registry.FindByKind(e.registry, e.cfg.VisionModel, types.KindVision)
	if err != nil {
		return e.failLoad(err)
	}
	gpuLayers := 0
	if e.device == DeviceCUDA {
		gpuLayers = e.cfg.GPULayers
	}
	textSess, err := e.cfg.Text.Load(textModel.Path, TextOptions{
		ContextSize: e.cfg.ContextSize,
		Threads:     e.cfg.Threads,
		GPULayers:   gpuLayers,
	})
	if err != nil {
		return e.failLoad(fmt.Errorf("load text model %s: %w", textModel.ID, err))
	}
	visionSess, err := e.cfg.Vision.Load(visionModel.Path, VisionOptions{
		UseCUDA:     e.device == DeviceCUDA,
		LibraryPath: e.cfg.ORTLibrary,
	})
	if err != nil {
		_ = textSess.Close()
		return e.failLoad(fmt.Errorf("load vision model %s: %w", visionModel.ID, err))
	}
	e.mu.Lock()
	e.text = loadedModel{info: textModel}
	e.vision = loadedModel{info: visionModel}
	e.textSess = textSess
	e.visionSess = visionSess
	e.state = StateReady
	e.mu.Unlock()
	return ctx.Err()
}

func (e *Engine) failLoad(err error) error {
	e.mu.Lock()
	e.state = StateError
	e.lastErr = err.Error()
	e.mu.Unlock()
	return err
}

// GenerateText runs autoregressive generation for the given prompt, capped at
// maxLength tokens (DefaultMaxLength when <= 0), and returns decoded text.
func (e *Engine) GenerateText(ctx context.Context, text string, maxLength int) (string, error) {
	if maxLength <= 0 {
		maxLength = types.DefaultMaxLength
	}
	e.mu.RLock()
	sess := e.textSess
	e.mu.RUnlock()
	if sess == nil {
		return "", ErrInference("text model not loaded")
	}
	out, err := sess.Generate(ctx, text, maxLength)
	if err != nil {
		return "", wrapInference(err)
	}
	e.touch(&e.text)
	return out, nil
}

// EmbedImage decodes the raw image bytes, preprocesses them and runs a single
// forward pass. It returns the first-token (CLS) representation and its shape.
func (e *Engine) EmbedImage(ctx context.Context, imageBytes []byte) ([]float32, []int, error) {
	tensor, err := PreprocessImage(imageBytes)
	if err != nil {
		return nil, nil, wrapInference(err)
	}
	e.mu.RLock()
	sess := e.visionSess
	e.mu.RUnlock()
	if sess == nil {
		return nil, nil, ErrInference("vision model not loaded")
	}
	vec, shape, err := sess.Embed(ctx, tensor)
	if err != nil {
		return nil, nil, wrapInference(err)
	}
	e.touch(&e.vision)
	return vec, shape, nil
}

// wrapInference collapses backend failures into the single inference error
// class, preserving dependency-unavailable and cancellation as-is.
func wrapInference(err error) error {
	if err == nil {
		return nil
	}
	if IsDependencyUnavailable(err) || err == context.Canceled || err == context.DeadlineExceeded {
		return err
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "inference failed") {
		msg = "inference failed: " + msg
	}
	return ErrInference(msg)
}

func (e *Engine) touch(m *loadedModel) {
	e.mu.Lock()
	m.requests++
	m.lastUsed = time.Now()
	e.mu.Unlock()
}

// Ready reports whether both models finished loading.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state == StateReady
}

// Device returns the placement resolved at construction.
func (e *Engine) Device() string { return e.device }

// ListModels returns a copy of the discovered registry.
func (e *Engine) ListModels() []types.Model {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]types.Model, len(e.registry))
	copy(out, e.registry)
	return out
}

// Close releases both backend sessions.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	var first error
	if e.textSess != nil {
		if err := e.textSess.Close(); err != nil && first == nil {
			first = err
		}
		e.textSess = nil
	}
	if e.visionSess != nil {
		if err := e.visionSess.Close(); err != nil && first == nil {
			first = err
		}
		e.visionSess = nil
	}
	return first
}
