package engine

import "context"

// TextBackend abstracts the pretrained text-generation runtime.
// Concrete implementations (e.g., llama.cpp) should satisfy this interface.
type TextBackend interface {
	// Load opens the model at path and returns a session bound to it.
	Load(path string, opts TextOptions) (TextSession, error)
}

// TextSession is a loaded text model. Generate runs autoregressive generation
// and returns the decoded completion. Implementations must return promptly
// when the context is canceled and must be safe for concurrent callers.
type TextSession interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
	Close() error
}

// VisionBackend abstracts the pretrained image-encoder runtime.
type VisionBackend interface {
	Load(path string, opts VisionOptions) (VisionSession, error)
}

// VisionSession is a loaded vision model. Embed runs a single forward pass
// over a preprocessed image tensor and returns the first-token (CLS)
// representation together with its shape ([batch, hidden]).
type VisionSession interface {
	Embed(ctx context.Context, t Tensor) ([]float32, []int, error)
	Close() error
}

// TextOptions captures text backend tunables resolved at load time.
type TextOptions struct {
	ContextSize int
	Threads     int
	// GPULayers > 0 offloads that many layers; only meaningful on cuda.
	GPULayers int
}

// VisionOptions captures vision backend tunables resolved at load time.
type VisionOptions struct {
	// UseCUDA enables the CUDA execution provider.
	UseCUDA bool
	// LibraryPath points at the onnxruntime shared library; empty keeps the
	// runtime default (next to the binary).
	LibraryPath string
}

// Tensor is a dense float32 tensor in NCHW layout.
type Tensor struct {
	Data []float32
	// Dims is [batch, channels, height, width].
	Dims []int64
}
