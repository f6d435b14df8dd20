//go:build llama

package engine

import (
	"context"
	"errors"
	"strings"
	"sync"

	llama "github.com/go-skynet/go-llama.cpp"
)

// llamaBuilt indicates this binary was compiled with real llama support.
var llamaBuilt = true

// llamaBackend loads GGUF models through go-llama.cpp.
type llamaBackend struct{}

func NewLlamaBackend() TextBackend { return &llamaBackend{} }

// llamaSession owns the loaded model. The llama context is not reentrant, so
// Generate serializes callers with a mutex.
type llamaSession struct {
	mu      sync.Mutex
	model   *llama.LLama
	threads int
}

func (b *llamaBackend) Load(path string, opts TextOptions) (TextSession, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("model path is empty")
	}
	mo := []llama.ModelOption{
		llama.SetContext(opts.ContextSize),
	}
	if opts.GPULayers > 0 {
		mo = append(mo, llama.SetGPULayers(opts.GPULayers))
	}
	m, err := llama.New(path, mo...)
	if err != nil {
		return nil, err
	}
	return &llamaSession{model: m, threads: opts.Threads}, nil
}

func (s *llamaSession) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.model == nil {
		return "", errors.New("llama model not initialized")
	}
	// Bridge the token callback to context cancellation; returning false
	// stops generation.
	s.model.SetTokenCallback(func(tok string) bool {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	})
	po := []llama.PredictOption{
		llama.SetTokens(max(1, maxTokens)),
		llama.SetThreads(max(1, s.threads)),
	}
	text, err := s.model.Predict(prompt, po...)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return text, nil
}

func (s *llamaSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.model != nil {
		s.model.Free()
		s.model = nil
	}
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
