//go:build !llama

package engine

// This file provides a no-CGO stub for the llama backend. It is compiled when
// the 'llama' build tag is NOT set, keeping default builds and CI CGO-free.
// The real backend lives in backend_llama.go (tagged 'llama').

import (
	"context"
)

// llamaBuilt indicates this binary was compiled with real llama support.
var llamaBuilt = false

// llamaBackend is a stub that satisfies TextBackend but refuses to load a
// model without the 'llama' build tag. This avoids any mocked behavior in
// production binaries built without CGO support.
type llamaBackend struct{}

func NewLlamaBackend() TextBackend { return &llamaBackend{} }

type llamaSession struct{}

func (b *llamaBackend) Load(path string, opts TextOptions) (TextSession, error) {
	// Fail fast: llama runtime not available in this build.
	return nil, ErrDependencyUnavailable("llama support not built (missing 'llama' build tag)")
}

func (s *llamaSession) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	// Should never be called because Load returns an error, but return a clear error anyway.
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	return "", ErrDependencyUnavailable("llama support not built (missing 'llama' build tag)")
}

func (s *llamaSession) Close() error {
	// Nothing to free in the stub.
	return nil
}
