//go:build !onnx

package engine

// Stub for the ONNX vision backend, compiled when the 'onnx' build tag is NOT
// set so default builds do not require the onnxruntime shared library. The
// real backend lives in backend_onnx.go (tagged 'onnx').

import (
	"context"
)

// onnxBuilt indicates this binary was compiled with real ONNX Runtime support.
var onnxBuilt = false

type onnxBackend struct{}

func NewONNXBackend() VisionBackend { return &onnxBackend{} }

type onnxSession struct{}

func (b *onnxBackend) Load(path string, opts VisionOptions) (VisionSession, error) {
	return nil, ErrDependencyUnavailable("onnx support not built (missing 'onnx' build tag)")
}

func (s *onnxSession) Embed(ctx context.Context, t Tensor) ([]float32, []int, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}
	return nil, nil, ErrDependencyUnavailable("onnx support not built (missing 'onnx' build tag)")
}

func (s *onnxSession) Close() error {
	return nil
}
