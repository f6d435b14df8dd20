//go:build onnx

package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// onnxBuilt indicates this binary was compiled with real ONNX Runtime support.
var onnxBuilt = true

// ViT ONNX export tensor names (transformers.onnx convention).
const (
	onnxInputName  = "pixel_values"
	onnxOutputName = "last_hidden_state"
)

// ortInitOnce guards process-wide ONNX Runtime environment setup.
var ortInitOnce sync.Once

// onnxBackend loads ONNX vision encoders through onnxruntime_go.
type onnxBackend struct{}

func NewONNXBackend() VisionBackend { return &onnxBackend{} }

// onnxSession owns the loaded encoder. ORT sessions with preallocated IO are
// not reentrant, so Embed serializes callers with a mutex.
type onnxSession struct {
	mu      sync.Mutex
	session *ort.DynamicAdvancedSession
	opts    *ort.SessionOptions
}

func (b *onnxBackend) Load(path string, opts VisionOptions) (VisionSession, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("model path is empty")
	}
	var initErr error
	ortInitOnce.Do(func() {
		if opts.LibraryPath != "" {
			ort.SetSharedLibraryPath(opts.LibraryPath)
		}
		initErr = ort.InitializeEnvironment()
	})
	if initErr != nil {
		return nil, fmt.Errorf("init onnxruntime: %w", initErr)
	}
	so, err := ort.NewSessionOptions()
	if err != nil {
		return nil, err
	}
	if opts.UseCUDA {
		cuda, err := ort.NewCUDAProviderOptions()
		if err != nil {
			_ = so.Destroy()
			return nil, fmt.Errorf("cuda provider: %w", err)
		}
		err = so.AppendExecutionProviderCUDA(cuda)
		_ = cuda.Destroy()
		if err != nil {
			_ = so.Destroy()
			return nil, fmt.Errorf("append cuda provider: %w", err)
		}
	}
	sess, err := ort.NewDynamicAdvancedSession(path,
		[]string{onnxInputName}, []string{onnxOutputName}, so)
	if err != nil {
		_ = so.Destroy()
		return nil, err
	}
	return &onnxSession{session: sess, opts: so}, nil
}

func (s *onnxSession) Embed(ctx context.Context, t Tensor) ([]float32, []int, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, nil, errors.New("onnx session not initialized")
	}
	input, err := ort.NewTensor(ort.NewShape(t.Dims...), t.Data)
	if err != nil {
		return nil, nil, err
	}
	defer input.Destroy()
	outputs := []ort.Value{nil}
	if err := s.session.Run([]ort.Value{input}, outputs); err != nil {
		return nil, nil, err
	}
	out, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, nil, errors.New("unexpected output tensor type")
	}
	defer out.Destroy()
	shape := out.GetShape()
	if len(shape) != 3 {
		return nil, nil, fmt.Errorf("unexpected output rank %d", len(shape))
	}
	batch, hidden := int(shape[0]), int(shape[2])
	// First-token (CLS) row per batch element; batch is 1 in practice.
	data := out.GetData()
	seqStride := int(shape[1]) * hidden
	cls := make([]float32, 0, batch*hidden)
	for b := 0; b < batch; b++ {
		cls = append(cls, data[b*seqStride:b*seqStride+hidden]...)
	}
	return cls, []int{batch, hidden}, nil
}

func (s *onnxSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		_ = s.session.Destroy()
		s.session = nil
	}
	if s.opts != nil {
		_ = s.opts.Destroy()
		s.opts = nil
	}
	return nil
}
