// Package engine owns the two pretrained models and coordinates inference.
// It is structured into small files by concern:
//
//   - engine.go: core Engine type, constructor, model loading, simple getters.
//   - config.go: Config and package defaults; NewWithConfig applies defaults.
//   - backends.go: backend/session interfaces and option structs.
//   - errors.go: error types and helpers (IsInference, IsDependencyUnavailable).
//   - preprocess.go: image decoding, resizing and tensor conversion.
//   - device.go: one-shot device resolution (auto/cpu/cuda).
//   - status.go: Status reporting for /status.
//
// Build tags and runtimes:
//
//   - Text generation (llama.cpp, in-process):
//     Uses the go-llama.cpp adapter. Enabled with `-tags=llama`.
//     Files: backend_llama.go, llama_cgo.go (linker rpath hints).
//     A no-CGO stub exists when the tag is not set: backend_llama_stub.go.
//
//   - Vision encoding (ONNX Runtime):
//     Uses onnxruntime_go. Enabled with `-tags=onnx`.
//     File: backend_onnx.go; stub without the tag: backend_onnx_stub.go.
//
// Both models are loaded exactly once at startup and are read-only afterwards;
// each session serializes access to its native context internally. External
// packages should treat this package as the inference layer and use public
// methods only (NewWithConfig, Load, GenerateText, EmbedImage, Status, Ready).
package engine
