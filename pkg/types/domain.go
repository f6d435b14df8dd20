package types

// Model kinds recognized by the registry.
const (
	KindText   = "text"
	KindVision = "vision"
)

// Model represents a pretrained model artifact discovered on disk.
type Model struct {
	// Stable identifier for the model (the artifact filename).
	// example: gpt2-medium-q4_k_m.gguf
	ID string `json:"id" example:"gpt2-medium-q4_k_m.gguf"`
	// Human-friendly name.
	// example: gpt2-medium-q4_k_m.gguf
	Name string `json:"name" example:"gpt2-medium-q4_k_m.gguf"`
	// Absolute path to the artifact on disk.
	// example: /home/user/models/gpt2-medium-q4_k_m.gguf
	Path string `json:"path" example:"/home/user/models/gpt2-medium-q4_k_m.gguf"`
	// Artifact kind: "text" (gguf) or "vision" (onnx).
	// example: text
	Kind string `json:"kind" example:"text"`
}
