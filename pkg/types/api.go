package types

// TextRequest is the payload for POST /generate_text.
type TextRequest struct {
	// Required prompt text to continue.
	// example: Once upon a time
	Text string `json:"text" example:"Once upon a time"`
	// Maximum number of tokens to generate. Defaults to 100 when omitted or <= 0.
	// example: 50
	MaxLength int `json:"max_length,omitempty" example:"50"`
}

// DefaultMaxLength is applied when TextRequest.MaxLength is unset.
const DefaultMaxLength = 100

// TextResponse is returned by POST /generate_text.
type TextResponse struct {
	// Generated continuation, prompt included.
	// example: Once upon a time there was a kingdom by the sea.
	GeneratedText string `json:"generated_text" example:"Once upon a time there was a kingdom by the sea."`
	// Server-side inference duration in seconds.
	// example: 0.412
	ProcessingTime float64 `json:"processing_time" example:"0.412"`
}

// ImageRequest is the payload for POST /process_image.
type ImageRequest struct {
	// Base64-encoded image bytes (PNG, JPEG or GIF).
	// example: iVBORw0KGgoAAAANSUhEUgAA...
	Image string `json:"image" example:"iVBORw0KGgoAAAANSUhEUgAA..."`
}

// ImageResponse is returned by POST /process_image.
type ImageResponse struct {
	// Shape of the first-token (CLS) representation, [batch, hidden].
	// example: [1,768]
	EmbeddingShape []int `json:"embedding_shape" example:"1,768"`
	// Server-side inference duration in seconds.
	// example: 0.083
	ProcessingTime float64 `json:"processing_time" example:"0.083"`
}

// ErrorResponse is the error payload for all endpoints.
type ErrorResponse struct {
	// Human-readable description of the failure.
	// example: inference failed: image: unknown format
	Detail string `json:"detail" example:"inference failed: image: unknown format"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// Always "healthy" while the process is up.
	// example: healthy
	Status string `json:"status" example:"healthy"`
}

// ModelsResponse wraps the list of models returned by GET /models.
type ModelsResponse struct {
	// Discovered model artifacts.
	Models []Model `json:"models"`
}

// ModelStatus summarizes one loaded model for /status.
type ModelStatus struct {
	// ID of the loaded artifact.
	// example: vit-base-patch16-224.onnx
	ModelID string `json:"model_id" example:"vit-base-patch16-224.onnx"`
	// Artifact kind: "text" or "vision".
	// example: vision
	Kind string `json:"kind" example:"vision"`
	// Lifecycle state (loading, ready, error).
	// example: ready
	State string `json:"state" example:"ready"`
	// Requests served by this model since startup.
	// example: 42
	RequestsTotal uint64 `json:"requests_total" example:"42"`
	// Last time this model served a request (unix seconds, 0 if never).
	// example: 1700000000
	LastUsed int64 `json:"last_used_unix,omitempty" example:"1700000000"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Overall engine state (loading, ready, error).
	// example: ready
	State string `json:"state" example:"ready"`
	// Loaded models.
	Models []ModelStatus `json:"models"`
	// Device the models were placed on (cpu or cuda).
	// example: cpu
	Device string `json:"device" example:"cpu"`
	// Last error observed during load (if any).
	LastError string `json:"last_error,omitempty"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// CallResult is one timed harness call against an endpoint.
type CallResult struct {
	// 1-based index of the call within the run.
	// example: 1
	RequestNumber int `json:"request_number" example:"1"`
	// Client-observed round-trip time in seconds.
	// example: 0.532
	TotalTime float64 `json:"total_time" example:"0.532"`
	// Server-reported processing_time from the response body, in seconds.
	// example: 0.412
	ServerProcessingTime float64 `json:"server_processing_time" example:"0.412"`
}

// Statistics aggregates a finished harness run.
type Statistics struct {
	// Mean of client-observed round-trip times.
	AverageTotalTime float64 `json:"average_total_time"`
	// Mean of server-reported processing times.
	AverageProcessingTime float64 `json:"average_processing_time"`
	// Smallest client-observed round-trip time.
	MinTime float64 `json:"min_time"`
	// Largest client-observed round-trip time.
	MaxTime float64 `json:"max_time"`
	// Population standard deviation of client-observed round-trip times.
	StdDev float64 `json:"std_dev"`
}

// RunReport is the persisted result of one harness run against one endpoint.
type RunReport struct {
	IndividualResults []CallResult `json:"individual_results"`
	Statistics        Statistics   `json:"statistics"`
}
