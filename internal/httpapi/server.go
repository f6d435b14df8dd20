package httpapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inferd/pkg/types"
)

// Service defines the engine methods required by the HTTP API layer.
type Service interface {
	GenerateText(ctx context.Context, text string, maxLength int) (string, error)
	EmbedImage(ctx context.Context, imageBytes []byte) ([]float32, []int, error)
	ListModels() []types.Model
	Status() types.StatusResponse
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Log-Level"},
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	r.Use(MetricsMiddleware)

	r.Post("/generate_text", handleGenerateText(svc))
	r.Post("/process_image", handleProcessImage(svc))

	// Liveness: fixed payload as long as the process is up; does not probe
	// model health.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.HealthResponse{Status: "healthy"})
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(types.ModelsResponse{Models: svc.ListModels()}); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(svc.Status()); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// handleGenerateText serves POST /generate_text.
//
// @Summary      Generate text
// @Description  Continue a prompt with the pretrained text model.
// @Accept       json
// @Produce      json
// @Param        request body types.TextRequest true "Prompt and optional max_length"
// @Success      200 {object} types.TextResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /generate_text [post]
func handleGenerateText(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TextRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			writeJSONError(w, http.StatusBadRequest, "text is required")
			return
		}
		// Join server base context with request context so shutdown cancels work too.
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()

		start := time.Now()
		out, err := svc.GenerateText(ctx, req.Text, req.MaxLength)
		elapsed := time.Since(start).Seconds()
		finishInference(w, r, "generate_text", elapsed, err, func() any {
			return types.TextResponse{GeneratedText: out, ProcessingTime: elapsed}
		})
	}
}

// handleProcessImage serves POST /process_image.
//
// @Summary      Embed image
// @Description  Run the vision encoder and return the CLS representation shape.
// @Accept       json
// @Produce      json
// @Param        request body types.ImageRequest true "Base64-encoded image"
// @Success      200 {object} types.ImageResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /process_image [post]
func handleProcessImage(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ImageRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		if req.Image == "" {
			writeJSONError(w, http.StatusBadRequest, "image is required")
			return
		}
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()

		// The base64 decode is part of the measured processing window, like
		// any other per-request model work.
		start := time.Now()
		var shape []int
		raw, err := base64.StdEncoding.DecodeString(req.Image)
		if err == nil {
			_, shape, err = svc.EmbedImage(ctx, raw)
		}
		elapsed := time.Since(start).Seconds()
		finishInference(w, r, "process_image", elapsed, err, func() any {
			return types.ImageResponse{EmbeddingShape: shape, ProcessingTime: elapsed}
		})
	}
}

// decodeJSONBody enforces the shared transport rules for JSON endpoints:
// Content-Type, body size limit, parseability. Returns false after writing an
// error response.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	// Limit body size (configurable). MaxBytesReader surfaces as a decode
	// error; return 400 without size leak details.
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// finishInference writes the success or error response for an inference
// endpoint and emits the shared log line and metrics.
func finishInference(w http.ResponseWriter, r *http.Request, endpoint string, elapsed float64, err error, payload func() any) {
	rid := middleware.GetReqID(r.Context())
	if err != nil {
		// If context was canceled (client disconnect or shutdown), just return.
		if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
			return
		}
		status := errorStatus(err)
		writeJSONError(w, status, err.Error())
		observeInference(endpoint, status, elapsed)
		if requestLogLevel(r) >= LevelInfo {
			logRequestEnd(r, rid, endpoint, status, elapsed, err)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload()); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	observeInference(endpoint, http.StatusOK, elapsed)
	if requestLogLevel(r) >= LevelInfo {
		logRequestEnd(r, rid, endpoint, http.StatusOK, elapsed, nil)
	}
}
