package bench

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"net/http"
	"strings"
	"time"

	"inferd/pkg/types"
)

// Endpoint tags; also prefix the persisted result files.
const (
	TagText  = "text"
	TagImage = "image"
)

// imageSize matches the vision encoder's native input resolution.
const imageSize = 224

// Runner issues sequential requests against one inferd instance and collects
// per-call timings. Calls are deliberately not concurrent so the run measures
// single-request baseline latency.
type Runner struct {
	BaseURL string
	// Requests per endpoint.
	Requests int
	Client   *http.Client
}

// NewRunner builds a Runner with a dedicated HTTP client.
func NewRunner(baseURL string, requests int, timeout time.Duration) *Runner {
	return &Runner{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Requests: requests,
		Client:   &http.Client{Timeout: timeout},
	}
}

// CheckHealth verifies the service is up before a run starts.
func (r *Runner) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: status %d", resp.StatusCode)
	}
	var h types.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	if h.Status != "healthy" {
		return fmt.Errorf("health check: status %q", h.Status)
	}
	return nil
}

// RunText drives Requests sequential calls against /generate_text.
func (r *Runner) RunText(ctx context.Context, prompt string, maxLength int) (types.RunReport, error) {
	body, err := json.Marshal(types.TextRequest{Text: prompt, MaxLength: maxLength})
	if err != nil {
		return types.RunReport{}, err
	}
	return r.run(ctx, "/generate_text", body)
}

// RunImage drives Requests sequential calls against /process_image with a
// solid-color PNG generated once per run.
func (r *Runner) RunImage(ctx context.Context) (types.RunReport, error) {
	img, err := TestImageBase64(imageSize, color.RGBA{R: 255, A: 255})
	if err != nil {
		return types.RunReport{}, err
	}
	body, err := json.Marshal(types.ImageRequest{Image: img})
	if err != nil {
		return types.RunReport{}, err
	}
	return r.run(ctx, "/process_image", body)
}

// timedBody is the subset of the response needed for timing aggregation.
type timedBody struct {
	ProcessingTime float64 `json:"processing_time"`
}

func (r *Runner) run(ctx context.Context, path string, body []byte) (types.RunReport, error) {
	results := make([]types.CallResult, 0, r.Requests)
	for i := 1; i <= r.Requests; i++ {
		res, err := r.call(ctx, path, body, i)
		if err != nil {
			return types.RunReport{}, fmt.Errorf("request %d/%d: %w", i, r.Requests, err)
		}
		results = append(results, res)
		debug("request %d/%d completed in %.3f seconds", i, r.Requests, res.TotalTime)
	}
	return types.RunReport{
		IndividualResults: results,
		Statistics:        Summarize(results),
	}, nil
}

// call issues one timed POST. The total time covers the full round trip
// including response body read, mirroring what a client actually waits for.
func (r *Runner) call(ctx context.Context, path string, body []byte, number int) (types.CallResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return types.CallResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := r.Client.Do(req)
	if err != nil {
		return types.CallResult{}, err
	}
	raw, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	total := time.Since(start).Seconds()
	if err != nil {
		return types.CallResult{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return types.CallResult{}, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	var tb timedBody
	if err := json.Unmarshal(raw, &tb); err != nil {
		return types.CallResult{}, fmt.Errorf("decode response: %w", err)
	}
	return types.CallResult{
		RequestNumber:        number,
		TotalTime:            total,
		ServerProcessingTime: tb.ProcessingTime,
	}, nil
}
