package engine

import (
	"time"

	"inferd/pkg/types"
)

// Status builds a detailed status response for /status.
func (e *Engine) Status() types.StatusResponse {
	e.mu.RLock()
	defer e.mu.RUnlock()
	resp := types.StatusResponse{
		State:          string(e.state),
		Device:         e.device,
		LastError:      e.lastErr,
		UptimeSeconds:  int64(time.Since(e.startTime).Seconds()),
		ServerTimeUnix: time.Now().Unix(),
	}
	for _, m := range []loadedModel{e.text, e.vision} {
		if m.info.ID == "" {
			continue
		}
		ms := types.ModelStatus{
			ModelID:       m.info.ID,
			Kind:          m.info.Kind,
			State:         string(e.state),
			RequestsTotal: m.requests,
		}
		if !m.lastUsed.IsZero() {
			ms.LastUsed = m.lastUsed.Unix()
		}
		resp.Models = append(resp.Models, ms)
	}
	return resp
}
