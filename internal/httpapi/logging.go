package httpapi

import (
	"log"
	"net/http"
	"os"

	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, falls back to log.Printf.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

func parseLevel(s string) LogLevel {
	switch s {
	case "off", "":
		return LevelOff
	case "error":
		return LevelError
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// global default, read once
var defaultLogLevel = parseLevel(os.Getenv("INFERD_LOG_LEVEL"))

func requestLogLevel(r *http.Request) LogLevel {
	// Per-request overrides
	if v := r.URL.Query().Get("log"); v != "" {
		if v == "1" {
			return LevelDebug
		}
		return parseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseLevel(v)
	}
	return defaultLogLevel
}

// logRequestEnd emits one line per finished inference request, through zerolog
// when installed and the standard logger otherwise.
func logRequestEnd(r *http.Request, requestID string, endpoint string, status int, durSeconds float64, err error) {
	if zlog != nil {
		z := zlog.Info().Str("endpoint", endpoint).Int("status", status).Float64("dur_seconds", durSeconds)
		if requestID != "" {
			z = z.Str("request_id", requestID)
		}
		if err != nil {
			z = z.Err(err)
		}
		z.Msg("request end")
		return
	}
	if err != nil {
		log.Printf("%s end status=%d dur=%.3fs err=%v", endpoint, status, durSeconds, err)
		return
	}
	log.Printf("%s end status=%d dur=%.3fs", endpoint, status, durSeconds)
}
