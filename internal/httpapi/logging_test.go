package httpapi

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":      LevelOff,
		"off":   LevelOff,
		"error": LevelError,
		"info":  LevelInfo,
		"debug": LevelDebug,
		"weird": LevelInfo, // default
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogLevel_Overrides(t *testing.T) {
	// query param ?log=debug
	r := httptest.NewRequest(http.MethodGet, "/x?log=debug", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("query override failed: %v", got)
	}
	// shorthand ?log=1
	r = httptest.NewRequest(http.MethodGet, "/x?log=1", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("shorthand query override failed: %v", got)
	}
	// header X-Log-Level
	r = httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("X-Log-Level", "error")
	if got := requestLogLevel(r); got != LevelError {
		t.Fatalf("header override failed: %v", got)
	}
}

func TestLogRequestEnd_StdFallback(t *testing.T) {
	orig := zlog
	zlog = nil
	t.Cleanup(func() { zlog = orig })

	var buf bytes.Buffer
	origOut := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(origOut) })

	r := httptest.NewRequest(http.MethodPost, "/generate_text", nil)
	logRequestEnd(r, "req-1", "generate_text", 200, 0.25, nil)
	if !strings.Contains(buf.String(), "generate_text end status=200") {
		t.Fatalf("log output: %q", buf.String())
	}
}

func TestLogRequestEnd_Zerolog(t *testing.T) {
	var buf bytes.Buffer
	orig := zlog
	SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { zlog = orig })

	r := httptest.NewRequest(http.MethodPost, "/process_image", nil)
	logRequestEnd(r, "req-2", "process_image", 500, 0.1, ErrTest)
	out := buf.String()
	for _, want := range []string{`"endpoint":"process_image"`, `"status":500`, `"request_id":"req-2"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in %q", want, out)
		}
	}
}

// ErrTest is a fixture error for logging assertions.
var ErrTest = errTest{}

type errTest struct{}

func (errTest) Error() string { return "test failure" }
