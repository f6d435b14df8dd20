package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"inferd/internal/config"
	"inferd/internal/engine"
	"inferd/internal/httpapi"
	"inferd/internal/registry"
)

func main() {
	// Flags overlay the config file; unset flags leave file values intact.
	addr := flag.String("addr", "", "HTTP listen address (default $INFERD_ADDR or :8080)")
	configPath := flag.String("config", "", "Optional config file (.yaml/.json/.toml)")
	modelsDir := flag.String("models-dir", "", "Directory to scan for *.gguf and *.onnx model files (default ~/models)")
	textModel := flag.String("text-model", "", "Text model id (filename); empty picks the sole .gguf")
	visionModel := flag.String("vision-model", "", "Vision model id (filename); empty picks the sole .onnx")
	device := flag.String("device", "", "Device placement: auto|cpu|cuda (default auto)")
	logLevel := flag.String("log-level", "", "Log level: debug|info|warn|error (default info)")
	flag.Parse()

	var cfg config.Config
	if *configPath != "" {
		fileCfg, err := config.Load(*configPath)
		if err != nil {
			l := zerolog.New(os.Stderr)
			l.Fatal().Err(err).Str("path", *configPath).Msg("load config")
		}
		cfg = fileCfg
	}
	overlayFlags(&cfg, *addr, *modelsDir, *textModel, *visionModel, *device, *logLevel)
	applyDefaults(&cfg)

	logger := newLogger(cfg.LogLevel)
	httpapi.SetLogger(logger)
	if cfg.MaxBodyBytes > 0 {
		httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	}
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins)

	// Scan the models dir once; both artifacts must be present.
	reg, err := registry.LoadDir(cfg.ModelsDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.ModelsDir).Msg("scan models dir")
	}

	eng := engine.NewWithConfig(engine.Config{
		Registry:    reg,
		TextModel:   cfg.TextModel,
		VisionModel: cfg.VisionModel,
		Device:      cfg.Device,
		GPULayers:   cfg.GPULayers,
		Threads:     cfg.Threads,
		ContextSize: cfg.ContextSize,
		ORTLibrary:  cfg.ORTLibrary,
	})
	// Models load exactly once; a failure here is fatal, not recoverable.
	if err := eng.Load(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("load models")
	}
	defer eng.Close()
	logger.Info().Str("device", eng.Device()).Msg("models loaded")

	// Base context canceled on shutdown so in-flight inference stops too.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	mux := httpapi.NewMux(eng)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("models_dir", cfg.ModelsDir).Msg("inferd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}

// overlayFlags applies explicitly set flag values on top of the file config.
func overlayFlags(cfg *config.Config, addr, modelsDir, textModel, visionModel, device, logLevel string) {
	if addr != "" {
		cfg.Addr = addr
	}
	if modelsDir != "" {
		cfg.ModelsDir = modelsDir
	}
	if textModel != "" {
		cfg.TextModel = textModel
	}
	if visionModel != "" {
		cfg.VisionModel = visionModel
	}
	if device != "" {
		cfg.Device = device
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
}

// applyDefaults fills remaining zero values.
func applyDefaults(cfg *config.Config) {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
		if v := os.Getenv("INFERD_ADDR"); v != "" {
			cfg.Addr = v
		}
	}
	if cfg.ModelsDir == "" {
		cfg.ModelsDir = "~/models"
	}
	if cfg.Device == "" {
		cfg.Device = "auto"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
