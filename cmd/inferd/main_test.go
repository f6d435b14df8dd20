package main

import (
	"testing"

	"inferd/internal/config"
)

func TestOverlayFlagsWinsOverFile(t *testing.T) {
	cfg := config.Config{Addr: ":9000", ModelsDir: "/file/models", Device: "cpu"}
	overlayFlags(&cfg, ":7000", "", "", "vit.onnx", "", "debug")
	if cfg.Addr != ":7000" {
		t.Fatalf("addr=%s", cfg.Addr)
	}
	if cfg.ModelsDir != "/file/models" {
		t.Fatalf("models dir overridden by unset flag: %s", cfg.ModelsDir)
	}
	if cfg.VisionModel != "vit.onnx" || cfg.Device != "cpu" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg config.Config
	t.Setenv("INFERD_ADDR", "")
	applyDefaults(&cfg)
	if cfg.Addr != ":8080" || cfg.ModelsDir != "~/models" || cfg.Device != "auto" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestApplyDefaultsEnvAddr(t *testing.T) {
	var cfg config.Config
	t.Setenv("INFERD_ADDR", ":9999")
	applyDefaults(&cfg)
	if cfg.Addr != ":9999" {
		t.Fatalf("addr=%s", cfg.Addr)
	}
}
