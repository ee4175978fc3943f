package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Server.GRPCAddr != ":8080" {
		t.Errorf("GRPCAddr = %s", cfg.Server.GRPCAddr)
	}
	if cfg.OCR.MaxRetries != 3 {
		t.Errorf("OCR.MaxRetries = %d, want 3", cfg.OCR.MaxRetries)
	}
	if cfg.OCR.RetryDelay != 5*time.Second {
		t.Errorf("OCR.RetryDelay = %v, want 5s", cfg.OCR.RetryDelay)
	}
	if cfg.Scheduler.Workers != 3 {
		t.Errorf("Scheduler.Workers = %d, want 3", cfg.Scheduler.Workers)
	}
	if cfg.Scheduler.StaleThreshold != 30*time.Minute {
		t.Errorf("Scheduler.StaleThreshold = %v, want 30m", cfg.Scheduler.StaleThreshold)
	}
	if cfg.Scheduler.StaleThreshold <= cfg.Scheduler.StageTimeout {
		t.Errorf("default stale threshold %v must exceed stage timeout %v",
			cfg.Scheduler.StaleThreshold, cfg.Scheduler.StageTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("GRPC_ADDR", ":9000")
	t.Setenv("PIPELINE_WORKERS", "8")
	t.Setenv("STALE_THRESHOLD", "45m")
	t.Setenv("LLM_MODELS", "m1, m2 ,m3")
	t.Setenv("LLM_TEMPERATURE", "0.5")

	cfg := LoadConfig()
	if cfg.Server.GRPCAddr != ":9000" {
		t.Errorf("GRPCAddr = %s", cfg.Server.GRPCAddr)
	}
	if cfg.Scheduler.Workers != 8 {
		t.Errorf("Workers = %d", cfg.Scheduler.Workers)
	}
	if cfg.Scheduler.StaleThreshold != 45*time.Minute {
		t.Errorf("StaleThreshold = %v", cfg.Scheduler.StaleThreshold)
	}
	if len(cfg.LLM.Models) != 3 || cfg.LLM.Models[1] != "m2" {
		t.Errorf("Models = %v", cfg.LLM.Models)
	}
	if cfg.LLM.Temperature != 0.5 {
		t.Errorf("Temperature = %v", cfg.LLM.Temperature)
	}
}

func TestValidateCatchesBadConfig(t *testing.T) {
	cfg := LoadConfig()
	cfg.Scheduler.Workers = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero workers should fail validation")
	}

	cfg = LoadConfig()
	cfg.OCR.Endpoint = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing OCR endpoint should fail validation")
	}

	cfg = LoadConfig()
	cfg.Scheduler.StaleThreshold = cfg.Scheduler.StageTimeout / 2
	if err := cfg.Validate(); err == nil {
		t.Error("stale threshold below stage timeout should fail validation")
	}
}
