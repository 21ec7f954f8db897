package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "ALLOW_ORIGINS", "LOG_LEVEL", "MAX_UPLOAD_MB", "REGISTRY_FILE", "WEIGHTS_FILE", "FUZZY_THRESHOLD"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Host != "127.0.0.1" {
		t.Errorf("expected Host=127.0.0.1, got %s", cfg.Host)
	}
	if cfg.Port != 8082 {
		t.Errorf("expected Port=8082, got %d", cfg.Port)
	}
	if cfg.MaxUploadMB != 64 {
		t.Errorf("expected MaxUploadMB=64, got %d", cfg.MaxUploadMB)
	}
	if cfg.FuzzyThreshold != 0.72 {
		t.Errorf("expected FuzzyThreshold=0.72, got %v", cfg.FuzzyThreshold)
	}
	if cfg.RegistryFile != "" || cfg.WeightsFile != "" {
		t.Errorf("expected empty registry/weights paths, got %q %q", cfg.RegistryFile, cfg.WeightsFile)
	}
	if cfg.Addr() != "127.0.0.1:8082" {
		t.Errorf("unexpected Addr %s", cfg.Addr())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOW_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("FUZZY_THRESHOLD", "0.85")
	t.Setenv("REGISTRY_FILE", "/etc/crossover/registry.yaml")

	cfg := Load()
	if cfg.Addr() != "0.0.0.0:9090" {
		t.Errorf("unexpected Addr %s", cfg.Addr())
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "https://b.example" {
		t.Errorf("unexpected AllowOrigins %v", cfg.AllowOrigins)
	}
	if cfg.FuzzyThreshold != 0.85 {
		t.Errorf("expected FuzzyThreshold=0.85, got %v", cfg.FuzzyThreshold)
	}
	if cfg.RegistryFile != "/etc/crossover/registry.yaml" {
		t.Errorf("unexpected RegistryFile %s", cfg.RegistryFile)
	}
}
