package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return &cfg
}

func TestDefaults(t *testing.T) {
	cfg := defaultConfig(t)

	if got := cfg.Server.Addr(); got != "localhost:8080" {
		t.Errorf("addr = %q", got)
	}
	if cfg.Auth.UserHeader != "X-User-ID" {
		t.Errorf("user header = %q", cfg.Auth.UserHeader)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.LLM.Provider != "gemini" {
		t.Errorf("llm provider = %q", cfg.LLM.Provider)
	}
}

func TestToLLMConvertsUnits(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.LLM.Retry.InitialWaitMs = 250
	cfg.LLM.TimeoutS = 45

	lc := cfg.ToLLM()
	if lc.Retry.InitialWait != 250*time.Millisecond {
		t.Errorf("initial wait = %v", lc.Retry.InitialWait)
	}
	if lc.Timeout != 45*time.Second {
		t.Errorf("timeout = %v", lc.Timeout)
	}
	if lc.Retry.MaxAttempts != 3 || lc.Retry.Multiplier != 2.0 {
		t.Errorf("retry defaults = %+v", lc.Retry)
	}
}

func TestDBPathFallsBackToDefault(t *testing.T) {
	cfg := defaultConfig(t)
	if p, err := cfg.DBPath(); err != nil || p == "" {
		t.Errorf("empty path must resolve to a default, got %q (%v)", p, err)
	}
	cfg.Database.Path = t.TempDir() + "/x.db"
	if p, err := cfg.DBPath(); err != nil || p != cfg.Database.Path {
		t.Errorf("explicit path ignored: %q (%v)", p, err)
	}
}
