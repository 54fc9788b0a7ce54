package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", c.ListenAddr)
	}
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", c.LogLevel)
	}
	if c.LexiconPath != "" {
		t.Errorf("LexiconPath = %q, want empty", c.LexiconPath)
	}
	if !c.CORSEnabled {
		t.Error("CORSEnabled = false, want true by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WORDTALLY_LISTEN_ADDR", ":9090")
	t.Setenv("WORDTALLY_LOG_LEVEL", "debug")
	t.Setenv("WORDTALLY_CORS_ENABLED", "false")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want :9090", c.ListenAddr)
	}
	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", c.LogLevel)
	}
	if c.CORSEnabled {
		t.Error("CORSEnabled = true, want false")
	}
}
