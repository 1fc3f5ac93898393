package config

import "testing"

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("ENV_TEST", "")
	if got := envOrDefault("ENV_TEST", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback when unset, got %s", got)
	}
	t.Setenv("ENV_TEST", "value")
	if got := envOrDefault("ENV_TEST", "fallback"); got != "value" {
		t.Fatalf("expected env value, got %s", got)
	}
}
