package util

import "testing"

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("TASKS_TEST_KEY", "from-env")
	if got := EnvOrDefault("TASKS_TEST_KEY", "fallback"); got != "from-env" {
		t.Errorf("EnvOrDefault = %q, want %q", got, "from-env")
	}
	if got := EnvOrDefault("TASKS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("EnvOrDefault = %q, want %q", got, "fallback")
	}
}
