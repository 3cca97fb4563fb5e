package config

import (
	"os"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := GetDefaultOptions()

	if opts.Port != defaultPort {
		t.Errorf("Expected default port %d, got %d", defaultPort, opts.Port)
	}
	if opts.Host != defaultHost {
		t.Errorf("Expected default host %q, got %q", defaultHost, opts.Host)
	}
	if opts.LogLevel != defaultLogLevel {
		t.Errorf("Expected default log level %q, got %q", defaultLogLevel, opts.LogLevel)
	}
	if opts.MetricsCollector {
		t.Error("Expected metrics collector disabled by default")
	}
	if Opts != opts {
		t.Error("Expected the global options to be set")
	}
}

func TestHardcoverTokenFromEnvironment(t *testing.T) {
	GetDefaultOptions()

	os.Setenv("HARDCOVER_TOKEN", "  env-token  ")
	defer os.Unsetenv("HARDCOVER_TOKEN")

	loadEnvOverrides()
	if Opts.HardcoverToken != "env-token" {
		t.Fatalf("Expected trimmed token from environment, got %q", Opts.HardcoverToken)
	}
}
