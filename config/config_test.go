package config

import (
	"os"
	"os/exec"
	"testing"
)

// TestLoadConfig_Defaults verifies that defaults are loaded.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("DATA_DIR")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Data.Dir != "./data" {
		t.Fatalf("expected default DATA_DIR=./data, got %q", AppConfig.Data.Dir)
	}
}

// TestLoadConfig_EnvOverride verifies environment variables take precedence
// over defaults.
func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DATA_DIR", "/srv/prices")

	LoadConfig()

	if AppConfig.Server.Port != "9999" {
		t.Fatalf("expected SERVER_PORT=9999, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Data.Dir != "/srv/prices" {
		t.Fatalf("expected DATA_DIR=/srv/prices, got %q", AppConfig.Data.Dir)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig
// triggers a fatal exit when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		// In child process: set empty AppConfig and call validateConfig() to trigger log.Fatalf (os.Exit)
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
