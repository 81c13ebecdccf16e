package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.APIBaseURL != defaultBaseURL {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %s, want 30s", cfg.RequestTimeout)
	}
	if cfg.OTPResendWindow != 60*time.Second {
		t.Errorf("OTPResendWindow = %s, want 60s", cfg.OTPResendWindow)
	}
	if cfg.OTPCodeLength != 6 {
		t.Errorf("OTPCodeLength = %d, want 6", cfg.OTPCodeLength)
	}
	if cfg.DeviceName != "mobile_app" {
		t.Errorf("DeviceName = %q, want mobile_app", cfg.DeviceName)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
app:
  device_name: test_device
api:
  base_url: http://localhost:8080/api/v1
  timeout: 5s
otp:
  resend_window: 30s
payment:
  verification_fee: 750
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.APIBaseURL != "http://localhost:8080/api/v1" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %s, want 5s", cfg.RequestTimeout)
	}
	if cfg.OTPResendWindow != 30*time.Second {
		t.Errorf("OTPResendWindow = %s, want 30s", cfg.OTPResendWindow)
	}
	if cfg.VerificationFee != 750 {
		t.Errorf("VerificationFee = %v, want 750", cfg.VerificationFee)
	}
	if cfg.DeviceName != "test_device" {
		t.Errorf("DeviceName = %q", cfg.DeviceName)
	}
	// Untouched fields keep defaults.
	if cfg.ImageBaseURL != defaultImageBaseURL {
		t.Errorf("ImageBaseURL = %q, want default", cfg.ImageBaseURL)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("api:\n  base_url: http://file/api/v1\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("BDTUITION_API_BASE_URL", "http://env/api/v1")
	t.Setenv("BDTUITION_API_TIMEOUT", "7s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.APIBaseURL != "http://env/api/v1" {
		t.Errorf("APIBaseURL = %q, env must win", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 7*time.Second {
		t.Errorf("RequestTimeout = %s, want 7s", cfg.RequestTimeout)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("missing file must not fail Load: %v", err)
	}
	if cfg.APIBaseURL != defaultBaseURL {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("api:\n  timeout: notaduration\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("invalid duration must fail Load")
	}
}
