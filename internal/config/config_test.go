package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	d := Defaults()
	if c.BaseURL != d.BaseURL {
		t.Errorf("BaseURL = %q, want %q", c.BaseURL, d.BaseURL)
	}
	if c.Endpoints.Login != "/user/login" {
		t.Errorf("Endpoints.Login = %q, want /user/login", c.Endpoints.Login)
	}
	if len(c.Routes.Protected) != 2 || c.Routes.Protected[0] != "/dashboard" {
		t.Errorf("Routes.Protected = %v, want defaults", c.Routes.Protected)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "mailboard")
	if err := os.MkdirAll(cfgDir, 0o700); err != nil {
		t.Fatal(err)
	}
	content := `{"base_url": "https://staging.mailboard.app/"}`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.BaseURL != "https://staging.mailboard.app" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", c.BaseURL)
	}
	if c.Endpoints.SendEmail != "/email/send-custom" {
		t.Errorf("Endpoints.SendEmail = %q, want default", c.Endpoints.SendEmail)
	}
	if c.Routes.LoginPath != "/login" {
		t.Errorf("Routes.LoginPath = %q, want default", c.Routes.LoginPath)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := Defaults()
	c.BaseURL = "http://localhost:8080"
	c.Routes.Protected = []string{"/admin/*"}
	if err := Save(c); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", got.BaseURL)
	}
	if len(got.Routes.Protected) != 1 || got.Routes.Protected[0] != "/admin/*" {
		t.Errorf("Routes.Protected = %v", got.Routes.Protected)
	}
}
