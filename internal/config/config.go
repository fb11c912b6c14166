// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; secrets go to OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"mailboard/cli/internal/xdg"
)

// DefaultBaseURL is the production Mailboard API origin.
const DefaultBaseURL = "https://api.mailboard.app"

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel  string    `json:"log_level"`
	BaseURL   string    `json:"base_url"`
	Endpoints Endpoints `json:"endpoints"`
	Routes    Routes    `json:"routes"`
}

// Endpoints contains the REST API endpoint paths consumed by the gateway.
type Endpoints struct {
	Login     string `json:"login"`      // e.g., "/user/login"
	User      string `json:"user"`       // e.g., "/user" (id appended as a path segment)
	SendEmail string `json:"send_email"` // e.g., "/email/send-custom"
}

// Routes describes the navigation surface evaluated by the route guard.
// Protected entries may end in "/*" to match any descendant path.
type Routes struct {
	Protected []string `json:"protected"`
	LoginPath string   `json:"login_path"`
	HomePath  string   `json:"home_path"`
}

// Defaults returns the built-in configuration used when no config file exists.
func Defaults() Config {
	return Config{
		LogLevel: "info",
		BaseURL:  DefaultBaseURL,
		Endpoints: Endpoints{
			Login:     "/user/login",
			User:      "/user",
			SendEmail: "/email/send-custom",
		},
		Routes: Routes{
			Protected: []string{"/dashboard", "/dashboard/*"},
			LoginPath: "/login",
			HomePath:  "/dashboard",
		},
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults. Fields left empty
// in the file fall back to their defaults so a partial config stays usable.
func Load() (Config, error) {
	c := Defaults()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	applyDefaults(&c)
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// applyDefaults fills zero-valued fields from Defaults.
func applyDefaults(c *Config) {
	d := Defaults()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = d.BaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Endpoints.Login == "" {
		c.Endpoints.Login = d.Endpoints.Login
	}
	if c.Endpoints.User == "" {
		c.Endpoints.User = d.Endpoints.User
	}
	if c.Endpoints.SendEmail == "" {
		c.Endpoints.SendEmail = d.Endpoints.SendEmail
	}
	if len(c.Routes.Protected) == 0 {
		c.Routes.Protected = d.Routes.Protected
	}
	if c.Routes.LoginPath == "" {
		c.Routes.LoginPath = d.Routes.LoginPath
	}
	if c.Routes.HomePath == "" {
		c.Routes.HomePath = d.Routes.HomePath
	}
}
