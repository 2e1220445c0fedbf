package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultServerURL = "http://localhost:8000/api"
	DefaultModel     = "gpt-4o-mini"
	DefaultMode      = "combined"
)

// AssistantProfile configures the direct OpenAI-compatible assistant.
// An empty APIKey means chat goes through the backend's /chat route.
type AssistantProfile struct {
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
	Model   string `json:"model,omitempty"`
}

type Profile struct {
	ServerURL       string           `json:"server_url"`
	AggregationMode string           `json:"aggregation_mode,omitempty"`
	Assistant       AssistantProfile `json:"assistant,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	currentProfile *Profile
	path           string
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.path = configPath

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// Dir returns the directory holding config.json and the log file.
func Dir() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

// GetServerURL resolves the backend base URL: ANALISAI_SERVER_URL, then the
// active profile, then the default.
func (c *Config) GetServerURL() string {
	if env := strings.TrimSpace(os.Getenv("ANALISAI_SERVER_URL")); env != "" {
		return env
	}
	if c.currentProfile == nil || c.currentProfile.ServerURL == "" {
		return DefaultServerURL
	}
	return c.currentProfile.ServerURL
}

func (c *Config) GetAggregationMode() string {
	if c.currentProfile == nil || c.currentProfile.AggregationMode == "" {
		return DefaultMode
	}
	return c.currentProfile.AggregationMode
}

// HasAssistant reports whether the active profile enables the direct assistant.
func (c *Config) HasAssistant() bool {
	return c.currentProfile != nil && c.currentProfile.Assistant.APIKey != ""
}

func (c *Config) GetAPIKey() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.Assistant.APIKey
}

func (c *Config) GetModel() string {
	if c.currentProfile == nil || c.currentProfile.Assistant.Model == "" {
		return DefaultModel
	}
	return c.currentProfile.Assistant.Model
}

func (c *Config) GetBaseURL() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.Assistant.BaseURL
}

// Use makes name the active profile.
func (c *Config) Use(name string) error {
	profile, exists := c.Profiles[name]
	if !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	c.currentProfile = &profile
	return nil
}

// Current returns the active profile.
func (c *Config) Current() Profile {
	if c.currentProfile == nil {
		return Profile{}
	}
	return *c.currentProfile
}

func getConfigPath() (string, error) {
	var configDir string

	// Use ANALISAI_HOME if set, otherwise use user's home directory
	if home := os.Getenv("ANALISAI_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".analisai", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": {
				ServerURL:       DefaultServerURL,
				AggregationMode: DefaultMode,
			},
		},
		ActiveProfile: "default",
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		var err error
		if configPath, err = getConfigPath(); err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to the alphabetically first profile.
		first := ""
		for name := range c.Profiles {
			if first == "" || name < first {
				first = name
			}
		}
		c.ActiveProfile = first
		profile = c.Profiles[first]
	}

	c.currentProfile = &profile
	return nil
}
