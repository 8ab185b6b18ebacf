package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "cannon.yaml"

// LoadCannon loads the cannon configuration.
// Search order: customPath -> ~/.cannon/configs/cannon.yaml -> ./configs/cannon.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides the
// keys it names. The result is validated before it is returned.
func LoadCannon(customPath string) (CannonConfig, error) {
	cfg, source, err := loadCannon(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid %s: %w", source, err)
	}
	return cfg, nil
}

func loadCannon(customPath string) (CannonConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readCannon(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, err := readCannon(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", ConfigFile)
	if cfg, err := readCannon(local); err == nil {
		return cfg, local, nil
	}

	// Use embedded default YAML
	cfg, err := ParseCannon(defaultCannonYAML)
	if err != nil {
		return DefaultCannonConfig(), "built-in defaults", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded defaults", nil
}

func readCannon(path string) (CannonConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultCannonConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := ParseCannon(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseCannon decodes YAML on top of DefaultCannonConfig.
func ParseCannon(data []byte) (CannonConfig, error) {
	cfg := DefaultCannonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultCannonConfig(), err
	}
	return cfg, nil
}

// MarshalCannon encodes a configuration as YAML.
func MarshalCannon(cfg CannonConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cannon", "configs", filename)
}
