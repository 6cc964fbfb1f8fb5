package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for the named variant.
// Search order: customPath -> ~/.snake/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default.
func Load(variant, customPath string) (Game, error) {
	var cfg Game

	// Custom path is authoritative: any error is reported.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	filename := variant + ".yaml"

	// User config directory.
	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Validate()
				return cfg, nil
			}
		}
	}

	// Local configs directory.
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Validate()
			return cfg, nil
		}
	}

	// Embedded default.
	cfg, err := embeddedDefault(variant)
	if err != nil {
		return cfg, err
	}
	cfg.Validate()
	return cfg, nil
}

// embeddedDefault parses the built-in YAML for the variant, falling back
// to the hardcoded defaults if the embed fails to parse.
func embeddedDefault(variant string) (Game, error) {
	var data []byte
	var fallback Game

	switch variant {
	case "classic":
		data = defaultClassicYAML
		fallback = DefaultClassic()
	case "arcade":
		data = defaultArcadeYAML
		fallback = DefaultArcade()
	default:
		return Game{}, fmt.Errorf("config: unknown variant %q", variant)
	}

	var cfg Game
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fallback, nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
