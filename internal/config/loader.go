package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config dirs.
const configFile = "submarine.yaml"

// LoadSubmarine loads the submarine configuration.
// Search order: customPath -> ~/.submarine/configs/submarine.yaml -> ./configs/submarine.yaml -> embedded default.
// Every file is decoded on top of the defaults, so partial files only override
// the keys they set. A custom path that cannot be read or parsed is an error;
// the other locations fall through silently.
func LoadSubmarine(customPath string) (SubmarineConfig, error) {
	cfg := DefaultSubmarineConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if fromFile, ok := tryLoad(path); ok {
			return fromFile, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSubmarineYAML, &cfg); err != nil {
		return DefaultSubmarineConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad decodes path over the defaults and reports whether it produced a
// valid configuration.
func tryLoad(path string) (SubmarineConfig, bool) {
	cfg := DefaultSubmarineConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".submarine", "configs", filename)
}

// ApplySubmarinePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySubmarinePreset(cfg *SubmarineConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the channel so presets feel different from the first obstacle
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.GapSize *= 1.2
	case DifficultyHard:
		cfg.Obstacles.GapSize *= 0.85
	}
}

// Marshal renders the configuration as YAML.
func Marshal(cfg SubmarineConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
