package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file name searched for in the user and local config directories.
const ConfigFileName = "climber.yaml"

// Load loads the climber configuration.
// Search order: customPath -> ~/.climber/configs/climber.yaml -> ./configs/climber.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
// A customPath ending in .toml is decoded as TOML.
func Load(customPath string) (ClimberConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ClimberConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Decode(data, formatFor(customPath))
		if err != nil {
			return ClimberConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return ClimberConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(ConfigFileName), filepath.Join("configs", ConfigFileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Decode(data, FormatYAML); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Decode(defaultClimberYAML, FormatYAML)
	if err != nil {
		return DefaultClimberConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Format names a config encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses data over the default configuration.
func Decode(data []byte, format Format) (ClimberConfig, error) {
	cfg := DefaultClimberConfig()
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return ClimberConfig{}, err
		}
	case FormatYAML, "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return ClimberConfig{}, err
		}
	default:
		return ClimberConfig{}, fmt.Errorf("unknown config format %q", format)
	}
	return cfg, nil
}

// Encode renders the configuration in the given format.
func Encode(cfg ClimberConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML, "":
		return yaml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	path, err := DataDir("configs", filename)
	if err != nil {
		return ""
	}
	return path
}

// ParsePreset validates a preset name. The empty string means "use the config".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(name)); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty preset %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ClimberConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
