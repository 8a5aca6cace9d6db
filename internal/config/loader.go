package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"statusmsg/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/statusmsg"
	projectConfigDir = ".statusmsg"
	configFileName   = "config.yaml"

	subsystem = "Config"
)

// LoadConfig loads the statusmsg configuration by layering default, user, and project settings.
func LoadConfig() (StatusmsgConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn(subsystem, "Could not determine user config path: %v", err)
	} else {
		config, err = layer(config, userConfigPath)
		if err != nil {
			return StatusmsgConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn(subsystem, "Could not determine project config path: %v", err)
	} else {
		config, err = layer(config, projectConfigPath)
		if err != nil {
			return StatusmsgConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return StatusmsgConfig{}, err
	}
	return config, nil
}

// layer merges the file at path over base. A missing file leaves base unchanged.
func layer(base StatusmsgConfig, path string) (StatusmsgConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return StatusmsgConfig{}, err
	}
	logging.Debug(subsystem, "Loaded config layer %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a StatusmsgConfig from a YAML file.
func loadConfigFromFile(filePath string) (StatusmsgConfig, error) {
	var config StatusmsgConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return StatusmsgConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return StatusmsgConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay StatusmsgConfig) StatusmsgConfig {
	merged := base

	if overlay.Symbols != "" {
		merged.Symbols = overlay.Symbols
	}
	// width: 0 in a later layer restores natural width
	if overlay.Width != nil {
		merged.Width = IntPtr(*overlay.Width)
	}
	// plain can only be switched on by a layer
	merged.Plain = base.Plain || overlay.Plain

	// Colors merge per variant, overlay wins
	if len(overlay.Colors) > 0 {
		colors := make(map[string]string, len(base.Colors)+len(overlay.Colors))
		for k, v := range base.Colors {
			colors[k] = v
		}
		for k, v := range overlay.Colors {
			colors[k] = v
		}
		merged.Colors = colors
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
