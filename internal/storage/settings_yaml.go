package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"kidclock/internal/core/model"
)

const settingsFileName = "settings.yaml"

// yamlSettings mirrors the original activity metadata keys so a
// familiar file shape survives restarts.
type yamlSettings struct {
	ClockMode string `yaml:"clock-mode"`
	WriteTime bool   `yaml:"write-time"`
	WriteDate bool   `yaml:"write-date"`
	SpeakTime bool   `yaml:"speak-time"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (model.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return model.DefaultSettings(), err
	}
	return loadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings model.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return saveSettingsFile(configPath, settings)
}

func loadSettingsFile(configPath string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func saveSettingsFile(configPath string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		ClockMode: settings.Mode.String(),
		WriteTime: settings.WriteTime,
		WriteDate: settings.WriteDate,
		SpeakTime: settings.SpeakTime,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// applyYamlSettings trusts ParseDisplayMode to map an unknown mode name
// back to the default face.
func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	settings.Mode = model.ParseDisplayMode(fileData.ClockMode)
	settings.WriteTime = fileData.WriteTime
	settings.WriteDate = fileData.WriteDate
	settings.SpeakTime = fileData.SpeakTime
}
