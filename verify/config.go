package verify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the overall configuration with a name and checker
// settings.
type Config struct {
	Name   string      `yaml:"name"`
	Strict bool        `yaml:"strict"`
	Prove  ProveConfig `yaml:"prove"`
}

// ProveConfig holds the settings for proof generation.
type ProveConfig struct {
	Model       string `yaml:"model"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Name: "pcheck",
		Prove: ProveConfig{
			Model:       "gemini-2.5-flash",
			MaxAttempts: 3,
		},
	}
}

// LoadConfig reads the YAML configuration file at configurationPath.
// A missing file is not an error; the defaults are returned instead.
// Keys absent from the file keep their default values.
func LoadConfig(configurationPath string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(configurationPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&config)
	if err != nil {
		return config, fmt.Errorf("parsing %s: %w", configurationPath, err)
	}

	return config, nil
}

// WriteConfig marshals config to YAML and writes it to configurationPath,
// replacing any existing file.
func WriteConfig(configurationPath string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	if err != nil {
		return err
	}

	return nil
}
