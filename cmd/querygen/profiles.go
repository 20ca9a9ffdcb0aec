package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is one named detection configuration: which log table to scan and
// which thresholds to apply.
type Profile struct {
	LogType             string  `yaml:"logType"`
	Database            string  `yaml:"database"`
	Table               string  `yaml:"table"`
	WindowMinutes       int     `yaml:"windowMinutes"`
	ErrorThreshold      int     `yaml:"errorThreshold"`
	RequestThreshold    float64 `yaml:"requestThreshold"`
	ThresholdsByCountry string  `yaml:"thresholdsByCountry"`
	GroupBy             string  `yaml:"groupBy"`
	RunScheduleMinutes  int     `yaml:"runScheduleMinutes"`
}

type Config struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.Profiles) == 0 {
		return Config{}, fmt.Errorf("no profiles configured in %s", path)
	}
	return cfg, nil
}

func (c Config) Profile(name string) (Profile, error) {
	profile, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile %q not found", name)
	}
	return profile, nil
}
