package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gardar/ocroffsets/pkg/offsets"
)

type yamlConfig struct {
	Delimiter string `yaml:"delimiter"`
	StartPage string `yaml:"start_page"`
	EndPage   string `yaml:"end_page"`
	Encoding  string `yaml:"encoding"`
}

// loadConfig reads a YAML file on top of the default conversion config.
// Keys missing from the file keep their defaults.
func loadConfig(path string) (offsets.Config, error) {
	cfg := offsets.DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return cfg, err
	}
	if yc.Delimiter != "" {
		cfg.Delimiter = yc.Delimiter
	}
	cfg.StartPage = yc.StartPage
	cfg.EndPage = yc.EndPage
	cfg.Encoding = yc.Encoding
	return cfg, nil
}
