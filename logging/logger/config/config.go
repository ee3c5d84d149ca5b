package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config configuration struct
type Config struct {
	Level           int              `json:"level" yaml:"level"`
	Format          string           `json:"format" yaml:"format"`
	Output          string           `json:"output" yaml:"output"`
	OutputFile      string           `json:"output_file" yaml:"output_file"`
	Desensitization *Desensitization `json:"desensitization" yaml:"desensitization"`
	Elasticsearch   *Elasticsearch   `json:"elasticsearch" yaml:"elasticsearch"`
}

// GetConfig returns the logger configuration
func GetConfig(v *viper.Viper) *Config {
	return &Config{
		Level:           v.GetInt("logger.level"),
		Format:          strings.ToLower(v.GetString("logger.format")),
		Output:          strings.ToLower(v.GetString("logger.output")),
		OutputFile:      v.GetString("logger.output_file"),
		Desensitization: getDesensitizationConfigs(v),
		Elasticsearch:   getElasticsearchConfigs(v),
	}
}
