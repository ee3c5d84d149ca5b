package config

import "github.com/spf13/viper"

// Desensitization holds desensitization settings
type Desensitization struct {
	Enabled         bool     `json:"enabled" yaml:"enabled"`
	SensitiveFields []string `json:"sensitive_fields" yaml:"sensitive_fields"`
	MaskChar        string   `json:"mask_char" yaml:"mask_char"`
	FixedMaskLength int      `json:"fixed_mask_length" yaml:"fixed_mask_length"`
}

// Default sensitive field patterns
var defaultSensitiveFields = []string{
	"password", "passwd", "pwd",
	"token", "access_token", "authorization",
	"secret", "jwt_secret",
}

// Default mask character
const defaultMaskChar = "*"

// Default fixed mask length
const defaultFixedMaskLength = 6

// getDesensitizationConfigs reads and returns desensitization configuration
func getDesensitizationConfigs(v *viper.Viper) *Desensitization {
	if !v.IsSet("logger.desensitization") {
		return &Desensitization{
			Enabled:         true,
			SensitiveFields: defaultSensitiveFields,
			MaskChar:        defaultMaskChar,
			FixedMaskLength: defaultFixedMaskLength,
		}
	}

	cfg := &Desensitization{
		Enabled:         v.GetBool("logger.desensitization.enabled"),
		SensitiveFields: v.GetStringSlice("logger.desensitization.sensitive_fields"),
		MaskChar:        v.GetString("logger.desensitization.mask_char"),
		FixedMaskLength: v.GetInt("logger.desensitization.fixed_mask_length"),
	}

	if len(cfg.SensitiveFields) == 0 {
		cfg.SensitiveFields = defaultSensitiveFields
	}
	if cfg.MaskChar == "" {
		cfg.MaskChar = defaultMaskChar
	}
	if cfg.FixedMaskLength <= 0 {
		cfg.FixedMaskLength = defaultFixedMaskLength
	}

	return cfg
}
