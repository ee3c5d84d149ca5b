package logger

import (
	"strings"

	"github.com/ncobase/studyverse/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// Desensitizer is a logrus hook masking the values of sensitive fields
// before the entry is formatted.
type Desensitizer struct {
	config *config.Desensitization
	fields []string
	mask   string
}

// NewDesensitizer creates a new desensitizer instance
func NewDesensitizer(cfg *config.Desensitization) *Desensitizer {
	fields := make([]string, 0, len(cfg.SensitiveFields))
	for _, f := range cfg.SensitiveFields {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			fields = append(fields, f)
		}
	}
	return &Desensitizer{
		config: cfg,
		fields: fields,
		mask:   strings.Repeat(cfg.MaskChar, cfg.FixedMaskLength),
	}
}

// Levels returns all log levels
func (d *Desensitizer) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire masks sensitive fields of the entry
func (d *Desensitizer) Fire(entry *logrus.Entry) error {
	for key, value := range entry.Data {
		if value == nil || !d.isSensitiveField(key) {
			continue
		}
		entry.Data[key] = d.mask
	}
	return nil
}

// isSensitiveField reports whether a field name matches a configured pattern
func (d *Desensitizer) isSensitiveField(key string) bool {
	key = strings.ToLower(key)
	for _, f := range d.fields {
		if strings.Contains(key, f) {
			return true
		}
	}
	return false
}
