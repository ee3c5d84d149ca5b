// Package validator registers the domain validation tags and turns
// validation failures into field-keyed messages.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Domain tags.
const (
	TagPriority     = "priority"
	TagPomodoroMode = "pomodoro_mode"
)

var (
	priorities    = map[string]bool{"High": true, "Medium": true, "Low": true}
	pomodoroModes = map[string]bool{"focus": true, "short": true, "long": true}
)

var errorMessages = map[string]string{
	"required":      "The field '%s' is required.",
	"email":         "The field '%s' must be a valid email address.",
	"min":           "The field '%s' must be at least %s characters long.",
	"max":           "The field '%s' must be no longer than %s characters.",
	"oneof":         "The field '%s' must be one of %s.",
	TagPriority:     "The field '%s' must be one of High Medium Low.",
	TagPomodoroMode: "The field '%s' must be one of focus short long.",
}

var setupOnce sync.Once

// Setup registers the domain tags on gin's binding engine.
func Setup() {
	setupOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			Register(v)
		}
	})
}

// Register adds the domain tags and JSON field naming to v.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation(TagPriority, func(fl validator.FieldLevel) bool {
		return IsPriority(fl.Field().String())
	})
	_ = v.RegisterValidation(TagPomodoroMode, func(fl validator.FieldLevel) bool {
		return IsPomodoroMode(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// IsPriority verify is a known priority
func IsPriority(s string) bool {
	return priorities[s]
}

// IsPomodoroMode verify is a known pomodoro mode
func IsPomodoroMode(s string) bool {
	return pomodoroModes[s]
}

// parseMessage constructs a friendly error message for a failed tag.
func parseMessage(field string, e validator.FieldError) string {
	if msg, ok := errorMessages[e.Tag()]; ok {
		switch strings.Count(msg, "%s") {
		case 1:
			return fmt.Sprintf(msg, field)
		case 2:
			return fmt.Sprintf(msg, field, e.Param())
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", field, e.Tag())
}

// Messages maps JSON field names to messages. It returns nil when err is
// not a validation failure.
func Messages(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = parseMessage(e.Field(), e)
	}
	return out
}
