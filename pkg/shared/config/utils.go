package config

import (
	"reflect"
	"strings"

	"github.com/cspscan/cspscan/pkg/csp"
)

// GetBoolValue retrieves a boolean value from a nested struct based on a dot-separated path.
// It returns the provided defaultValue if the specified field is not explicitly set or is nil.
func GetBoolValue(config interface{}, fieldPath string, defaultValue bool) bool {
	if config == nil {
		return defaultValue
	}

	fields := strings.Split(fieldPath, ".")
	val := reflect.ValueOf(config)

	for _, field := range fields {
		if val.Kind() == reflect.Ptr {
			if val.IsNil() {
				return defaultValue
			}
			val = val.Elem()
		}

		val = val.FieldByName(field)
		if !val.IsValid() {
			return defaultValue
		}
	}

	// Check if the field is a pointer to a bool and is not nil
	if val.Kind() == reflect.Ptr && !val.IsNil() {
		return val.Elem().Bool()
	} else if val.Kind() == reflect.Bool {
		// Handle non-pointer bool directly
		return val.Bool()
	}

	return defaultValue
}

// SetThen provides a utility to select the first value if set, otherwise defaults.
func SetThen[T any](value T, defaultValue T) T {
	if reflect.ValueOf(value).IsZero() {
		return defaultValue
	}
	return value
}

// IsValidationEnabled reports the host-level validation gate; default true.
func IsValidationEnabled(cfg *Config) bool {
	return GetBoolValue(cfg, "Validation.Enabled", true)
}

// FlagSnapshot builds the feature-flag state handed to the rule engine from
// the loaded configuration. Defaults match the original plugin: validation
// on, external-resource rules off.
func FlagSnapshot(cfg *Config) csp.FlagMap {
	return csp.FlagMap{
		csp.FlagValidationEnabled:      IsValidationEnabled(cfg),
		csp.FlagAllowExternalResources: GetBoolValue(cfg, "Validation.AllowExternalResources", false),
	}
}
