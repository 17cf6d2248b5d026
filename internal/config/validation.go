package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate checks the configuration against its struct tags and the custom
// environment/loglevel rules.
func Validate(cfg *Config) error {
	v := validator.New()

	if err := v.RegisterValidation("environment", validateEnvironment); err != nil {
		return err
	}
	if err := v.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fmt.Sprintf("%s failed %q", fieldError.Namespace(), fieldError.Tag()))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
	}
	return fmt.Errorf("validation failed: %w", err)
}

func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	}
	return false
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
