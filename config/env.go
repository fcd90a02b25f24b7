package config

import (
	"os"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment
func GetEnvironment() Environment {
	// CI is detected from the runner
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch os.Getenv("ENV") {
	case "production", "prod":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// Debug reports whether verbose framework output should be enabled
func (e Environment) Debug() bool {
	return e == Development
}
