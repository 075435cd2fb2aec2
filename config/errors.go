package config

import "errors"

var (
	// ErrMissingFile is returned when the configuration file does not exist.
	ErrMissingFile = errors.New("config: file not found")

	// ErrParse is returned for malformed YAML or unknown keys.
	ErrParse = errors.New("config: parse error")

	// ErrInvalidConfig is returned when the decoded configuration fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
