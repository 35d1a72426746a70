package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
var (
	// ErrInvalidInputFormat is returned when the input format is not json, yaml or auto.
	ErrInvalidInputFormat = errors.New("invalid input format: must be json, yaml or auto")

	// ErrInvalidOutputFormat is returned when the report format is not text, json or markdown.
	ErrInvalidOutputFormat = errors.New("invalid output format: must be text, json or markdown")
)
