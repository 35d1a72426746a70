// Package config provides the run configuration for dotnetvuln.
// It defines the input and output formats and logging verbosity, with
// defaults that reproduce the plain stdin-to-text behaviour.
package config
