// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional YAML file, environment
// variables). It provides type-safe access to the settings of the HTTP
// server, the person directory seed, multipart parsing and metrics.
package config
