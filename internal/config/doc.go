// Package config loads shadowhand's runtime settings.
//
// Settings are layered in increasing precedence:
//
//  1. Built-in defaults
//  2. Config file (TOML or YAML, chosen by extension)
//  3. Environment variables with the SHADOWHAND_ prefix
//
// Command-line flags are applied by the caller on top of the result.
//
// Example file:
//
//	[dispatcher]
//	delay = "500ms"
//
//	[actuator]
//	backend = "trace"
//
//	[logging]
//	level = "debug"
package config
