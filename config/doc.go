// Package config loads and validates the application configuration
// from a yaml file, with environment overrides (GPSFIX_*) layered on
// top. Precedence, lowest to highest: defaults, yaml file, environment,
// CLI flags (applied by the caller).
package config
