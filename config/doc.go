// Package config loads the application configuration from config.yml and
// exposes it as a validated global. Everything has a default; a config file
// only needs the keys it wants to override.
package config
