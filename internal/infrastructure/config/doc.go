// Package config loads and validates Roomline Core configuration.
//
// Configuration is read from a YAML file, merged over hardcoded defaults,
// and finally overridden by ROOMLINE_* environment variables. The loaded
// Config is validated once at startup; components receive the sections
// they need rather than the whole struct.
package config
