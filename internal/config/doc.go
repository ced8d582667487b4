// Package config loads, normalizes, and validates fft configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TMDB_API_KEY. The Config type centralizes every knob the CLI needs so that
// downstream code receives sanitized paths and clear validation errors.
package config
