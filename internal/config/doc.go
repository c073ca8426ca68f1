// Package config loads, normalizes, and validates carousel configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// GOOGLE_VISION_API_KEY. Directory settings left blank are derived from the
// project directory so a bare checkout works without a config file.
//
// Always obtain settings through this package so downstream code receives
// absolute paths and clear validation errors.
package config
