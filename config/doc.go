// Package config loads and validates seatmap-parser application
// configuration from config.yml, .env, and SEATMAP_* environment variables.
package config
