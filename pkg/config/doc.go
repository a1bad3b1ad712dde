// Package config loads guidex configuration: embedded TOML defaults layered
// under an optional guidex.toml in the working directory.
package config
