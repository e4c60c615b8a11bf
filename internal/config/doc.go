// Package config handles nitpick configuration loading and merging.
//
// The effective configuration is built by layering, lowest precedence
// first: built-in defaults, the user config file, NITPICK_* environment
// variables, then command-line flag overrides.
package config
