// Package config loads, merges, and validates the vault configuration.
//
// Sources, in priority order (later sources override earlier non-zero
// fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (daemon only)
//  4. JSON config file
//
// [GetStructuredConfig] serves the daemon and [GetClientConfig] serves
// vaultctl.
package config
