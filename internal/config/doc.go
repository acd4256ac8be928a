// Package config loads, merges and validates configuration for the fire
// audit binaries.
//
// Sources, highest priority first:
//  1. Environment variables (an optional .env file is loaded first)
//  2. Command-line flags (server and client only)
//  3. JSON config file
//  4. Built-in defaults
//
// Each binary asks for its own view: [GetServerConfig], [GetClientConfig]
// or [GetCLIConfig].
package config
