// Package config provides configuration loading, merging, and validation
// facilities for the gateway.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win on non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. The resulting value is
// read-only after startup.
package config
