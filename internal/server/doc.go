// Package server runs the gateway's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and a graceful
// shutdown bounded by the configured timeout.
package server
