// Package utils provides small helpers shared by the transport layers:
// JSON response writing, construction of the outbound HTTP client and
// type-safe context keys for request-scoped values.
package utils
