// Package http implements the HTTP transport layer of the gateway.
//
// It exposes route wiring, request handlers, and middleware used by the
// JSON API. Cross-cutting concerns such as request tracing, access logging,
// panic recovery and request timeouts are handled in this package before
// requests are delegated to the service layer. Every response body is JSON:
// {"message": ...} on success and {"error": ...} on failure.
package http
