// Package http implements the HTTP transport layer of the relay.
//
// It exposes route wiring, the relay handler and the middleware chain
// (CORS headers, request tracing, access logging, request metrics and panic
// recovery) applied before requests are delegated to the service layer.
// Metrics are served by a separate router so the relay keeps answering any
// path.
package http
