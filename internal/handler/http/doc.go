// Package http implements the local report server: a JSON API over the
// inspection services plus printable and shareable report views.
//
// Request tracing, access logging, metrics, CORS, rate limiting and response
// compression are handled here before requests reach the service layer.
package http
