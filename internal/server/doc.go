// Package server runs the local report HTTP server, including signal
// handling and graceful shutdown.
package server
