// Package server runs the reference remote store's HTTP server, including
// startup, signal handling, and graceful shutdown.
package server
