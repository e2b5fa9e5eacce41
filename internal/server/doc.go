// Package server runs the application's HTTP server.
//
// It covers startup, signal handling and graceful shutdown.
package server
