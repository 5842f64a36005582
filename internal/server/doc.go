// Package server runs the application's transport servers.
//
// It starts the HTTP API and the optional gRPC health endpoint, and shuts
// both down gracefully when the run context ends or either server fails.
package server
