// Package server runs the local API over HTTP.
//
// It owns listener setup, signal handling and graceful shutdown bounded by
// the configured shutdown timeout.
package server
