// Package utils provides general-purpose helpers used across the
// application: the Debouncer and Retrier the sync layer is built from, the
// Permanent error marker, identifier generation and the resty HTTP client
// wrapper.
package utils
