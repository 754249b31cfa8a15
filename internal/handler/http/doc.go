// Package http implements the local JSON API the UI uses to read and mutate
// the tab state.
//
// Every request passes through panic recovery, trace id propagation and
// access logging before it reaches a handler. Handlers delegate to the
// local state store and map its sentinel errors to HTTP status codes.
package http
