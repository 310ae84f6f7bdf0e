// Package server holds the HTTP server configuration.
//
// The cmd package starts the Fiber app from these settings: the listen port,
// the API key checked by the auth middleware and the request body limit.
package server
