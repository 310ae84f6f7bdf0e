// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - auth: API key check on every protected route.
//   - rayid: per-request ray ID in locals and the X-Ray-ID header.
//
// rayid must be registered first so every later log line carries the ID.
package middleware
