// Package metrics declares the Prometheus collectors of the service.
// They register on the default registry and are served at GET /metrics.
package metrics
