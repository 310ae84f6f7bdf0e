// Package utils provides common helpers for the catalog-manager application.
// It hosts the shared struct validator used for request bodies and catalog entries.
package utils
