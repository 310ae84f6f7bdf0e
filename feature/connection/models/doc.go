// Package models holds the persisted row and the request/response types of
// the connection feature.
package models
