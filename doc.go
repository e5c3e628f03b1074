// Package main provides the entry point of GoAuth-API.
// It runs a Fiber based JSON API that authenticates users stored with gorm and
// hands out opaque bearer tokens. Every failure, from a missing username to a
// database outage, is answered with one JSON error envelope carrying a stable
// error code.
package main
