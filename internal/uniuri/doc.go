// Package uniuri generates cryptographically secure random strings suitable for use as opaque tokens.
package uniuri
