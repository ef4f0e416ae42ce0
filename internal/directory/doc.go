// Package directory holds the roster search core: phone and organization
// normalization, initial-consonant (chosung) keys, per-record search indexes,
// query matching and grouping. Everything here is pure and safe to share
// across goroutines once built.
package directory
