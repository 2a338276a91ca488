// Package formatter serializes normalized seat maps and derives output
// artifact names.
//
// This package is organized into:
// - json.go: JSON serialization
// - naming.go: output filename derivation
package formatter
