// Package types defines the value model shared across the pocket bridge:
// the parameter Value union, NULL-preserving result rows, the bridge
// Config, and the standard sentinel errors.
package types
