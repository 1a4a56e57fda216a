// Package store defines the persistence gateway interfaces and the
// collection repository built on top of them, plus common error types
// used across store implementations.
package store
