// Package template defines the renderer-agnostic template engine seam.
// Template families depend on this interface so the backing engine can be
// swapped or faked in tests without touching section tables.
package template
