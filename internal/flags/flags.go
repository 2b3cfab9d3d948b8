// Package flags provides feature flags for optional checker behavior.
// Flags are read-only after initialization and provide safe defaults for unknown flags.
package flags

import (
	"maps"
	"slices"

	"github.com/zjrosen/osgdb/internal/log"
)

// Flag name constants for type-safe flag access.
const (
	// FlagOrderDiff attaches a field-order diff to ordering warnings.
	FlagOrderDiff = "order-diff"

	// FlagDependencyCheck enables the code dependency checks (alias resolution,
	// missing dependency entries, no-entry overlap).
	FlagDependencyCheck = "dependency-check"
)

// defaults holds the value of every known flag when config does not set it.
var defaults = map[string]bool{
	FlagOrderDiff:       false,
	FlagDependencyCheck: true,
}

// Registry holds feature flag state loaded from configuration.
// Flags are read-only after initialization.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a config map layered over the defaults of the
// known flags. If flags is nil, only the defaults apply.
func New(flags map[string]bool) *Registry {
	merged := Defaults()
	maps.Copy(merged, flags)
	r := &Registry{flags: merged}
	for name := range flags {
		if !IsKnown(name) {
			log.Warn(log.CatConfig, "Unknown feature flag in config", "flag", name)
		}
	}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(merged), "flags", r.All())
	return r
}

// Defaults returns a copy of the default value of every known flag.
func Defaults() map[string]bool {
	return maps.Clone(defaults)
}

// Known returns the names of the known flags, sorted.
func Known() []string {
	return slices.Sorted(maps.Keys(defaults))
}

// IsKnown reports whether name is a known flag.
func IsKnown(name string) bool {
	_, ok := defaults[name]
	return ok
}

// Enabled returns true if the named flag is enabled.
// Returns false for unknown flags (safe default).
// Returns false when called on nil registry (nil-safe).
func (r *Registry) Enabled(name string) bool {
	if r == nil || r.flags == nil {
		return false
	}
	value, exists := r.flags[name]
	if !exists {
		log.Debug(log.CatConfig, "Unknown flag accessed", "flag", name, "result", false)
		return false
	}
	return value
}

// All returns a copy of all flags (for debugging/logging).
// Returns an empty map if the registry is nil.
func (r *Registry) All() map[string]bool {
	if r == nil || r.flags == nil {
		return make(map[string]bool)
	}
	result := make(map[string]bool, len(r.flags))
	maps.Copy(result, r.flags)
	return result
}
