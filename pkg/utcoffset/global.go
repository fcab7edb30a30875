package utcoffset

import (
	"context"
	"sync"
)

//nolint:gochecknoglobals // process-wide default, built on first use
var (
	defaultCache    = NewCache()
	defaultResolver = sync.OnceValue(func() *Resolver {
		return NewResolver(defaultCache)
	})
)

// Default returns the process-wide cache used by the package-level functions.
func Default() *Cache {
	return defaultCache
}

// DefaultResolver returns the process-wide resolver over Default with DefaultSources.
func DefaultResolver() *Resolver {
	return defaultResolver()
}

// GetGlobalOffset returns the process-wide offset, or ErrUninitialized.
func GetGlobalOffset() (Offset, error) {
	return defaultCache.Get()
}

// TrySetGlobalOffset stores o as the process-wide offset.
func TrySetGlobalOffset(o Offset) error {
	return defaultCache.TrySet(o)
}

// TrySetGlobalOffsetFromString parses [+|-]HH[:]MM and stores it as the
// process-wide offset.
func TrySetGlobalOffsetFromString(input string) error {
	return defaultCache.TrySetFromString(input)
}

// TrySetGlobalOffsetFromPair stores hours in [-12,14] and minutes in [0,59]
// as the process-wide offset.
func TrySetGlobalOffsetFromPair(hours, minutes int) error {
	return defaultCache.TrySetFromPair(hours, minutes)
}

// GetUTCOffset resolves the process-wide offset, falling back to UTC.
func GetUTCOffset(ctx context.Context) (Offset, Errors) {
	return DefaultResolver().Resolve(ctx)
}

// GetLocalTimestamp renders the current time at the process-wide offset.
//
// The offset comes from, in order: an explicit TrySetGlobalOffset* call,
// the host local zone, the platform command, or UTC.
func GetLocalTimestamp(ctx context.Context) (string, Errors, error) {
	return DefaultResolver().LocalTimestamp(ctx)
}
