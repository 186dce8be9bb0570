//go:build !planardebug

package contract

// Assert is a no-op in release builds.
func Assert(bool, string) {}

// Assertf is a no-op in release builds.
func Assertf(bool, string, ...any) {}
