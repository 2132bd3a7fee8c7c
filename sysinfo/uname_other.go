//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows)

package sysinfo

import "runtime"

// Host returns a source that always fails with *UnsupportedPlatformError.
func Host() Source {
	return SourceFunc(func() (Identity, error) {
		return Identity{}, &UnsupportedPlatformError{GOOS: runtime.GOOS}
	})
}
