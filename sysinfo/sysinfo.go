// Package sysinfo reads the operating system identity record (the uname
// tuple) and formats it into the one-line string shown by aboutsys.
package sysinfo

import (
	"errors"
	"fmt"
	"strings"
)

// Identity is the OS-reported identity record.
type Identity struct {
	// Sysname is the kernel or system name, e.g. "Linux"
	Sysname string

	// Nodename is the host's network node name
	Nodename string

	// Release is the kernel release, e.g. "6.8.0-45-generic"
	Release string

	// Version is the kernel build version string
	Version string

	// Machine is the hardware architecture, e.g. "x86_64"
	Machine string
}

// String joins the five fields with single spaces in the fixed order
// sysname, nodename, release, version, machine.
func (id Identity) String() string {
	return strings.Join(id.fields(), " ")
}

func (id Identity) fields() []string {
	return []string{id.Sysname, id.Nodename, id.Release, id.Version, id.Machine}
}

// validate rejects records that cannot be rendered on a single line.
func (id Identity) validate() error {
	if id.Sysname == "" {
		return errors.New("empty system name")
	}
	if id.Machine == "" {
		return errors.New("empty machine")
	}
	names := []string{"sysname", "nodename", "release", "version", "machine"}
	for i, f := range id.fields() {
		if strings.ContainsAny(f, "\x00\n\r") {
			return fmt.Errorf("%s contains a control character", names[i])
		}
	}
	return nil
}

// Source produces an identity record. Host returns the one backed by the
// running operating system.
type Source interface {
	Uname() (Identity, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() (Identity, error)

// Uname calls f.
func (f SourceFunc) Uname() (Identity, error) {
	return f()
}

// SystemError reports that the identity query failed or returned a
// malformed record.
type SystemError struct {
	Err error
}

func (e *SystemError) Error() string {
	return "system identity: " + e.Err.Error()
}

func (e *SystemError) Unwrap() error {
	return e.Err
}

// UnsupportedPlatformError is returned by the host source on operating
// systems that have no identity facility.
type UnsupportedPlatformError struct {
	GOOS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("system identity: unsupported platform %q", e.GOOS)
}

// ReadIdentity queries src and returns the display string.
//
// Parameters:
//   - src: The identity source, usually Host()
//
// Returns:
//   - The five fields joined by single spaces
//   - *UnsupportedPlatformError unchanged if src reports one
//   - *SystemError for any other failure or a malformed record
func ReadIdentity(src Source) (string, error) {
	id, err := src.Uname()
	if err != nil {
		var unsupported *UnsupportedPlatformError
		if errors.As(err, &unsupported) {
			return "", err
		}
		return "", &SystemError{Err: err}
	}
	if err := id.validate(); err != nil {
		return "", &SystemError{Err: fmt.Errorf("malformed record: %w", err)}
	}
	return id.String(), nil
}
