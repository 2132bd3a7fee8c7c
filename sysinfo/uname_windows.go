//go:build windows

package sysinfo

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// Host returns a source that assembles a uname-shaped record from
// RtlGetVersion and the CurrentVersion registry key.
func Host() Source {
	return SourceFunc(uname)
}

func uname() (Identity, error) {
	v := windows.RtlGetVersion()
	if v == nil || v.MajorVersion == 0 {
		return Identity{}, fmt.Errorf("RtlGetVersion returned no version")
	}

	hostname, err := os.Hostname()
	if err != nil {
		return Identity{}, fmt.Errorf("hostname: %w", err)
	}

	version := fmt.Sprintf("Build %d", v.BuildNumber)
	// DisplayVersion (e.g. "23H2") is absent on older releases.
	if dv := getRegistryString(`SOFTWARE\Microsoft\Windows NT\CurrentVersion`, "DisplayVersion"); dv != "" {
		version += " " + dv
	}

	return Identity{
		Sysname:  "Windows_NT",
		Nodename: hostname,
		Release:  fmt.Sprintf("%d.%d", v.MajorVersion, v.MinorVersion),
		Version:  version,
		Machine:  machine(runtime.GOARCH),
	}, nil
}

// machine maps a GOARCH value to the name uname reports on other systems.
func machine(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "i686"
	case "arm64":
		return "aarch64"
	default:
		return goarch
	}
}

// getRegistryString reads a string value below HKEY_LOCAL_MACHINE.
//
// Returns:
//   - The string value if successful
//   - An empty string if the key or value doesn't exist or can't be read
func getRegistryString(path, valueName string) string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(valueName)
	if err != nil {
		return ""
	}
	return value
}
