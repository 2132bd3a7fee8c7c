//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package sysinfo

import "golang.org/x/sys/unix"

// Host returns the source backed by the uname(2) system call.
func Host() Source {
	return SourceFunc(uname)
}

func uname() (Identity, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Identity{}, err
	}
	return Identity{
		Sysname:  unix.ByteSliceToString(uts.Sysname[:]),
		Nodename: unix.ByteSliceToString(uts.Nodename[:]),
		Release:  unix.ByteSliceToString(uts.Release[:]),
		Version:  unix.ByteSliceToString(uts.Version[:]),
		Machine:  unix.ByteSliceToString(uts.Machine[:]),
	}, nil
}
