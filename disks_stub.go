//go:build !freebsd && !linux && !windows

package drivekind

import (
	"context"
	"runtime"
)

func collect(_ context.Context) *Inventory {
	log.Tracef("disk inventory does not support %s", runtime.GOOS)
	return &Inventory{Disks: []string{}, SSDs: []string{}}
}
