//go:build freebsd

package drivekind

import (
	"context"
	"strings"

	"github.com/mthorley/drivekind/internal/run"
	"golang.org/x/sys/unix"
)

func collect(ctx context.Context) *Inventory {
	r := run.Default()

	geom, err := r.LookPath("geom")
	if err != nil {
		log.Trace("geom not installed, listing kern.disks without classification")
		return kernDisksInventory()
	}

	return freebsdGeomInventory(ctx, r, geom)
}

// kernDisksInventory is the degraded path when geom is unavailable:
// device names from the kern.disks sysctl, empty attribute records, no
// SSD classification.
func kernDisksInventory() *Inventory {
	inv := &Inventory{Details: map[string]Device{}, SSDs: []string{}}

	list, err := unix.Sysctl("kern.disks")
	if err != nil {
		log.Tracef("kern.disks: %v", err)
		return inv
	}

	for _, name := range strings.Fields(list) {
		if strings.HasPrefix(name, opticalPrefix) {
			continue
		}
		inv.Details[name] = Device{}
	}

	return inv
}
