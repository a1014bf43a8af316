// Package drivekind enumerates the physical storage devices attached to
// the host and classifies each as rotational (HDD) or solid-state (SSD).
//
// Detection is platform-specific: FreeBSD parses `geom disk list`
// output, Linux reads the per-device rotational flag under /sys/block,
// and Windows queries MSFT_PhysicalDisk media types. All three paths
// reduce to the same Inventory shape. Anything that goes wrong along
// the way degrades to a partial or empty inventory with trace-level
// diagnostics; Disks never fails.
package drivekind

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

var log logrus.Ext1FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger. Diagnostics are emitted at
// trace level only, so the host needs a trace-enabled logger to see why
// a device or row was skipped.
func SetLogger(l logrus.Ext1FieldLogger) {
	if l != nil {
		log = l
	}
}

// Device holds the attributes reported for one disk, keyed by attribute
// name. Values are strings, or int64 for numeric attributes, or nil
// when a numeric attribute was reported but did not parse. Attributes
// with a legacy alias appear under both names with the identical value.
type Device map[string]any

// Inventory is the result of one disk scan.
type Inventory struct {
	// Disks lists the names of rotational devices. Populated on Linux
	// and Windows; nil on FreeBSD, where Details carries everything.
	Disks []string

	// Details maps device name to its attribute record, SSDs included.
	// Populated on FreeBSD only.
	Details map[string]Device

	// SSDs lists the names of devices reporting as solid-state.
	SSDs []string
}

// MarshalJSON keeps the historical two-field shape: "disks" is an
// object keyed by device name when attribute records are available and
// a plain name list otherwise, "SSDs" is always a list.
func (inv Inventory) MarshalJSON() ([]byte, error) {
	out := struct {
		Disks any      `json:"disks"`
		SSDs  []string `json:"SSDs"`
	}{SSDs: inv.SSDs}

	if inv.Details != nil {
		out.Disks = inv.Details
	} else if inv.Disks != nil {
		out.Disks = inv.Disks
	} else {
		out.Disks = []string{}
	}
	if out.SSDs == nil {
		out.SSDs = []string{}
	}

	return json.Marshal(out)
}

// Disks scans the host and returns its disk inventory. The scan is
// recomputed on every call; nothing is cached. On platforms without a
// detection strategy, and on every degradation path (missing tools,
// failing commands, unreadable flags), the inventory comes back empty
// or partial rather than an error.
func Disks(ctx context.Context) *Inventory {
	return collect(ctx)
}
