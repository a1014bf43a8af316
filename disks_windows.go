//go:build windows

package drivekind

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mthorley/drivekind/internal/run"
	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows"
)

func collect(ctx context.Context) *Inventory {
	r := run.Default()

	wmicPath, err := lookupWmic(r)
	if err != nil {
		log.Tracef("wmic not available: %v", err)
		return wmiInventory()
	}

	inv, ok := windowsWmicInventory(ctx, r, wmicPath)
	if !ok {
		return wmiInventory()
	}
	return inv
}

// lookupWmic resolves the wmic executable via PATH first, then the
// well-known wbem directory. Service processes often run with a
// minimal PATH, and current Windows builds drop wmic entirely.
func lookupWmic(r run.Runner) (string, error) {
	if p, err := r.LookPath("wmic"); err == nil {
		return p, nil
	}

	sysDir, err := windows.GetSystemDirectory()
	if err != nil {
		return "", err
	}

	p := filepath.Join(sysDir, "wbem", "wmic.exe")
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}

// msftPhysicalDisk maps to the MSFT_PhysicalDisk WMI class. The field
// names tell the wmi library which properties to load.
type msftPhysicalDisk struct {
	DeviceID  string
	MediaType uint16
}

// wmiInventory queries MSFT_PhysicalDisk directly, covering Windows
// builds without the wmic executable. Classification matches the table
// path: media type 3 is HDD, 4 is SSD.
func wmiInventory() *Inventory {
	inv := &Inventory{Disks: []string{}, SSDs: []string{}}

	var dst []msftPhysicalDisk
	q := "SELECT DeviceID, MediaType FROM MSFT_PhysicalDisk WHERE MediaType=3 OR MediaType=4"
	if err := wmi.QueryNamespace(q, &dst, `root\microsoft\windows\storage`); err != nil {
		log.Tracef("MSFT_PhysicalDisk query: %v", err)
		return inv
	}

	for _, d := range dst {
		device := physicalDrivePath(d.DeviceID)
		switch int(d.MediaType) {
		case mediaTypeHDD:
			log.Tracef("device %s reports itself as an HDD", device)
			inv.Disks = append(inv.Disks, device)
		case mediaTypeSSD:
			log.Tracef("device %s reports itself as an SSD", device)
			inv.SSDs = append(inv.SSDs, device)
		default:
			log.Tracef("unable to identify device %s as an SSD or HDD: media type %d is not 3 or 4", device, d.MediaType)
		}
	}

	return inv
}
