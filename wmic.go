package drivekind

import (
	"context"
	"strconv"
	"strings"

	"github.com/mthorley/drivekind/internal/run"
)

// MSFT_PhysicalDisk media type codes for the two kinds we classify.
const (
	mediaTypeHDD = 3
	mediaTypeSSD = 4
)

// wmicDiskArgs query MSFT_PhysicalDisk for drive index and media type,
// pre-filtered to the two codes of interest, as a table.
var wmicDiskArgs = []string{
	`/namespace:\\root\microsoft\windows\storage`,
	"path", "MSFT_PhysicalDisk",
	"where", "(MediaType=3 or MediaType=4)",
	"get", "DeviceID,MediaType",
	"/format:table",
}

// physicalDrivePath builds the Win32 device path for a physical drive
// index.
func physicalDrivePath(index string) string {
	return `\\.\PhysicalDrive` + index
}

// windowsWmicInventory runs wmic and classifies each physical drive by
// its reported media type. The boolean is false when the command could
// not run or exited non-zero, which older and newer Windows builds do
// for different reasons; the inventory is empty in that case.
func windowsWmicInventory(ctx context.Context, r run.Runner, wmicPath string) (*Inventory, bool) {
	inv := &Inventory{Disks: []string{}, SSDs: []string{}}

	res, err := r.RunAll(ctx, wmicPath, wmicDiskArgs...)
	if err != nil || res.Status != 0 {
		log.Trace("this version of Windows does not support the wmic physical disk query")
		return inv, false
	}

	parseMediaTypeTable(res.Stdout, inv)
	return inv, true
}

// parseMediaTypeTable folds wmic table rows into inv. A valid data row
// is exactly two all-digit fields: drive index and media type code.
// Header, separator, and malformed rows are skipped.
func parseMediaTypeTable(table string, inv *Inventory) {
	for _, line := range strings.Split(table, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 || !allDigits(fields[0]) || !allDigits(fields[1]) {
			continue
		}

		device := physicalDrivePath(fields[0])
		code, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		switch code {
		case mediaTypeHDD:
			log.Tracef("device %s reports itself as an HDD", device)
			inv.Disks = append(inv.Disks, device)
		case mediaTypeSSD:
			log.Tracef("device %s reports itself as an SSD", device)
			inv.SSDs = append(inv.SSDs, device)
		default:
			log.Tracef("unable to identify device %s as an SSD or HDD: media type %d is not 3 or 4", device, code)
		}
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
