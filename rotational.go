package drivekind

import (
	"io"
	"os"
	"path/filepath"
)

// defaultSysBlock is where the kernel exposes one directory per block
// device.
const defaultSysBlock = "/sys/block"

// linuxInventory classifies block devices by the single-byte
// queue/rotational flag under root: "0" means SSD, "1" means HDD. A
// device whose flag cannot be read, or reports anything else, is left
// out of both lists. The device name is the directory the flag file
// lives under, two levels up.
func linuxInventory(root string) *Inventory {
	inv := &Inventory{Disks: []string{}, SSDs: []string{}}

	pattern := filepath.Join(root, "*", "queue", "rotational")
	entries, err := filepath.Glob(pattern)
	if err != nil {
		log.Tracef("bad rotational glob %q: %v", pattern, err)
		return inv
	}

	for _, entry := range entries {
		device := filepath.Base(filepath.Dir(filepath.Dir(entry)))

		flag, err := readFlag(entry)
		if err != nil {
			log.Tracef("device %s: %v", device, err)
			continue
		}

		switch flag {
		case '0':
			log.Tracef("device %s reports itself as an SSD", device)
			inv.SSDs = append(inv.SSDs, device)
		case '1':
			log.Tracef("device %s reports itself as an HDD", device)
			inv.Disks = append(inv.Disks, device)
		default:
			log.Tracef("unable to identify device %s as an SSD or HDD: flag %q is not 0 or 1", device, flag)
		}
	}

	return inv
}

// readFlag reads the single classification byte from a rotational
// pseudo-file.
func readFlag(path string) (byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var buf [1]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}
