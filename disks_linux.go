//go:build linux

package drivekind

import "context"

func collect(_ context.Context) *Inventory {
	return linuxInventory(defaultSysBlock)
}
