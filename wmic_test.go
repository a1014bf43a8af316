package drivekind

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/mthorley/drivekind/internal/run"
)

func TestWindowsWmicInventory(t *testing.T) {
	r := fakeRunner{all: run.Result{
		Status: 0,
		Stdout: "DeviceID  MediaType\r\n0         3\r\n1         4\r\n\r\n",
	}}

	inv, ok := windowsWmicInventory(context.Background(), r, `wmic`)
	if !ok {
		t.Fatal("expected the wmic path to succeed")
	}

	if !slices.Equal(inv.Disks, []string{`\\.\PhysicalDrive0`}) {
		t.Errorf(`Disks = %v, want [\\.\PhysicalDrive0]`, inv.Disks)
	}
	if !slices.Equal(inv.SSDs, []string{`\\.\PhysicalDrive1`}) {
		t.Errorf(`SSDs = %v, want [\\.\PhysicalDrive1]`, inv.SSDs)
	}
}

func TestWindowsWmicInventory_NonZeroExit(t *testing.T) {
	r := fakeRunner{all: run.Result{Status: 2112, Stderr: "Invalid Namespace"}}

	inv, ok := windowsWmicInventory(context.Background(), r, `wmic`)
	if ok {
		t.Fatal("non-zero exit should report failure")
	}
	if len(inv.Disks) != 0 || len(inv.SSDs) != 0 {
		t.Errorf("expected empty inventory, got disks=%v ssds=%v", inv.Disks, inv.SSDs)
	}
	if inv.Disks == nil || inv.SSDs == nil {
		t.Error("lists should be empty, not nil")
	}
}

func TestWindowsWmicInventory_RunError(t *testing.T) {
	r := fakeRunner{allErr: errors.New("executable file not found")}

	inv, ok := windowsWmicInventory(context.Background(), r, `wmic`)
	if ok {
		t.Fatal("a command that cannot run should report failure")
	}
	if len(inv.Disks) != 0 || len(inv.SSDs) != 0 {
		t.Errorf("expected empty inventory, got disks=%v ssds=%v", inv.Disks, inv.SSDs)
	}
}

func TestParseMediaTypeTable_SkipsMalformedRows(t *testing.T) {
	table := `DeviceID  MediaType
----------  ---------
0         3
not-a-number 4
1
2 3 4
3 4x
4         4
`
	inv := &Inventory{Disks: []string{}, SSDs: []string{}}
	parseMediaTypeTable(table, inv)

	if !slices.Equal(inv.Disks, []string{`\\.\PhysicalDrive0`}) {
		t.Errorf("Disks = %v", inv.Disks)
	}
	if !slices.Equal(inv.SSDs, []string{`\\.\PhysicalDrive4`}) {
		t.Errorf("SSDs = %v", inv.SSDs)
	}
}

func TestParseMediaTypeTable_UnknownMediaType(t *testing.T) {
	inv := &Inventory{Disks: []string{}, SSDs: []string{}}
	parseMediaTypeTable("5 0\n6 5\n7 12\n", inv)

	if len(inv.Disks) != 0 || len(inv.SSDs) != 0 {
		t.Errorf("unknown media types classified: disks=%v ssds=%v", inv.Disks, inv.SSDs)
	}
}

func TestAllDigits(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"42", true},
		{"007", true},
		{"", false},
		{"4x", false},
		{"-1", false},
		{" 1", false},
		{"١٢", false}, // non-ASCII digits don't count
	}

	for _, tt := range tests {
		if got := allDigits(tt.in); got != tt.want {
			t.Errorf("allDigits(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
