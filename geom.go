package drivekind

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/mthorley/drivekind/internal/run"
)

// Canonical attribute keys as they appear in `geom disk list` output.
const (
	attrGeomName     = "Geom name"
	attrMediasize    = "Mediasize"
	attrSectorsize   = "Sectorsize"
	attrStripesize   = "Stripesize"
	attrStripeoffset = "Stripeoffset"
	attrDescr        = "descr" // model
	attrLunid        = "lunid"
	attrLunname      = "lunname"
	attrIdent        = "ident"        // serial
	attrRotationRate = "rotationrate" // RPM, 0 for non-rotating
)

// opticalPrefix marks optical drives, which are excluded from the
// inventory entirely.
const opticalPrefix = "cd"

// coercion selects how a raw attribute value becomes a typed one.
type coercion int

const (
	rawString coercion = iota
	tryInt
	regexInt
)

// geomAttr describes one recognized attribute: its key in geom output,
// the coercion applied to its value, and the legacy alias the value is
// duplicated under, if any.
type geomAttr struct {
	key     string
	kind    coercion
	pattern *regexp.Regexp // regexInt only
	alias   string
}

// geomAttrs is the closed set of attributes lifted from each geom
// record. Aliases keep the names older consumers expect. Mediasize is
// the only attribute that needs digit extraction, since geom suffixes
// it with a human-readable size in parentheses.
var geomAttrs = []geomAttr{
	{key: attrGeomName},
	{key: attrMediasize, kind: regexInt, pattern: regexp.MustCompile(`(\d+)`)},
	{key: attrSectorsize, kind: tryInt},
	{key: attrStripesize, kind: tryInt},
	{key: attrStripeoffset, kind: tryInt},
	{key: attrDescr, alias: "device_model"},
	{key: attrLunid, alias: "WWN"},
	{key: attrLunname},
	{key: attrIdent, alias: "serial_number"},
	{key: attrRotationRate, kind: tryInt, alias: "media_RPM"},
}

// coerce applies the attribute's coercion kind. Numeric kinds return
// nil when the value does not parse, so consumers can tell "reported
// but unreadable" from "not reported".
func (a geomAttr) coerce(raw string) any {
	switch a.kind {
	case tryInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil
		}
		return n
	case regexInt:
		m := a.pattern.FindStringSubmatch(raw)
		if m == nil {
			return nil
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil
		}
		return n
	default:
		return raw
	}
}

// parseGeomBlock extracts the recognized attributes from one
// blank-line-delimited device block. The first line matching an
// attribute wins. Matching is anchored to the start of the trimmed
// line so a short key never matches inside a longer one.
func parseGeomBlock(block string) Device {
	dev := Device{}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		for _, attr := range geomAttrs {
			if _, seen := dev[attr.key]; seen {
				continue
			}
			rest, ok := strings.CutPrefix(line, attr.key+":")
			if !ok {
				continue
			}
			val := attr.coerce(strings.TrimSpace(rest))
			dev[attr.key] = val
			if attr.alias != "" {
				dev[attr.alias] = val
			}
		}
	}
	return dev
}

// freebsdGeomInventory builds the inventory from `geom disk list`
// output. Every non-optical device lands in Details; devices with a
// rotation rate of exactly 0 are additionally listed as SSDs.
func freebsdGeomInventory(ctx context.Context, r run.Runner, geomPath string) *Inventory {
	inv := &Inventory{Details: map[string]Device{}, SSDs: []string{}}

	out := r.Run(ctx, geomPath, "disk", "list")
	for _, block := range strings.Split(out, "\n\n") {
		dev := parseGeomBlock(block)
		if len(dev) == 0 {
			// Trailing or doubled blank lines produce empty blocks.
			continue
		}

		name, ok := dev[attrGeomName].(string)
		delete(dev, attrGeomName)
		if !ok || name == "" {
			log.Trace("skipping geom record with no device name")
			continue
		}
		if strings.HasPrefix(name, opticalPrefix) {
			continue
		}

		inv.Details[name] = dev
		if rate, ok := dev[attrRotationRate].(int64); ok && rate == 0 {
			log.Tracef("device %s reports itself as an SSD", name)
			inv.SSDs = append(inv.SSDs, name)
		}
	}

	return inv
}
