package device

/*
We are looking for a hidraw node that looks something like this:

	/sys/class/hidraw/hidraw2/device/uevent:
		DRIVER=hid-generic
		HID_ID=0003:00001044:00007A3B
		HID_NAME=...
		HID_PHYS=usb-0000:00:14.0-5/input3

HID_ID is <bus>:<vendor>:<product> in hex. The physical keyboard registers
multiple logical HID interfaces, so vendor/product alone is ambiguous; the
"inputN" token elsewhere in the uevent tells the interfaces apart, and only
one of them accepts vendor control reports.
*/

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultSysfsDir is where the kernel exposes hidraw class devices.
	DefaultSysfsDir = "/sys/class/hidraw"

	devDir = "/dev"

	hidIDKey = "HID_ID="
)

// BusUSB is the HID_ID bus type for USB-attached devices.
const BusUSB = 0x0003

// ErrNotFound indicates that enumeration succeeded but no node matched.
var ErrNotFound = errors.New("device: no matching hidraw node")

// Candidate is a single hidraw node with the identity read from its uevent
// file. Candidates are enumerated fresh on every call and never cached.
type Candidate struct {
	Name    string
	Bus     uint16
	Vendor  uint16
	Product uint16

	lines []string
}

// DevPath returns the /dev node path for the candidate.
func (c Candidate) DevPath() string {
	return filepath.Join(devDir, c.Name)
}

func (c Candidate) hasMarker(marker string) bool {
	for _, line := range c.lines {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// Matcher selects the hidraw node belonging to a specific logical interface
// of a specific USB device. Both the identity and the interface marker must
// match: vendor/product alone would also hit the keyboard's other HID
// interfaces, and the marker alone is not device-specific.
type Matcher struct {
	VendorID  uint16
	ProductID uint16
	Marker    string
}

// Match reports whether the candidate is the interface we are looking for.
func (m Matcher) Match(c Candidate) bool {
	if c.Bus != BusUSB || c.Vendor != m.VendorID || c.Product != m.ProductID {
		return false
	}
	return c.hasMarker(m.Marker)
}

// Enumerate lists all hidraw nodes under sysfsDir and reads their identity.
// Nodes with a missing or unreadable uevent file are skipped; transient and
// permission-restricted nodes are expected.
func Enumerate(sysfsDir string) ([]Candidate, error) {
	entries, err := os.ReadDir(sysfsDir)
	if err != nil {
		return nil, errors.Wrapf(err, "device: cannot list %s", sysfsDir)
	}

	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		uevent, err := os.ReadFile(filepath.Join(sysfsDir, entry.Name(), "device", "uevent"))
		if err != nil {
			continue
		}
		c := Candidate{
			Name:  entry.Name(),
			lines: strings.Split(string(uevent), "\n"),
		}
		for _, line := range c.lines {
			if bus, vendor, product, ok := parseHIDID(line); ok {
				c.Bus = bus
				c.Vendor = vendor
				c.Product = product
			}
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// Locate returns the /dev path of the first node matching m, in directory
// iteration order. It returns ErrNotFound when enumeration succeeds but
// nothing matches.
func Locate(sysfsDir string, m Matcher) (string, error) {
	candidates, err := Enumerate(sysfsDir)
	if err != nil {
		return "", err
	}
	for _, c := range candidates {
		if m.Match(c) {
			return c.DevPath(), nil
		}
	}
	return "", ErrNotFound
}

func parseHIDID(line string) (bus, vendor, product uint16, ok bool) {
	value, found := strings.CutPrefix(line, hidIDKey)
	if !found {
		return 0, 0, 0, false
	}
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	fields := make([]uint16, 3)
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return 0, 0, 0, false
		}
		fields[i] = uint16(v)
	}
	return fields[0], fields[1], fields[2], true
}
