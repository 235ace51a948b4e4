package keyboard

import (
	"log"

	"kb-color/system/device"
	"kb-color/system/persist"

	"github.com/pkg/errors"
)

const (
	persistKey = "state"
)

// ErrNoDevice indicates that no hidraw node matched, or that none of the
// matching nodes accepted the report.
var ErrNoDevice = errors.New("kbCtrl: no RGB control interface accepted the report")

// Config contains the configurations for the keyboard control
type Config struct {
	DryRun bool

	// SysfsDir overrides the hidraw class directory, for tests
	SysfsDir string
}

// Control sets the keyboard backlight color and brightness
type Control struct {
	Config
	currentColor      Color
	currentBrightness uint8
}

// NewControl returns a backlight control seeded with the firmware defaults
// (white at full brightness) until state is loaded over it.
func NewControl(conf Config) (*Control, error) {
	if conf.SysfsDir == "" {
		conf.SysfsDir = device.DefaultSysfsDir
	}
	return &Control{
		Config:            conf,
		currentColor:      White,
		currentBrightness: BrightnessMax,
	}, nil
}

// Set encodes and transmits the control packet. Discovery runs fresh on
// every call: the hidraw registry is authoritative and may change between
// invocations (replug, driver reload). Every matching node is tried in
// enumeration order until one accepts the full report; transfers are
// idempotent so trying extra nodes is harmless.
func (c *Control) Set(color Color, brightness uint8) error {
	if !color.valid() {
		return errors.Errorf("kbCtrl: invalid color %d", color)
	}
	if brightness > BrightnessMax {
		return errors.Errorf("kbCtrl: brightness must be %d-%d", BrightnessMin, BrightnessMax)
	}

	pkt := NewPacket(color, brightness)
	matcher := device.Matcher{
		VendorID:  VendorID,
		ProductID: ProductID,
		Marker:    rgbControlInterface,
	}

	candidates, err := device.Enumerate(c.SysfsDir)
	if err != nil {
		return errors.Wrap(err, "kbCtrl: cannot enumerate hidraw nodes")
	}

	sent := false
	for _, candidate := range candidates {
		if !matcher.Match(candidate) {
			continue
		}
		ctrl, err := device.NewControl(device.Config{
			DryRun: c.DryRun,
			Path:   candidate.DevPath(),
		})
		if err != nil {
			log.Printf("kbCtrl: skipping %s: %s\n", candidate.DevPath(), err)
			continue
		}
		n, err := ctrl.SendFeature(pkt[:])
		ctrl.Close()
		if err != nil {
			log.Printf("kbCtrl: transfer to %s failed: %s\n", candidate.DevPath(), err)
			continue
		}
		if n != PacketSize {
			log.Printf("kbCtrl: %s accepted %d of %d bytes\n", candidate.DevPath(), n, PacketSize)
			continue
		}
		sent = true
		break
	}
	if !sent {
		return ErrNoDevice
	}

	c.currentColor = color
	c.currentBrightness = brightness

	return nil
}

// Color returns the current backlight color
func (c *Control) Color() Color {
	return c.currentColor
}

// Brightness returns the current backlight brightness percentage
func (c *Control) Brightness() uint8 {
	return c.currentBrightness
}

var _ persist.Registry = &Control{}

// Name satisfies persist.Registry
func (c *Control) Name() string {
	return persistKey
}

// Value satisfies persist.Registry
func (c *Control) Value() []byte {
	return []byte{byte(c.currentColor), c.currentBrightness}
}

// Load satisfies persist.Registry. Records that are too short or out of
// range are ignored and the defaults kept.
func (c *Control) Load(v []byte) error {
	if len(v) < 2 {
		return nil
	}
	color := Color(v[0])
	brightness := v[1]
	if !color.valid() || brightness > BrightnessMax {
		return nil
	}
	c.currentColor = color
	c.currentBrightness = brightness
	return nil
}

// Apply satisfies persist.Registry
func (c *Control) Apply() error {
	return c.Set(c.currentColor, c.currentBrightness)
}

// Close satisfies persist.Registry
func (c *Control) Close() error {
	return nil
}
