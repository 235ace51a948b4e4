package keyboard

import "github.com/pkg/errors"

// Color defines the backlight colors understood by the firmware
type Color byte

// Backlight colors
const (
	Red Color = iota + 1
	Green
	Yellow
	Blue
	Orange
	Purple
	White
)

// colorOff is what the firmware considers "off" at zero brightness. There is
// no true off color; this sentinel replaces the color byte instead.
const colorOff Color = 0x05

var colorNames = [...]string{"red", "green", "yellow", "blue", "orange", "purple", "white"}

func (c Color) String() string {
	if !c.valid() {
		return "unknown"
	}
	return colorNames[c-1]
}

func (c Color) valid() bool {
	return c >= Red && c <= White
}

// ColorFromName resolves a color by its name
func ColorFromName(name string) (Color, error) {
	for i, n := range colorNames {
		if n == name {
			return Color(i + 1), nil
		}
	}
	return 0, errors.Errorf("unknown color '%s'", name)
}

// ColorNames returns the color names in their defined order
func ColorNames() []string {
	return colorNames[:]
}
