package keyboard

// Defines the vendorID/productID for the Aorus 15P keyboard
const (
	VendorID  = 0x1044
	ProductID = 0x7a3b
)

// The keyboard registers several HID interfaces; only the one on input3
// accepts RGB control reports.
const rgbControlInterface = "input3"

// Brightness is a percentage
const (
	BrightnessMin = 0
	BrightnessMax = 100
)
