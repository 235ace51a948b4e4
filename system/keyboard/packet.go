package keyboard

// PacketSize is the length of the RGB control feature report.
const PacketSize = 9

// Protocol constants, captured from the vendor tool
const (
	packetReportID = 0x00
	packetCmd      = 0x08
	packetByte2    = 0x00
	packetByte3    = 0x01
	packetByte4    = 0x01
	packetByte7    = 0x01

	checksumInit  = 0xff
	checksumBytes = 8

	// the firmware takes brightness in 0-50, the UI deals in percent
	brightnessDivisor = 2
)

// NewPacket encodes a color/brightness pair into the 9-byte feature report.
// At zero brightness the color byte is forced to the firmware's off
// sentinel regardless of the requested color.
func NewPacket(color Color, brightness uint8) [PacketSize]byte {
	p := [PacketSize]byte{
		packetReportID,
		packetCmd,
		packetByte2,
		packetByte3,
		packetByte4,
		brightness / brightnessDivisor,
		byte(color),
		packetByte7,
	}
	if brightness == BrightnessMin {
		p[6] = byte(colorOff)
	}
	p[8] = Checksum(p[:checksumBytes])
	return p
}

// Checksum returns the byte that makes the full packet sum to 0xFF mod 256.
func Checksum(b []byte) byte {
	var sum byte
	for _, v := range b {
		sum += v
	}
	return checksumInit - sum
}
