package keyboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const rgbUevent = `DRIVER=hid-generic
HID_ID=0003:00001044:00007A3B
HID_NAME=Aorus Keyboard
HID_PHYS=usb-0000:00:14.0-5/input3
`

const otherIfaceUevent = `DRIVER=hid-generic
HID_ID=0003:00001044:00007A3B
HID_NAME=Aorus Keyboard
HID_PHYS=usb-0000:00:14.0-5/input0
`

func fakeSysfs(t *testing.T, uevents map[string]string) string {
	t.Helper()

	sysfsDir := t.TempDir()
	for node, content := range uevents {
		deviceDir := filepath.Join(sysfsDir, node, "device")
		require.NoError(t, os.MkdirAll(deviceDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(deviceDir, "uevent"), []byte(content), 0644))
	}
	return sysfsDir
}

func TestControlPersist(t *testing.T) {

	ctrl := &Control{
		currentColor:      Blue,
		currentBrightness: 50,
	}
	require.NotEmpty(t, ctrl.Name())

	v := ctrl.Value()
	require.Equal(t, []byte{4, 50}, v)

	loaded := Control{}

	require.NoError(t, loaded.Load(v))
	require.Equal(t, Blue, loaded.currentColor)
	require.Equal(t, uint8(50), loaded.currentBrightness)
}

func TestControlDefaults(t *testing.T) {
	ctrl, err := NewControl(Config{})
	require.NoError(t, err)
	require.Equal(t, White, ctrl.Color())
	require.Equal(t, uint8(100), ctrl.Brightness())
}

func TestControlLoadIgnoresBadRecords(t *testing.T) {
	// short records, color ids outside 1-7, brightness above 100
	for _, v := range [][]byte{
		nil,
		{4},
		{0, 50},
		{8, 50},
		{4, 101},
		{0xff, 0xff},
	} {
		ctrl, err := NewControl(Config{})
		require.NoError(t, err)
		require.NoError(t, ctrl.Load(v))
		require.Equal(t, White, ctrl.Color())
		require.Equal(t, uint8(100), ctrl.Brightness())
	}
}

func TestControlSetDryRun(t *testing.T) {
	sysfsDir := fakeSysfs(t, map[string]string{
		"hidraw0": otherIfaceUevent,
		"hidraw1": rgbUevent,
	})

	ctrl, err := NewControl(Config{
		DryRun:   true,
		SysfsDir: sysfsDir,
	})
	require.NoError(t, err)

	require.NoError(t, ctrl.Set(Red, 20))
	require.Equal(t, Red, ctrl.Color())
	require.Equal(t, uint8(20), ctrl.Brightness())
}

func TestControlSetNoMatchingInterface(t *testing.T) {
	// identity matches but the RGB interface marker is absent
	sysfsDir := fakeSysfs(t, map[string]string{
		"hidraw0": otherIfaceUevent,
	})

	ctrl, err := NewControl(Config{
		DryRun:   true,
		SysfsDir: sysfsDir,
	})
	require.NoError(t, err)

	require.ErrorIs(t, ctrl.Set(Red, 20), ErrNoDevice)

	// state must not move on failure
	require.Equal(t, White, ctrl.Color())
	require.Equal(t, uint8(100), ctrl.Brightness())
}

func TestControlSetValidation(t *testing.T) {
	ctrl, err := NewControl(Config{
		DryRun:   true,
		SysfsDir: t.TempDir(),
	})
	require.NoError(t, err)

	require.Error(t, ctrl.Set(Red, 101))
	require.Error(t, ctrl.Set(Color(0), 50))
	require.Error(t, ctrl.Set(Color(8), 50))
}
