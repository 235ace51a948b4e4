package device

import (
	"log"

	"github.com/pkg/errors"
	hid "github.com/sstallion/go-hid"
)

type Config struct {
	DryRun bool
	Path   string
}

// Control wraps an open hidraw node for feature report transfers.
type Control struct {
	Config
	dev *hid.Device
}

func NewControl(conf Config) (*Control, error) {
	if len(conf.Path) == 0 {
		return nil, errors.New("device: path cannot be empty")
	}
	if conf.DryRun {
		return &Control{Config: conf}, nil
	}
	dev, err := hid.OpenPath(conf.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "device: cannot open %s", conf.Path)
	}
	return &Control{
		Config: conf,
		dev:    dev,
	}, nil
}

// SendFeature issues a set-feature control transfer. The first byte of the
// report is the report ID. It returns the number of bytes the device
// accepted, including the report ID byte.
func (d *Control) SendFeature(report []byte) (int, error) {
	if d.Config.DryRun {
		log.Printf("[dry run] device: %s send feature report: %+v\n", d.Config.Path, report)
		return len(report), nil
	}
	log.Printf("device: %s send feature report: %+v\n", d.Config.Path, report)
	n, err := d.dev.SendFeatureReport(report)
	if err != nil {
		return 0, errors.Wrapf(err, "device: feature report to %s failed", d.Config.Path)
	}
	return n, nil
}

func (d *Control) Close() error {
	if d.dev == nil {
		return nil
	}
	return d.dev.Close()
}
