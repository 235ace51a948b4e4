package persist

import "log"

type dryFileConfigHelper struct {
	helper ConfigRegistry
}

var _ ConfigRegistry = &dryFileConfigHelper{}

// NewDryFileConfigHelper returns a helper that loads and applies configs but
// never writes them back
func NewDryFileConfigHelper() (ConfigRegistry, error) {
	helper, _ := NewFileConfigHelper()
	log.Println("[dry run] persist: initializing file helper without save IOs")
	return &dryFileConfigHelper{
		helper: helper,
	}, nil
}

// Register will add the config to the list
func (d *dryFileConfigHelper) Register(config Registry) {
	d.helper.Register(config)
}

// Load will retrieve and populate configs from their files
func (d *dryFileConfigHelper) Load() error {
	return d.helper.Load()
}

// Save will do nothing
func (d *dryFileConfigHelper) Save() error {
	return nil
}

// Apply will apply each config accordingly. This is usually called after Load()
func (d *dryFileConfigHelper) Apply() error {
	return d.helper.Apply()
}

// Close will instruct each config to clean up
func (d *dryFileConfigHelper) Close() {
	d.helper.Close()
}
