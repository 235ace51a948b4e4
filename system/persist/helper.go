package persist

import (
	"log"
	"os"
	"path/filepath"
)

const (
	appDirName   = "kb-color"
	homeFallback = "/root"

	configDirPerm  = 0755
	configFilePerm = 0644
)

// ConfigDir resolves the directory holding persisted state:
// ${XDG_CONFIG_HOME}/kb-color if set, otherwise ${HOME:-/root}/.config/kb-color.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	home := os.Getenv("HOME")
	if home == "" {
		home = homeFallback
	}
	return filepath.Join(home, ".config", appDirName)
}

// FileConfigHelper contains a list of configurations to be loaded, saved,
// and applied. Each config is stored as a small binary file named after the
// config inside the kb-color config directory.
type FileConfigHelper struct {
	configs map[string]Registry
	dir     string
}

var _ ConfigRegistry = &FileConfigHelper{}

// NewFileConfigHelper returns a helper to persist config to the filesystem
func NewFileConfigHelper() (ConfigRegistry, error) {
	return &FileConfigHelper{
		configs: make(map[string]Registry),
		dir:     ConfigDir(),
	}, nil
}

// Register will add the config to the list
func (h *FileConfigHelper) Register(config Registry) {
	h.configs[config.Name()] = config
}

// Load will retrieve and populate configs from their files. A config whose
// file does not exist yet keeps its defaults.
func (h *FileConfigHelper) Load() error {
	for _, config := range h.configs {
		log.Printf("persist: loading \"%s\" from %s\n", config.Name(), h.dir)
		v, err := os.ReadFile(filepath.Join(h.dir, config.Name()))
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("persist: error loading \"%s\": %s\n", config.Name(), err)
			}
			continue
		}
		config.Load(v)
	}

	return nil
}

// Save will persist all the configs as binary files
func (h *FileConfigHelper) Save() error {
	if err := os.MkdirAll(h.dir, configDirPerm); err != nil {
		log.Printf("persist: error creating %s: %s\n", h.dir, err)
		return err
	}

	for _, config := range h.configs {
		log.Printf("persist: saving \"%s\" to %s\n", config.Name(), h.dir)
		err := os.WriteFile(filepath.Join(h.dir, config.Name()), config.Value(), configFilePerm)
		if err != nil {
			log.Printf("persist: error saving \"%s\": %s\n", config.Name(), err)
			return err
		}
	}

	return nil
}

// Apply will apply each config accordingly. This is usually called after Load()
func (h *FileConfigHelper) Apply() error {
	for _, config := range h.configs {
		log.Printf("persist: applying \"%s\" config\n", config.Name())
		err := config.Apply()
		if err != nil {
			log.Printf("persist: error applying \"%s\": %s\n", config.Name(), err)
			return err
		}
	}

	return nil
}

// Close will release resources of each config
func (h *FileConfigHelper) Close() {
	for _, config := range h.configs {
		log.Printf("persist: closing \"%s\"\n", config.Name())
		err := config.Close()
		if err != nil {
			log.Printf("persist: error closing \"%s\": %s\n", config.Name(), err)
		}
	}
}
