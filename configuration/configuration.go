package configuration

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/bartossh/KeypairTransform/logging"
)

// Configuration is the main configuration of the application that corresponds to the *.yaml file
// that holds the configuration.
type Configuration struct {
	Logging     logging.Config `yaml:"logging"`
	DisplayLogo bool           `yaml:"display_logo"`
}

// Read reads the configuration from the file and returns the Configuration with set fields according to the yaml setup.
func Read(path string) (Configuration, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, err
	}

	var main Configuration
	err = yaml.UnmarshalStrict(buf, &main)
	if err != nil {
		return Configuration{}, fmt.Errorf("in file %q: %w", path, err)
	}

	if _, err := logging.ParseLevel(main.Logging.Level); err != nil {
		return Configuration{}, fmt.Errorf("in file %q: %w", path, err)
	}

	return main, nil
}
