package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keySchemaVersion = "schema_version"
	keySource        = "source"
	keyDisplay       = "display"
	keyLogging       = "logging"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// target. Keys present in the overlay replace entire sections; absent keys
// and unknown keys leave target unchanged. Fields a replaced section omits
// take their built-in defaults.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	target.fillDefaults()
	return nil
}

// unmarshalSection decodes node into a fresh zero value of the section so
// fields omitted in the overlay do not survive from target.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keySchemaVersion:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.SchemaVersion = v
	case keySource:
		var v SourceConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Source = v
	case keyDisplay:
		var v DisplayConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Display = v
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	}
	return nil
}
