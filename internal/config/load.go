package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// scenarioExtension is the required extension for scenario files.
const scenarioExtension = ".yaml"

var errNotYAMLFile = errors.New("scenario files must use the .yaml extension")

// Load reads, parses and validates the scenario file at the specified path.
// The file must exist and carry a .yaml extension. File-level failures
// (missing file, wrong extension, YAML syntax errors) surface as *ParseError;
// everything past the raw mapping goes through FromMap.
func Load(path string) (*SystemConfig, error) {
	if filepath.Ext(path) != scenarioExtension {
		return nil, &ParseError{Path: path, Err: errNotYAMLFile}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("failed to read scenario file: %w", err)}
	}

	var data any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if !isSystemShallowlyValid(data) {
		return nil, &StructuralError{Field: "system configuration", Value: data}
	}

	return FromMap(data.(map[string]any))
}
