package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	widgetryerrors "github.com/alexisbeaulieu97/widgetry/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load returns the default configuration when path is empty, and ParseConfig(path) otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return &cfg, nil
	}
	return ParseConfig(path)
}

// ParseConfig loads a configuration file from disk on top of the defaults, validates it, and
// returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, widgetryerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes data as if it had been read from path.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()
	if err := DecodeStrict(data, &cfg); err != nil {
		return nil, widgetryerrors.NewParseError(path, ExtractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DecodeStrict unmarshals YAML into out and rejects unknown keys. An empty document leaves out
// untouched.
func DecodeStrict(data []byte, out any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// ExtractLine pulls the first line number out of a yaml.v3 error message.
func ExtractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
