// Package yaml loads twir configuration from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/twir"
	"gopkg.in/yaml.v3"
)

// LoadLayout reads a layout file. Keys missing from the file keep their
// default values; unknown keys are rejected.
func LoadLayout(path string) (twir.Layout, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return twir.Layout{}, twir.Errorf(twir.ENOTFOUND, "layout file %q not found", path)
	}
	if err != nil {
		return twir.Layout{}, err
	}
	return ParseLayout(data)
}

// ParseLayout decodes a layout document on top of twir.DefaultLayout.
func ParseLayout(data []byte) (twir.Layout, error) {
	layout := twir.DefaultLayout()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&layout); err != nil && !errors.Is(err, io.EOF) {
		return twir.Layout{}, twir.Errorf(twir.EINVALID, "invalid layout: %v", err)
	}

	if err := layout.Validate(); err != nil {
		return twir.Layout{}, err
	}
	return layout, nil
}
