package champion

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed pool.yaml
var defaultPool []byte

type dataset struct {
	Champions []Champion `yaml:"champions"`
}

// ParseYAML decodes a champion table of the form
//
//	champions:
//	  - {name: Aatrox, roles: [Top, Fighter]}
func ParseYAML(r io.Reader) ([]Champion, error) {
	var ds dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	return ds.Champions, nil
}

// DefaultPool returns the champion table compiled into the binary.
func DefaultPool() []byte { return defaultPool }

func Default() (*Registry, error) {
	champs, err := ParseYAML(bytes.NewReader(defaultPool))
	if err != nil {
		return nil, err
	}
	return NewRegistry(champs)
}
