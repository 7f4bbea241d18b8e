package source

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlDriver reads only the first document of a multi-document stream. An
// empty stream decodes to nil.
type yamlDriver struct{}

func (yamlDriver) Name() string { return "yaml.v3" }

func (yamlDriver) Decode(r io.Reader) (any, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("source: yaml: %w", err)
	}
	return normalize(v), nil
}
