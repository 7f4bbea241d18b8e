// Package source turns JSON and YAML input into the generic value tree that
// decoders consume: map[string]any, []any, string, Number, bool and nil.
package source

import (
	"bytes"
	"io"
	"sync"
)

// Driver converts an input stream into a value tree via a pluggable SPI. The
// default JSON driver is backed by go-json and may be swapped with
// SetJSONDriver.
type Driver interface {
	Decode(r io.Reader) (any, error)
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver Driver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d Driver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the go-json backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = goJSONDriver{}
	jsonDriverMu.Unlock()
}

// JSONDriverName reports the name of the active JSON driver.
func JSONDriverName() string { return getJSONDriver().Name() }

func getJSONDriver() Driver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// JSONReader decodes a single JSON value from r.
func JSONReader(r io.Reader) (any, error) { return getJSONDriver().Decode(r) }

// JSONBytes decodes a single JSON value from b.
func JSONBytes(b []byte) (any, error) { return JSONReader(bytes.NewReader(b)) }

// YAMLReader decodes the first YAML document from r.
func YAMLReader(r io.Reader) (any, error) { return yamlDriver{}.Decode(r) }

// YAMLBytes decodes the first YAML document from b.
func YAMLBytes(b []byte) (any, error) { return YAMLReader(bytes.NewReader(b)) }
