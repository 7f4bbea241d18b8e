package source

import (
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

type goJSONDriver struct{}

func (goJSONDriver) Name() string { return "go-json" }

func (goJSONDriver) Decode(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("source: empty JSON input")
		}
		return nil, fmt.Errorf("source: json: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("source: json: trailing data after top-level value")
	}
	out := normalize(v)
	if err := checkNumbers(out); err != nil {
		return nil, fmt.Errorf("source: json: %w", err)
	}
	return out, nil
}
