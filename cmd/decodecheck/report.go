package main

import (
	j "github.com/goccy/go-json"

	"github.com/reoring/decoded"
)

type errorNode struct {
	Type     string      `json:"type"`
	Expected string      `json:"expected,omitempty"`
	Actual   string      `json:"actual,omitempty"`
	Key      string      `json:"key,omitempty"`
	Message  string      `json:"message,omitempty"`
	Errors   []errorNode `json:"errors,omitempty"`
}

type report struct {
	File   string         `json:"file"`
	OK     bool           `json:"ok"`
	Value  map[string]any `json:"value,omitempty"`
	Error  *errorNode     `json:"error,omitempty"`
	Leaves []string       `json:"leaves,omitempty"`
}

func toErrorNode(e decoded.DecodeError) errorNode {
	switch x := e.(type) {
	case decoded.TypeMismatch:
		return errorNode{Type: "TypeMismatch", Expected: x.Expected, Actual: x.Actual}
	case decoded.MissingKey:
		return errorNode{Type: "MissingKey", Key: x.Key}
	case decoded.Custom:
		return errorNode{Type: "Custom", Message: x.Message}
	case *decoded.Multiple:
		n := errorNode{Type: "Multiple"}
		for _, c := range x.Errors() {
			n.Errors = append(n.Errors, toErrorNode(c))
		}
		return n
	}
	return errorNode{Type: "Unknown"}
}

func buildReport(file string, d decoded.Decoded[map[string]any]) report {
	r := report{File: file}
	if e, failed := d.ErrorValue(); failed {
		node := toErrorNode(e)
		r.Error = &node
		for _, l := range decoded.Leaves(e) {
			r.Leaves = append(r.Leaves, l.String())
		}
		return r
	}
	r.OK = true
	r.Value, _ = d.Value()
	return r
}

func (r report) JSON() ([]byte, error) { return j.MarshalIndent(r, "", "  ") }
