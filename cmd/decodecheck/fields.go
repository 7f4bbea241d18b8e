package main

import (
	"fmt"
	"strings"

	"github.com/reoring/decoded"
	"github.com/reoring/decoded/decode"
)

// fieldSpec is one --field flag: name:type, with a trailing ? for optional.
type fieldSpec struct {
	Name     string
	Type     string
	Optional bool
}

var fieldDecoders = map[string]decode.Decoder[any]{
	"string": widen(decode.String),
	"int":    widen(decode.Int),
	"float":  widen(decode.Float),
	"bool":   widen(decode.Bool),
	"any":    decode.Any,
}

func widen[T any](dec decode.Decoder[T]) decode.Decoder[any] {
	return func(v any) decoded.Decoded[any] {
		return decoded.Map(dec(v), func(t T) any { return t })
	}
}

func parseFieldSpec(s string) (fieldSpec, error) {
	name, typ, ok := strings.Cut(s, ":")
	if !ok || name == "" {
		return fieldSpec{}, fmt.Errorf("field %q: want name:type", s)
	}
	fs := fieldSpec{Name: name}
	if t, found := strings.CutSuffix(typ, "?"); found {
		fs.Optional = true
		typ = t
	}
	if _, known := fieldDecoders[typ]; !known {
		return fieldSpec{}, fmt.Errorf("field %q: unknown type %q", s, typ)
	}
	fs.Type = typ
	return fs, nil
}

func parseFieldSpecs(raw []string) ([]fieldSpec, error) {
	out := make([]fieldSpec, 0, len(raw))
	for _, r := range raw {
		fs, err := parseFieldSpec(r)
		if err != nil {
			return nil, err
		}
		out = append(out, fs)
	}
	return out, nil
}

// checkFields decodes every field of root, in flag order, and accumulates
// every failure. Absent optional fields are left out of the result.
func checkFields(root any, specs []fieldSpec) decoded.Decoded[map[string]any] {
	results := make([]decoded.Decoded[any], len(specs))
	for i, fs := range specs {
		dec := fieldDecoders[fs.Type]
		if !fs.Optional {
			results[i] = decode.Key(root, fs.Name, dec)
			continue
		}
		results[i] = decoded.Map(decode.OptionalKey(root, fs.Name, dec), func(p *any) any {
			if p == nil {
				return absent{}
			}
			return *p
		})
	}
	return decoded.Map(decoded.Sequence(results), func(vals []any) map[string]any {
		out := make(map[string]any, len(vals))
		for i, v := range vals {
			if _, skip := v.(absent); skip {
				continue
			}
			out[specs[i].Name] = v
		}
		return out
	})
}

type absent struct{}
