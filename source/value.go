package source

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	j "github.com/goccy/go-json"
)

// Number is a numeric literal kept as text so decoders choose the precision.
type Number string

// String returns the literal text.
func (n Number) String() string { return string(n) }

var (
	jsonNumberRe  = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)
	jsonIntegerRe = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
)

// Valid reports whether n follows the JSON number grammar.
func (n Number) Valid() bool { return jsonNumberRe.MatchString(string(n)) }

// Integral reports whether n is a JSON integer literal: no fraction, no
// exponent, no leading zeros.
func (n Number) Integral() bool { return jsonIntegerRe.MatchString(string(n)) }

// Kind classifies a node of the value tree.
type Kind int

const (
	KindNull    Kind = iota // null
	KindBool                // true or false
	KindNumber              // Number
	KindString              // string
	KindArray               // []any
	KindObject              // map[string]any
	KindUnknown             // anything not produced by a driver
)

var kindNames = [...]string{
	KindNull:    "Null",
	KindBool:    "Bool",
	KindNumber:  "Number",
	KindString:  "String",
	KindArray:   "Array",
	KindObject:  "Object",
	KindUnknown: "Unknown",
}

// String returns the kind name used in TypeMismatch.Actual.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// KindOf reports the kind of a value tree node.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case Number:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindUnknown
	}
}

// Normalize converts values produced by foreign decoders (encoding/json,
// go-json, yaml.v3, hand-built maps) into the tree shape decoders expect.
func Normalize(v any) any { return normalize(v) }

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = normalize(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalize(t[i])
		}
		return arr
	case j.Number:
		return Number(t.String())
	case float64:
		return floatNumber(strconv.FormatFloat(t, 'g', -1, 64))
	case float32:
		return floatNumber(strconv.FormatFloat(float64(t), 'g', -1, 32))
	case int:
		return Number(strconv.Itoa(t))
	case int64:
		return Number(strconv.FormatInt(t, 10))
	case uint64:
		return Number(strconv.FormatUint(t, 10))
	case time.Time:
		return t.Format(time.RFC3339Nano)
	default:
		return v
	}
}

// floatNumber keeps a fraction or exponent in the text so a float read from
// YAML (1.0) does not turn into an integer literal (1).
func floatNumber(s string) Number {
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return Number(s)
}

// checkNumbers rejects number literals outside the JSON grammar, such as 010.
func checkNumbers(v any) error {
	switch t := v.(type) {
	case map[string]any:
		for _, vv := range t {
			if err := checkNumbers(vv); err != nil {
				return err
			}
		}
	case []any:
		for _, vv := range t {
			if err := checkNumbers(vv); err != nil {
				return err
			}
		}
	case Number:
		if !t.Valid() {
			return fmt.Errorf("invalid number literal %q", string(t))
		}
	}
	return nil
}

// MarshalJSON emits the literal as a JSON number when it is one, and as a
// string otherwise (YAML allows .inf and .nan).
func (n Number) MarshalJSON() ([]byte, error) {
	if j.Valid([]byte(n)) {
		return []byte(n), nil
	}
	return j.Marshal(string(n))
}
