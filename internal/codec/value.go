package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which alternative of a Value is populated.
type Kind int

const (
	KindInt64 Kind = iota
	KindFloat64
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is the tagged variant every what/where/how attribute is stored as
// at the backend boundary: HDF5 attributes are untyped at the Go level, so
// every read or write passes through exactly one of these three
// alternatives (spec §4.1, "scalar attribute representation").
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

func Int64(v int64) Value     { return Value{kind: KindInt64, i: v} }
func Float64(v float64) Value { return Value{kind: KindFloat64, f: v} }
func String(v string) Value   { return Value{kind: KindString, s: v} }

func (v Value) Kind() Kind { return v.kind }

// Int64 returns the value as an int64, converting from float64 by
// truncation, or parsing a string value as a base-10 integer. The second
// result is false if the kind is a string that does not parse as an
// integer (a non-compliant file stored an int/float-typed attribute as
// non-numeric text); callers construct the caller-facing *FormatError
// themselves, since only they know the attribute's name and group.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindInt64:
		return v.i, true
	case KindFloat64:
		return int64(v.f), true
	default:
		n, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
}

// Float64 is Int64's float64 counterpart.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindFloat64:
		return v.f, true
	case KindInt64:
		return float64(v.i), true
	default:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return ""
	}
}

// Equal reports whether two values carry the same kind and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt64:
		return v.i == other.i
	case KindFloat64:
		return v.f == other.f
	default:
		return v.s == other.s
	}
}

// GoString supports %#v debugging output without exposing the unexported
// fields directly.
func (v Value) GoString() string {
	return fmt.Sprintf("codec.Value{%s: %v}", v.kind, v.String())
}
