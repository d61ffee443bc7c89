package codec

import (
	"strconv"
	"strings"

	"github.com/arpa-simc/odimh5/internal/schema"
)

// AttributeStore is the minimal surface an attribute group needs from
// whatever holds the actual attributes. internal/backend's HDF5 group
// implementation satisfies this directly; tests can satisfy it with a
// plain map. Defined here, at the point of use, rather than in
// internal/backend, so that this package does not need to depend on the
// backend (component C2 sits below C4 in the build order).
type AttributeStore interface {
	GetAttribute(name string) (Value, bool, error)
	SetAttribute(name string, v Value) error
	RemoveAttribute(name string) error
	AttributeNames() ([]string, error)
}

// Group is a typed view over one what/where/how attribute group. It
// implements the "mandatory get fails, optional get defaults" protocol
// used throughout internal/odimtree.
type Group struct {
	name  string // "what", "where" or "how", for error messages
	store AttributeStore
}

func NewGroup(name string, store AttributeStore) *Group {
	return &Group{name: name, store: store}
}

func (g *Group) Exists(attr string) (bool, error) {
	_, ok, err := g.store.GetAttribute(attr)
	return ok, err
}

func (g *Group) Names() ([]string, error) { return g.store.AttributeNames() }

// GetValue returns the raw Value behind attr, for callers that copy
// attributes across groups generically (cmd/odimh5's splitter) rather
// than decoding a specific known attribute.
func (g *Group) GetValue(attr string) (Value, bool, error) { return g.store.GetAttribute(attr) }

// SetValue writes a raw Value under attr, the write-side counterpart of
// GetValue.
func (g *Group) SetValue(attr string, v Value) error { return g.store.SetAttribute(attr, v) }

// GetInt64 returns a mandatory integer attribute, raising *FormatError if
// the stored value cannot be read as an integer (e.g. a non-compliant
// file wrote it as non-numeric text).
func (g *Group) GetInt64(attr string) (int64, error) {
	v, ok, err := g.store.GetAttribute(attr)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &MissingAttributeError{Group: g.name, Name: attr}
	}
	n, valid := v.Int64()
	if !valid {
		return 0, &FormatError{Group: g.name, Name: attr, Value: v.String(), Want: "int64"}
	}
	return n, nil
}

// GetInt64Default returns attr, or def if the attribute is absent.
func (g *Group) GetInt64Default(attr string, def int64) (int64, error) {
	v, ok, err := g.store.GetAttribute(attr)
	if err != nil || !ok {
		return def, err
	}
	n, valid := v.Int64()
	if !valid {
		return 0, &FormatError{Group: g.name, Name: attr, Value: v.String(), Want: "int64"}
	}
	return n, nil
}

func (g *Group) GetFloat64(attr string) (float64, error) {
	v, ok, err := g.store.GetAttribute(attr)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &MissingAttributeError{Group: g.name, Name: attr}
	}
	f, valid := v.Float64()
	if !valid {
		return 0, &FormatError{Group: g.name, Name: attr, Value: v.String(), Want: "float64"}
	}
	return f, nil
}

func (g *Group) GetFloat64Default(attr string, def float64) (float64, error) {
	v, ok, err := g.store.GetAttribute(attr)
	if err != nil || !ok {
		return def, err
	}
	f, valid := v.Float64()
	if !valid {
		return 0, &FormatError{Group: g.name, Name: attr, Value: v.String(), Want: "float64"}
	}
	return f, nil
}

func (g *Group) GetString(attr string) (string, error) {
	v, ok, err := g.store.GetAttribute(attr)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &MissingAttributeError{Group: g.name, Name: attr}
	}
	return v.String(), nil
}

func (g *Group) GetStringDefault(attr, def string) (string, error) {
	v, ok, err := g.store.GetAttribute(attr)
	if err != nil || !ok {
		return def, err
	}
	return v.String(), nil
}

// GetBool decodes the TrueString/FalseString encoding used by every
// boolean attribute in the standard (there is no native HDF5 boolean
// attribute type).
func (g *Group) GetBool(attr string) (bool, error) {
	s, err := g.GetString(attr)
	if err != nil {
		return false, err
	}
	return decodeBool(g.name, attr, s)
}

func (g *Group) GetBoolDefault(attr string, def bool) (bool, error) {
	s, ok, err := g.store.GetAttribute(attr)
	if err != nil || !ok {
		return def, err
	}
	return decodeBool(g.name, attr, s.String())
}

func decodeBool(group, attr, s string) (bool, error) {
	switch s {
	case schema.TrueString:
		return true, nil
	case schema.FalseString:
		return false, nil
	default:
		return false, &FormatError{Group: group, Name: attr, Value: s, Want: "bool"}
	}
}

func (g *Group) SetInt64(attr string, v int64) error { return g.store.SetAttribute(attr, Int64(v)) }
func (g *Group) SetFloat64(attr string, v float64) error {
	return g.store.SetAttribute(attr, Float64(v))
}
func (g *Group) SetString(attr, v string) error { return g.store.SetAttribute(attr, String(v)) }

func (g *Group) SetBool(attr string, v bool) error {
	if v {
		return g.SetString(attr, schema.TrueString)
	}
	return g.SetString(attr, schema.FalseString)
}

func (g *Group) Remove(attr string) error { return g.store.RemoveAttribute(attr) }

// GetFloat64Sequence decodes a comma-separated list attribute such as
// "how/elangles" into a slice of float64.
func (g *Group) GetFloat64Sequence(attr string) ([]float64, error) {
	s, err := g.GetString(attr)
	if err != nil {
		return nil, err
	}
	return parseFloat64Sequence(g.name, attr, s)
}

func (g *Group) SetFloat64Sequence(attr string, values []float64) error {
	return g.SetString(attr, formatFloat64Sequence(values))
}

// GetFloat64SequenceDefault returns attr's decoded sequence, or def if the
// attribute is absent.
func (g *Group) GetFloat64SequenceDefault(attr string, def []float64) ([]float64, error) {
	v, ok, err := g.store.GetAttribute(attr)
	if err != nil || !ok {
		return def, err
	}
	return parseFloat64Sequence(g.name, attr, v.String())
}

func parseFloat64Sequence(group, attr, s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, &FormatError{Group: group, Name: attr, Value: s, Want: "[]float64", Err: err}
		}
		out[i] = f
	}
	return out, nil
}

func formatFloat64Sequence(values []float64) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(out, ",")
}
