package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is a minimal in-memory AttributeStore used to exercise Group
// without a backend.
type memStore map[string]Value

func (m memStore) GetAttribute(name string) (Value, bool, error) {
	v, ok := m[name]
	return v, ok, nil
}

func (m memStore) SetAttribute(name string, v Value) error {
	m[name] = v
	return nil
}

func (m memStore) RemoveAttribute(name string) error {
	delete(m, name)
	return nil
}

func (m memStore) AttributeNames() ([]string, error) {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	return names, nil
}

func TestGroupMandatoryGetMissing(t *testing.T) {
	t.Parallel()

	g := NewGroup("what", memStore{})
	_, err := g.GetInt64("nbins")
	require.Error(t, err)
	var missing *MissingAttributeError
	assert.ErrorAs(t, err, &missing)
}

func TestGroupOptionalGetDefaults(t *testing.T) {
	t.Parallel()

	g := NewGroup("how", memStore{})
	v, err := g.GetFloat64Default("beamwidth", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestGroupSetGetRoundTrip(t *testing.T) {
	t.Parallel()

	g := NewGroup("what", memStore{})
	require.NoError(t, g.SetString("quantity", "DBZH"))
	s, err := g.GetString("quantity")
	require.NoError(t, err)
	assert.Equal(t, "DBZH", s)

	exists, err := g.Exists("quantity")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, g.Remove("quantity"))
	exists, err = g.Exists("quantity")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGroupBoolRoundTrip(t *testing.T) {
	t.Parallel()

	g := NewGroup("how", memStore{})
	require.NoError(t, g.SetBool("simulated", true))
	v, err := g.GetBool("simulated")
	require.NoError(t, err)
	assert.True(t, v)

	d, err := g.GetBoolDefault("malfunc", false)
	require.NoError(t, err)
	assert.False(t, d)
}

func TestGroupGetInt64NonNumericTextFails(t *testing.T) {
	t.Parallel()

	g := NewGroup("where", memStore{"nbins": String("not-a-number")})
	_, err := g.GetInt64("nbins")
	require.Error(t, err)
	var format *FormatError
	assert.ErrorAs(t, err, &format)
}

func TestGroupFloat64SequenceRoundTrip(t *testing.T) {
	t.Parallel()

	g := NewGroup("how", memStore{})
	require.NoError(t, g.SetFloat64Sequence("elangles", []float64{0.5, 1.5, 2.5}))
	seq, err := g.GetFloat64Sequence("elangles")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5, 2.5}, seq)
}
