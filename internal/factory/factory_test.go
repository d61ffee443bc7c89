package factory

import (
	"os"
	"sync"
	"testing"

	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/codec"
	"github.com/arpa-simc/odimh5/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRoot lets factory's checkConventions logic be exercised without a
// real HDF5 file, same rationale as internal/odimtree's fakeGroup.
type fakeRoot struct {
	attrs    map[string]codec.Value
	children map[string]*fakeRoot
	order    []string
}

func newFakeRoot() *fakeRoot {
	return &fakeRoot{attrs: map[string]codec.Value{}, children: map[string]*fakeRoot{}}
}

func (g *fakeRoot) GetAttribute(name string) (codec.Value, bool, error) {
	v, ok := g.attrs[name]
	return v, ok, nil
}
func (g *fakeRoot) SetAttribute(name string, v codec.Value) error { g.attrs[name] = v; return nil }
func (g *fakeRoot) RemoveAttribute(name string) error             { delete(g.attrs, name); return nil }
func (g *fakeRoot) AttributeNames() ([]string, error) {
	var names []string
	for k := range g.attrs {
		names = append(names, k)
	}
	return names, nil
}
func (g *fakeRoot) ChildNames() ([]string, error) { return append([]string(nil), g.order...), nil }
func (g *fakeRoot) HasChild(name string) (bool, error) {
	_, ok := g.children[name]
	return ok, nil
}
func (g *fakeRoot) OpenChild(name string) (backend.Group, error) { return g.children[name], nil }
func (g *fakeRoot) CreateChild(name string) (backend.Group, error) {
	child := newFakeRoot()
	g.children[name] = child
	g.order = append(g.order, name)
	return child, nil
}
func (g *fakeRoot) RemoveChild(name string) error { delete(g.children, name); return nil }
func (g *fakeRoot) RenameChild(oldName, newName string) error {
	g.children[newName] = g.children[oldName]
	delete(g.children, oldName)
	for i, n := range g.order {
		if n == oldName {
			g.order[i] = newName
		}
	}
	return nil
}
func (g *fakeRoot) Close() error                      { return nil }
func (g *fakeRoot) HasDataset(string) (bool, error)   { return false, nil }
func (g *fakeRoot) OpenDataset(string) (backend.Dataset, error) {
	return nil, nil
}
func (g *fakeRoot) CreateDataset(string, backend.ElemType, int, int) (backend.Dataset, error) {
	return nil, nil
}
func (g *fakeRoot) RemoveDataset(string) error { return nil }

func TestCheckConventionsRejectsUnknownValueByDefault(t *testing.T) {
	root := newFakeRoot()
	root.attrs[schema.AttributeConventions] = codec.String("ODIM_H5/V9_9")

	_, err := checkConventions(root)
	require.Error(t, err)
	var formatErr *codec.FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestCheckConventionsAcceptsKnownVersions(t *testing.T) {
	root := newFakeRoot()
	root.attrs[schema.AttributeConventions] = codec.String(schema.V2_0.Conventions())

	v, err := checkConventions(root)
	require.NoError(t, err)
	assert.Equal(t, schema.V2_0, v)

	root.attrs[schema.AttributeConventions] = codec.String(schema.V2_1.Conventions())
	v, err = checkConventions(root)
	require.NoError(t, err)
	assert.Equal(t, schema.V2_1, v)
}

func TestCheckConventionsSkipOverride(t *testing.T) {
	t.Setenv("RADARLIB_SKIP_CHECK_VERSION", "yes")
	skipVersionCheckOnce = sync.Once{}

	root := newFakeRoot()
	root.attrs[schema.AttributeConventions] = codec.String("garbage")

	v, err := checkConventions(root)
	require.NoError(t, err)
	assert.Equal(t, schema.V2_1, v)

	skipVersionCheckOnce = sync.Once{}
	os.Unsetenv("RADARLIB_SKIP_CHECK_VERSION")
}
