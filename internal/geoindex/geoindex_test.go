package geoindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/codec"
	"github.com/arpa-simc/odimh5/internal/odimtree"
	"github.com/arpa-simc/odimh5/internal/schema"
)

// fakeGroup is a minimal in-memory backend.Group, local to this package's
// tests (odimtree's own fakeGroup is unexported to that package).
type fakeGroup struct {
	attrs    map[string]codec.Value
	children map[string]*fakeGroup
	order    []string
}

func newFakeGroup() *fakeGroup {
	return &fakeGroup{attrs: map[string]codec.Value{}, children: map[string]*fakeGroup{}}
}

func (g *fakeGroup) GetAttribute(name string) (codec.Value, bool, error) {
	v, ok := g.attrs[name]
	return v, ok, nil
}
func (g *fakeGroup) SetAttribute(name string, v codec.Value) error { g.attrs[name] = v; return nil }
func (g *fakeGroup) RemoveAttribute(name string) error             { delete(g.attrs, name); return nil }
func (g *fakeGroup) AttributeNames() ([]string, error) {
	var names []string
	for k := range g.attrs {
		names = append(names, k)
	}
	return names, nil
}
func (g *fakeGroup) ChildNames() ([]string, error) { return append([]string(nil), g.order...), nil }
func (g *fakeGroup) HasChild(name string) (bool, error) {
	_, ok := g.children[name]
	return ok, nil
}
func (g *fakeGroup) OpenChild(name string) (backend.Group, error) { return g.children[name], nil }
func (g *fakeGroup) CreateChild(name string) (backend.Group, error) {
	child := newFakeGroup()
	g.children[name] = child
	g.order = append(g.order, name)
	return child, nil
}
func (g *fakeGroup) RemoveChild(name string) error { delete(g.children, name); return nil }
func (g *fakeGroup) RenameChild(oldName, newName string) error {
	g.children[newName] = g.children[oldName]
	delete(g.children, oldName)
	for i, n := range g.order {
		if n == oldName {
			g.order[i] = newName
		}
	}
	return nil
}
func (g *fakeGroup) Close() error                    { return nil }
func (g *fakeGroup) HasDataset(string) (bool, error) { return false, nil }
func (g *fakeGroup) OpenDataset(string) (backend.Dataset, error) {
	return nil, nil
}
func (g *fakeGroup) CreateDataset(string, backend.ElemType, int, int) (backend.Dataset, error) {
	return nil, nil
}
func (g *fakeGroup) RemoveDataset(string) error { return nil }

func newCartesianObject(t *testing.T, llLon, llLat, urLon, urLat float64) *odimtree.Object {
	t.Helper()
	root := newFakeGroup()
	obj := odimtree.NewObject(root, schema.V2_1, schema.ObjectCOMP)
	ds, err := obj.CreateDataset(schema.ProductCOMP)
	require.NoError(t, err)
	require.NoError(t, ds.SetProjdef("+proj=longlat"))
	where, err := ds.Where()
	require.NoError(t, err)
	require.NoError(t, where.SetFloat64(schema.AttrWhereLLLon, llLon))
	require.NoError(t, where.SetFloat64(schema.AttrWhereLLLat, llLat))
	require.NoError(t, where.SetFloat64(schema.AttrWhereURLon, urLon))
	require.NoError(t, where.SetFloat64(schema.AttrWhereURLat, urLat))
	return obj
}

func TestQueryReturnsOnlyIntersecting(t *testing.T) {
	t.Parallel()

	near := newCartesianObject(t, 10, 44, 12, 46)
	far := newCartesianObject(t, 100, -10, 102, -8)

	idx, err := Build([]*odimtree.Object{near, far})
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())

	hits := idx.Query(Bounds{MinLon: 9, MinLat: 43, MaxLon: 13, MaxLat: 47})
	require.Len(t, hits, 1)
	assert.Same(t, near, hits[0].Object)
}

func TestBoundsIntersects(t *testing.T) {
	t.Parallel()

	a := Bounds{MinLon: 0, MinLat: 0, MaxLon: 10, MaxLat: 10}
	b := Bounds{MinLon: 5, MinLat: 5, MaxLon: 15, MaxLat: 15}
	c := Bounds{MinLon: 20, MinLat: 20, MaxLon: 30, MaxLat: 30}

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
}
