package odimtree

import (
	"sort"

	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/codec"
)

// fakeGroup is a minimal in-memory backend.Group, used so odimtree's tree
// logic (dense renumbering, attribute groups, product dispatch) can be
// exercised without HDF5.
type fakeGroup struct {
	attrs    map[string]codec.Value
	children map[string]*fakeGroup
	order    []string // child creation order
	datasets map[string]*fakeDataset
}

func newFakeGroup() *fakeGroup {
	return &fakeGroup{
		attrs:    map[string]codec.Value{},
		children: map[string]*fakeGroup{},
		datasets: map[string]*fakeDataset{},
	}
}

func (g *fakeGroup) GetAttribute(name string) (codec.Value, bool, error) {
	v, ok := g.attrs[name]
	return v, ok, nil
}

func (g *fakeGroup) SetAttribute(name string, v codec.Value) error {
	g.attrs[name] = v
	return nil
}

func (g *fakeGroup) RemoveAttribute(name string) error {
	delete(g.attrs, name)
	return nil
}

func (g *fakeGroup) AttributeNames() ([]string, error) {
	names := make([]string, 0, len(g.attrs))
	for k := range g.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names, nil
}

func (g *fakeGroup) ChildNames() ([]string, error) {
	out := append([]string(nil), g.order...)
	return out, nil
}

func (g *fakeGroup) HasChild(name string) (bool, error) {
	_, ok := g.children[name]
	return ok, nil
}

func (g *fakeGroup) OpenChild(name string) (backend.Group, error) {
	return g.children[name], nil
}

func (g *fakeGroup) CreateChild(name string) (backend.Group, error) {
	child := newFakeGroup()
	g.children[name] = child
	g.order = append(g.order, name)
	return child, nil
}

func (g *fakeGroup) RemoveChild(name string) error {
	delete(g.children, name)
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return nil
}

func (g *fakeGroup) RenameChild(oldName, newName string) error {
	child := g.children[oldName]
	delete(g.children, oldName)
	g.children[newName] = child
	for i, n := range g.order {
		if n == oldName {
			g.order[i] = newName
			break
		}
	}
	return nil
}

func (g *fakeGroup) Close() error { return nil }

func (g *fakeGroup) HasDataset(name string) (bool, error) {
	_, ok := g.datasets[name]
	return ok, nil
}

func (g *fakeGroup) OpenDataset(name string) (backend.Dataset, error) {
	return g.datasets[name], nil
}

func (g *fakeGroup) CreateDataset(name string, elemType backend.ElemType, rows, cols int) (backend.Dataset, error) {
	ds := &fakeDataset{elemType: elemType, rows: rows, cols: cols}
	g.datasets[name] = ds
	return ds, nil
}

func (g *fakeGroup) RemoveDataset(name string) error {
	delete(g.datasets, name)
	return nil
}

type fakeDataset struct {
	elemType backend.ElemType
	rows     int
	cols     int
	buf      []byte
}

func (d *fakeDataset) ElemType() backend.ElemType     { return d.elemType }
func (d *fakeDataset) Dimensions() (int, int, error)  { return d.rows, d.cols, nil }
func (d *fakeDataset) ReadInto(buf []byte) error      { copy(buf, d.buf); return nil }
func (d *fakeDataset) WriteFrom(buf []byte) error {
	d.buf = append([]byte(nil), buf...)
	return nil
}
func (d *fakeDataset) Close() error { return nil }
