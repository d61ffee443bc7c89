package odim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/codec"
	"github.com/arpa-simc/odimh5/internal/odimtree"
)

// fakeGroup/fakeDataset are a minimal in-memory backend.Group/Dataset pair,
// used so this package's tree- and matrix-level behavior can be exercised
// without a real HDF5 file. Open/Create themselves go through
// internal/factory straight to libhdf5 and no test in this module
// exercises them.
type fakeGroup struct {
	attrs    map[string]codec.Value
	children map[string]*fakeGroup
	order    []string
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
func (g *fakeGroup) Close() error { return nil }

func (g *fakeGroup) HasDataset(name string) (bool, error) {
	_, ok := g.datasets[name]
	return ok, nil
}
func (g *fakeGroup) OpenDataset(name string) (backend.Dataset, error) { return g.datasets[name], nil }
func (g *fakeGroup) CreateDataset(name string, elemType backend.ElemType, rows, cols int) (backend.Dataset, error) {
	ds := &fakeDataset{elemType: elemType, rows: rows, cols: cols}
	g.datasets[name] = ds
	return ds, nil
}
func (g *fakeGroup) RemoveDataset(name string) error { delete(g.datasets, name); return nil }

type fakeDataset struct {
	elemType backend.ElemType
	rows     int
	cols     int
	buf      []byte
}

func (d *fakeDataset) ElemType() backend.ElemType    { return d.elemType }
func (d *fakeDataset) Dimensions() (int, int, error) { return d.rows, d.cols, nil }
func (d *fakeDataset) ReadInto(buf []byte) error      { copy(buf, d.buf); return nil }
func (d *fakeDataset) WriteFrom(buf []byte) error {
	d.buf = append([]byte(nil), buf...)
	return nil
}
func (d *fakeDataset) Close() error { return nil }

func TestPolarVolumeTreeAndMatrixRoundTrip(t *testing.T) {
	t.Parallel()

	root := newFakeGroup()
	obj := odimtree.NewObject(root, V2_1, ObjectPVOL)
	require.NoError(t, obj.SetMandatoryDefaults())
	require.NoError(t, obj.SetLongitude(11.62))
	require.NoError(t, obj.SetLatitude(44.65))

	scan, err := obj.CreateDataset(ProductSCAN)
	require.NoError(t, err)
	require.NoError(t, scan.SetElangle(0.5))

	data, err := scan.CreateData(QuantityDBZH)
	require.NoError(t, err)
	require.NoError(t, data.SetGain(0.5))
	require.NoError(t, data.SetOffset(-20))
	require.NoError(t, data.SetNodata(255))
	require.NoError(t, data.SetUndetect(0))

	values := []float64{-20, -19.5, 10, 30.5}
	require.NoError(t, data.WriteAndTranslate(values, 2, 2, UInt8))

	got, rows, cols, err := data.ReadTranslated()
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	for i, want := range values {
		assert.InDelta(t, want, got[i], 0.5)
	}
}

func TestGeoIndexAcrossObjects(t *testing.T) {
	t.Parallel()

	near := newFakeGroup()
	nearObj := odimtree.NewObject(near, V2_1, ObjectCOMP)
	nearDS, err := nearObj.CreateDataset(ProductCOMP)
	require.NoError(t, err)
	setCorners(t, nearDS, 10, 44, 12, 46)

	far := newFakeGroup()
	farObj := odimtree.NewObject(far, V2_1, ObjectCOMP)
	farDS, err := farObj.CreateDataset(ProductCOMP)
	require.NoError(t, err)
	setCorners(t, farDS, 100, -10, 102, -8)

	idx, err := NewGeoIndex([]*Object{nearObj, farObj})
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())

	hits := idx.Query(Bounds{MinLon: 9, MinLat: 43, MaxLon: 13, MaxLat: 47})
	require.Len(t, hits, 1)
	assert.Same(t, nearObj, hits[0].Object)
}

func setCorners(t *testing.T, ds *Dataset, llLon, llLat, urLon, urLat float64) {
	t.Helper()
	where, err := ds.Where()
	require.NoError(t, err)
	require.NoError(t, where.SetFloat64("LL_lon", llLon))
	require.NoError(t, where.SetFloat64("LL_lat", llLat))
	require.NoError(t, where.SetFloat64("UR_lon", urLon))
	require.NoError(t, where.SetFloat64("UR_lat", urLat))
}
