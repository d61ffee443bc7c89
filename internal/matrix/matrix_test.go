package matrix

import (
	"testing"

	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGroup is a minimal in-memory backend.Group used to exercise Matrix
// without HDF5. It only implements the dataset half of the interface;
// attribute methods are present only to satisfy backend.Group.
type fakeGroup struct {
	datasets map[string]*fakeDataset
}

func newFakeGroup() *fakeGroup { return &fakeGroup{datasets: map[string]*fakeDataset{}} }

func (g *fakeGroup) GetAttribute(string) (codec.Value, bool, error)  { return codec.Value{}, false, nil }
func (g *fakeGroup) SetAttribute(string, codec.Value) error          { return nil }
func (g *fakeGroup) RemoveAttribute(string) error                    { return nil }
func (g *fakeGroup) AttributeNames() ([]string, error)                { return nil, nil }
func (g *fakeGroup) ChildNames() ([]string, error)                    { return nil, nil }
func (g *fakeGroup) HasChild(string) (bool, error)                    { return false, nil }
func (g *fakeGroup) OpenChild(string) (backend.Group, error)          { return nil, nil }
func (g *fakeGroup) CreateChild(string) (backend.Group, error)        { return nil, nil }
func (g *fakeGroup) RemoveChild(string) error                         { return nil }
func (g *fakeGroup) RenameChild(string, string) error                 { return nil }
func (g *fakeGroup) Close() error                                     { return nil }

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

func (d *fakeDataset) ElemType() backend.ElemType { return d.elemType }
func (d *fakeDataset) Dimensions() (int, int, error) { return d.rows, d.cols, nil }
func (d *fakeDataset) ReadInto(buf []byte) error {
	copy(buf, d.buf)
	return nil
}
func (d *fakeDataset) WriteFrom(buf []byte) error {
	d.buf = append([]byte(nil), buf...)
	return nil
}
func (d *fakeDataset) Close() error { return nil }

func TestMatrixWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	g := newFakeGroup()
	m := New(g, "data")

	buf := []byte{1, 2, 3, 4, 5, 6}
	require.NoError(t, m.Write(buf, 3, 2, backend.UInt8))

	rows, cols, err := m.Dimensions()
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	out := make([]byte, len(buf))
	require.NoError(t, m.Read(out))
	assert.Equal(t, buf, out)

	elemType, err := m.ElemType()
	require.NoError(t, err)
	assert.Equal(t, backend.UInt8, elemType)
}

func TestMatrixReadAbsentLeavesBufferUntouched(t *testing.T) {
	t.Parallel()

	g := newFakeGroup()
	m := New(g, "data")

	buf := []byte{0xAA, 0xBB}
	require.NoError(t, m.Read(buf))
	assert.Equal(t, []byte{0xAA, 0xBB}, buf)

	elemType, err := m.ElemType()
	require.NoError(t, err)
	assert.Equal(t, backend.Opaque, elemType)
}

func TestMatrixGainOffsetRoundTrip(t *testing.T) {
	t.Parallel()

	g := newFakeGroup()
	m := New(g, "data")

	values := []float64{0, 10, 20, 30}
	require.NoError(t, m.WriteAndTranslateF64(values, 2, 2, 0.5, 0, backend.UInt8))

	got, rows, cols, err := m.ReadTranslatedF64(0.5, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, values, got)
}

func TestMatrixWriteAndTranslateRejectsUnsupportedTarget(t *testing.T) {
	t.Parallel()

	g := newFakeGroup()
	m := New(g, "data")

	err := m.WriteAndTranslateF64([]float64{1}, 1, 1, 1, 0, backend.Float64)
	require.Error(t, err)
	var unsupported *codec.UnsupportedError
	assert.ErrorAs(t, err, &unsupported)
}

func TestMatrixWriteRejectsMismatchedBufferSize(t *testing.T) {
	t.Parallel()

	g := newFakeGroup()
	m := New(g, "data")

	err := m.Write([]byte{1, 2, 3}, 2, 2, backend.UInt8)
	require.Error(t, err)
	var invalid *codec.InvalidArgumentError
	assert.ErrorAs(t, err, &invalid)
}
