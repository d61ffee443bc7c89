package odimtree

import (
	"testing"

	"github.com/arpa-simc/odimh5/internal/codec"
	"github.com/arpa-simc/odimh5/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectCreateOpenRoundTrip(t *testing.T) {
	t.Parallel()

	root := newFakeGroup()
	obj := NewObject(root, schema.V2_1, schema.ObjectPVOL)
	require.NoError(t, obj.SetMandatoryDefaults())
	require.NoError(t, obj.SetModelVersion(codec.FromSchemaVersion(schema.V2_1)))
	require.NoError(t, obj.SetDate("20260730"))
	require.NoError(t, obj.SetTime("120000"))
	require.NoError(t, obj.SetLongitude(11.62))
	require.NoError(t, obj.SetLatitude(44.65))
	require.NoError(t, obj.SetHeight(150))

	kind, err := ClassifyRoot(root)
	require.NoError(t, err)
	assert.Equal(t, schema.ObjectPVOL, kind)

	date, err := obj.Date()
	require.NoError(t, err)
	assert.Equal(t, "20260730", date)

	lon, err := obj.Longitude()
	require.NoError(t, err)
	assert.Equal(t, 11.62, lon)
}

func TestDenseRenumberingAfterRemoval(t *testing.T) {
	t.Parallel()

	root := newFakeGroup()
	obj := NewObject(root, schema.V2_1, schema.ObjectPVOL)

	for i := 0; i < 4; i++ {
		ds, err := obj.CreateDataset(schema.ProductSCAN)
		require.NoError(t, err)
		require.NoError(t, ds.SetElangle(float64(i)))
	}

	count, err := obj.DatasetCount()
	require.NoError(t, err)
	require.Equal(t, 4, count)

	// Remove index 1 (elangle 1.0); the following two datasets must
	// renumber down to indices 1/2.
	require.NoError(t, obj.RemoveDataset(1))

	count, err = obj.DatasetCount()
	require.NoError(t, err)
	require.Equal(t, 3, count)

	angles, err := obj.ListScanElevationAngles()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 3}, angles)
}

func TestDatasetDataQualityTree(t *testing.T) {
	t.Parallel()

	root := newFakeGroup()
	obj := NewObject(root, schema.V2_1, schema.ObjectPVOL)
	ds, err := obj.CreateDataset(schema.ProductSCAN)
	require.NoError(t, err)

	data, err := ds.CreateData(schema.QuantityDBZH)
	require.NoError(t, err)
	require.NoError(t, data.SetGain(0.5))
	require.NoError(t, data.SetOffset(-20))
	require.NoError(t, data.SetNodata(255))
	require.NoError(t, data.SetUndetect(0))

	quantity, err := data.Quantity()
	require.NoError(t, err)
	assert.Equal(t, schema.QuantityDBZH, quantity)

	quality, err := data.CreateQuality()
	require.NoError(t, err)
	require.NoError(t, quality.SetGain(1))
	require.NoError(t, quality.SetOffset(0))

	qCount, err := data.QualityCount()
	require.NoError(t, err)
	assert.Equal(t, 1, qCount)
	assert.Equal(t, data, quality.Data())
}

func TestScansCarryingQuantity(t *testing.T) {
	t.Parallel()

	root := newFakeGroup()
	obj := NewObject(root, schema.V2_1, schema.ObjectPVOL)

	ds1, err := obj.CreateDataset(schema.ProductSCAN)
	require.NoError(t, err)
	_, err = ds1.CreateData(schema.QuantityDBZH)
	require.NoError(t, err)

	ds2, err := obj.CreateDataset(schema.ProductSCAN)
	require.NoError(t, err)
	_, err = ds2.CreateData(schema.QuantityVRAD)
	require.NoError(t, err)

	indices, err := obj.ScansCarryingQuantity(schema.QuantityDBZH)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, indices)
}

func TestCheckMandatoryReportsFirstMissing(t *testing.T) {
	t.Parallel()

	root := newFakeGroup()
	obj := NewObject(root, schema.V2_1, schema.ObjectPVOL)

	err := obj.CheckMandatory()
	require.Error(t, err)
	var format *codec.FormatError
	require.ErrorAs(t, err, &format)

	require.NoError(t, obj.SetMandatoryDefaults())
	// SetMandatoryDefaults only stamps sentinels: date/time are still
	// "19700101"/"000000" and source is still empty, so a never-customized
	// object must keep failing CheckMandatory rather than pass it.
	require.Error(t, obj.CheckMandatory())

	require.NoError(t, obj.SetDate("20260730"))
	require.NoError(t, obj.SetTime("120000"))
	require.NoError(t, obj.SetSource(codec.SourceInfo{WMO: "16144"}))
	require.NoError(t, obj.SetLongitude(11.62))
	require.NoError(t, obj.SetLatitude(44.65))
	require.NoError(t, obj.SetHeight(150))
	require.NoError(t, obj.CheckMandatory())
}

func TestDatasetAccessorsAreZeroBased(t *testing.T) {
	t.Parallel()

	root := newFakeGroup()
	obj := NewObject(root, schema.V2_1, schema.ObjectPVOL)

	_, err := obj.Dataset(0)
	require.Error(t, err)
	var invalid *codec.InvalidArgumentError
	require.ErrorAs(t, err, &invalid)

	ds, err := obj.CreateDataset(schema.ProductSCAN)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Index)

	got, err := obj.Dataset(0)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Index)

	_, err = obj.Dataset(1)
	require.Error(t, err)
	require.ErrorAs(t, err, &invalid)
}

func TestDirectionFromRpmSign(t *testing.T) {
	t.Parallel()

	root := newFakeGroup()
	obj := NewObject(root, schema.V2_1, schema.ObjectPVOL)
	ds, err := obj.CreateDataset(schema.ProductSCAN)
	require.NoError(t, err)

	require.NoError(t, ds.SetRpm(12))
	dir, err := ds.Direction()
	require.NoError(t, err)
	assert.Equal(t, Clockwise, dir)

	require.NoError(t, ds.SetRpm(-12))
	dir, err = ds.Direction()
	require.NoError(t, err)
	assert.Equal(t, CounterClockwise, dir)
}

func TestDirectionFallsBackToStartazTMonotonicity(t *testing.T) {
	t.Parallel()

	root := newFakeGroup()
	obj := NewObject(root, schema.V2_1, schema.ObjectPVOL)
	ds, err := obj.CreateDataset(schema.ProductSCAN)
	require.NoError(t, err)

	how, err := ds.How()
	require.NoError(t, err)
	require.NoError(t, how.SetFloat64Sequence(schema.AttrHowStartazT, []float64{1, 2, 3, 4}))
	dir, err := ds.Direction()
	require.NoError(t, err)
	assert.Equal(t, Clockwise, dir)

	require.NoError(t, how.SetFloat64Sequence(schema.AttrHowStartazT, []float64{4, 3, 2, 1}))
	dir, err = ds.Direction()
	require.NoError(t, err)
	assert.Equal(t, CounterClockwise, dir)
}

func TestOriginalRayIndex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, OriginalRayIndex(0, Clockwise, 10, 5))
	assert.Equal(t, 0, OriginalRayIndex(5, Clockwise, 10, 5))
	assert.Equal(t, 5, OriginalRayIndex(0, CounterClockwise, 10, 5))
	assert.Equal(t, 9, OriginalRayIndex(6, CounterClockwise, 10, 5))
}

func TestDatasetCorners(t *testing.T) {
	t.Parallel()

	root := newFakeGroup()
	obj := NewObject(root, schema.V2_1, schema.ObjectCOMP)
	ds, err := obj.CreateDataset(schema.ProductCOMP)
	require.NoError(t, err)

	ll := Point{Lon: 10, Lat: 40}
	ul := Point{Lon: 10, Lat: 50}
	ur := Point{Lon: 20, Lat: 50}
	lr := Point{Lon: 20, Lat: 40}
	require.NoError(t, ds.SetCorners(ll, ul, ur, lr))

	llLon, llLat, urLon, urLat, err := ds.Corners()
	require.NoError(t, err)
	assert.Equal(t, ll.Lon, llLon)
	assert.Equal(t, ll.Lat, llLat)
	assert.Equal(t, ur.Lon, urLon)
	assert.Equal(t, ur.Lat, urLat)

	gotUL, err := ds.UL()
	require.NoError(t, err)
	assert.Equal(t, ul, gotUL)

	gotLR, err := ds.LR()
	require.NoError(t, err)
	assert.Equal(t, lr, gotLR)
}

func TestHasPolarAndCartesianGeometry(t *testing.T) {
	t.Parallel()

	root := newFakeGroup()
	obj := NewObject(root, schema.V2_1, schema.ObjectPVOL)

	scan, err := obj.CreateDataset(schema.ProductSCAN)
	require.NoError(t, err)
	assert.True(t, scan.HasPolarGeometry())
	assert.False(t, scan.HasCartesianGeometry())

	ppi, err := obj.CreateDataset(schema.ProductPPI)
	require.NoError(t, err)
	assert.False(t, ppi.HasPolarGeometry())
	assert.True(t, ppi.HasCartesianGeometry())
}
