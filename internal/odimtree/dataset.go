package odimtree

import (
	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/codec"
	"github.com/arpa-simc/odimh5/internal/schema"
)

// Dataset is a "datasetN" node: one product within an Object, owning a
// dense family of data (and, transitively, quality) children.
type Dataset struct {
	*node
	object *Object
	Index  int // 0-based position under the owning Object
	data   *container
}

func newDataset(group backend.Group, object *Object, index int) *Dataset {
	return &Dataset{
		node:   newNode(group, object.Version()),
		object: object,
		Index:  index,
		data:   newContainer(group, schema.GroupData),
	}
}

// Object returns the Dataset's owning Object.
func (d *Dataset) Object() *Object { return d.object }

func (d *Dataset) Product() (schema.ProductTag, error) {
	what, err := d.What()
	if err != nil {
		return "", err
	}
	s, err := what.GetString(schema.AttrWhatProduct)
	return schema.ProductTag(s), err
}

func (d *Dataset) SetProduct(p schema.ProductTag) error {
	what, err := d.What()
	if err != nil {
		return err
	}
	return what.SetString(schema.AttrWhatProduct, string(p))
}

// Prodpar is a scalar-or-pair "what/prodpar" value; callers that know the
// product's shape use ProdparFloat or ProdparPair accordingly.
func (d *Dataset) ProdparFloat() (float64, error) {
	what, err := d.What()
	if err != nil {
		return 0, err
	}
	return what.GetFloat64(schema.AttrWhatProdpar)
}

func (d *Dataset) SetProdparFloat(v float64) error {
	what, err := d.What()
	if err != nil {
		return err
	}
	return what.SetFloat64(schema.AttrWhatProdpar, v)
}

func (d *Dataset) ProdparPair() (codec.VilHeights, error) {
	what, err := d.What()
	if err != nil {
		return codec.VilHeights{}, err
	}
	s, err := what.GetString(schema.AttrWhatProdpar)
	if err != nil {
		return codec.VilHeights{}, err
	}
	return codec.ParseVilHeights(s)
}

func (d *Dataset) SetProdparPair(v codec.VilHeights) error {
	what, err := d.What()
	if err != nil {
		return err
	}
	return what.SetString(schema.AttrWhatProdpar, v.String())
}

func (d *Dataset) StartDate() (string, error) { return d.whatString(schema.AttrWhatStartdate) }
func (d *Dataset) StartTime() (string, error) { return d.whatString(schema.AttrWhatStarttime) }
func (d *Dataset) EndDate() (string, error)   { return d.whatString(schema.AttrWhatEnddate) }
func (d *Dataset) EndTime() (string, error)   { return d.whatString(schema.AttrWhatEndtime) }

func (d *Dataset) SetStartDate(v string) error { return d.setWhatString(schema.AttrWhatStartdate, v) }
func (d *Dataset) SetStartTime(v string) error { return d.setWhatString(schema.AttrWhatStarttime, v) }
func (d *Dataset) SetEndDate(v string) error   { return d.setWhatString(schema.AttrWhatEnddate, v) }
func (d *Dataset) SetEndTime(v string) error   { return d.setWhatString(schema.AttrWhatEndtime, v) }

func (d *Dataset) whatString(attr string) (string, error) {
	what, err := d.What()
	if err != nil {
		return "", err
	}
	return what.GetString(attr)
}

func (d *Dataset) setWhatString(attr, v string) error {
	what, err := d.What()
	if err != nil {
		return err
	}
	return what.SetString(attr, v)
}

// --- polar geometry (SCAN/RAY/AZIM datasets, and PVOL/SCAN objects) ---

func (d *Dataset) Elangle() (float64, error)  { return d.whereFloat(schema.AttrWhereElangle) }
func (d *Dataset) Nbins() (int64, error)      { return d.whereInt(schema.AttrWhereNbins) }
func (d *Dataset) Rstart() (float64, error)   { return d.whereFloat(schema.AttrWhereRstart) }
func (d *Dataset) Rscale() (float64, error)   { return d.whereFloat(schema.AttrWhereRscale) }
func (d *Dataset) Nrays() (int64, error)      { return d.whereInt(schema.AttrWhereNrays) }
func (d *Dataset) A1gate() (int64, error)     { return d.whereInt(schema.AttrWhereA1gate) }

// Rpm is the antenna rotation speed, "how/rpm": positive clockwise,
// negative counter-clockwise, used by Direction to derive the scan's
// rotation sense.
func (d *Dataset) Rpm() (float64, error)  { return d.howFloatDefault(schema.AttrHowRpm, 0) }
func (d *Dataset) SetRpm(v float64) error { return d.setHowFloat(schema.AttrHowRpm, v) }

// StartazT returns the per-ray "how/startazT" acquisition-time sequence,
// or nil if the dataset does not carry it.
func (d *Dataset) StartazT() ([]float64, error) {
	how, err := d.How()
	if err != nil {
		return nil, err
	}
	return how.GetFloat64SequenceDefault(schema.AttrHowStartazT, nil)
}

func (d *Dataset) SetElangle(v float64) error { return d.setWhereFloat(schema.AttrWhereElangle, v) }
func (d *Dataset) SetNbins(v int64) error     { return d.setWhereInt(schema.AttrWhereNbins, v) }
func (d *Dataset) SetRstart(v float64) error  { return d.setWhereFloat(schema.AttrWhereRstart, v) }
func (d *Dataset) SetRscale(v float64) error  { return d.setWhereFloat(schema.AttrWhereRscale, v) }
func (d *Dataset) SetNrays(v int64) error     { return d.setWhereInt(schema.AttrWhereNrays, v) }
func (d *Dataset) SetA1gate(v int64) error    { return d.setWhereInt(schema.AttrWhereA1gate, v) }

// --- cartesian geometry (horizontal products) ---

func (d *Dataset) Projdef() (string, error) { return d.whereString(schema.AttrWhereProjdef) }
func (d *Dataset) Xsize() (int64, error)    { return d.whereInt(schema.AttrWhereXsize) }
func (d *Dataset) Ysize() (int64, error)    { return d.whereInt(schema.AttrWhereYsize) }
func (d *Dataset) Xscale() (float64, error) { return d.whereFloat(schema.AttrWhereXscale) }
func (d *Dataset) Yscale() (float64, error) { return d.whereFloat(schema.AttrWhereYscale) }

func (d *Dataset) SetProjdef(v string) error { return d.setWhereString(schema.AttrWhereProjdef, v) }
func (d *Dataset) SetXsize(v int64) error    { return d.setWhereInt(schema.AttrWhereXsize, v) }
func (d *Dataset) SetYsize(v int64) error    { return d.setWhereInt(schema.AttrWhereYsize, v) }
func (d *Dataset) SetXscale(v float64) error { return d.setWhereFloat(schema.AttrWhereXscale, v) }
func (d *Dataset) SetYscale(v float64) error { return d.setWhereFloat(schema.AttrWhereYscale, v) }

// Point is a longitude/latitude pair, used for the four mandatory corner
// attributes of a horizontal product's cartesian grid.
type Point struct {
	Lon, Lat float64
}

// Corners returns the LL/UR lon/lat bounding corners used by a horizontal
// product's cartesian grid (internal/geoindex builds bounding boxes from
// this pair). UL and LR return the other two corners.
func (d *Dataset) Corners() (llLon, llLat, urLon, urLat float64, err error) {
	llLon, err = d.whereFloat(schema.AttrWhereLLLon)
	if err != nil {
		return
	}
	llLat, err = d.whereFloat(schema.AttrWhereLLLat)
	if err != nil {
		return
	}
	urLon, err = d.whereFloat(schema.AttrWhereURLon)
	if err != nil {
		return
	}
	urLat, err = d.whereFloat(schema.AttrWhereURLat)
	return
}

// UL returns the upper-left corner.
func (d *Dataset) UL() (Point, error) {
	lon, err := d.whereFloat(schema.AttrWhereULLon)
	if err != nil {
		return Point{}, err
	}
	lat, err := d.whereFloat(schema.AttrWhereULLat)
	if err != nil {
		return Point{}, err
	}
	return Point{Lon: lon, Lat: lat}, nil
}

// LR returns the lower-right corner.
func (d *Dataset) LR() (Point, error) {
	lon, err := d.whereFloat(schema.AttrWhereLRLon)
	if err != nil {
		return Point{}, err
	}
	lat, err := d.whereFloat(schema.AttrWhereLRLat)
	if err != nil {
		return Point{}, err
	}
	return Point{Lon: lon, Lat: lat}, nil
}

// SetCorners stamps all eight cartesian corner attributes (of which
// schema.DatasetMandatoryWhere requires the LL and UR pairs for
// horizontal products): there is
// no per-corner setter otherwise, since a caller populating one corner
// without the other three would leave the grid under-specified.
func (d *Dataset) SetCorners(ll, ul, ur, lr Point) error {
	if err := d.setWhereFloat(schema.AttrWhereLLLon, ll.Lon); err != nil {
		return err
	}
	if err := d.setWhereFloat(schema.AttrWhereLLLat, ll.Lat); err != nil {
		return err
	}
	if err := d.setWhereFloat(schema.AttrWhereULLon, ul.Lon); err != nil {
		return err
	}
	if err := d.setWhereFloat(schema.AttrWhereULLat, ul.Lat); err != nil {
		return err
	}
	if err := d.setWhereFloat(schema.AttrWhereURLon, ur.Lon); err != nil {
		return err
	}
	if err := d.setWhereFloat(schema.AttrWhereURLat, ur.Lat); err != nil {
		return err
	}
	if err := d.setWhereFloat(schema.AttrWhereLRLon, lr.Lon); err != nil {
		return err
	}
	return d.setWhereFloat(schema.AttrWhereLRLat, lr.Lat)
}

func (d *Dataset) whereFloat(attr string) (float64, error) {
	where, err := d.Where()
	if err != nil {
		return 0, err
	}
	return where.GetFloat64(attr)
}

func (d *Dataset) setWhereFloat(attr string, v float64) error {
	where, err := d.Where()
	if err != nil {
		return err
	}
	return where.SetFloat64(attr, v)
}

func (d *Dataset) howFloatDefault(attr string, def float64) (float64, error) {
	how, err := d.How()
	if err != nil {
		return 0, err
	}
	return how.GetFloat64Default(attr, def)
}

func (d *Dataset) setHowFloat(attr string, v float64) error {
	how, err := d.How()
	if err != nil {
		return err
	}
	return how.SetFloat64(attr, v)
}

func (d *Dataset) whereInt(attr string) (int64, error) {
	where, err := d.Where()
	if err != nil {
		return 0, err
	}
	return where.GetInt64(attr)
}

func (d *Dataset) setWhereInt(attr string, v int64) error {
	where, err := d.Where()
	if err != nil {
		return err
	}
	return where.SetInt64(attr, v)
}

func (d *Dataset) whereString(attr string) (string, error) {
	where, err := d.Where()
	if err != nil {
		return "", err
	}
	return where.GetString(attr)
}

func (d *Dataset) setWhereString(attr, v string) error {
	where, err := d.Where()
	if err != nil {
		return err
	}
	return where.SetString(attr, v)
}

// --- data children ---

func (d *Dataset) DataCount() (int, error) { return d.data.Count() }

// Data opens the i-th data child (0-based externally, 1-based on store).
func (d *Dataset) Data(i int) (*Data, error) {
	g, err := d.data.Open(i)
	if err != nil {
		return nil, err
	}
	return newData(g, d, i), nil
}

func (d *Dataset) CreateData(quantity schema.QuantityTag) (*Data, error) {
	g, idx, err := d.data.Create()
	if err != nil {
		return nil, err
	}
	data := newData(g, d, idx)
	what, err := data.What()
	if err != nil {
		return nil, err
	}
	if err := what.SetString(schema.AttrWhatQuantity, string(quantity)); err != nil {
		return nil, err
	}
	return data, nil
}

// RemoveData deletes the i-th data child (0-based) and renumbers the rest.
func (d *Dataset) RemoveData(i int) error { return d.data.Remove(i) }
