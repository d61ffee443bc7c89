package odimtree

import (
	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/codec"
	"github.com/arpa-simc/odimh5/internal/schema"
)

// Object is a root ODIM_H5 node: a PVOL, CVOL, SCAN, IMAGE, COMP, XSEC, VP
// or PIC, carrying the top-level what/where/how groups and a dense family
// of dataset children.
type Object struct {
	*node
	kind     schema.ObjectKind
	datasets *container
}

// NewObject builds an Object wrapper for a freshly created or
// already-classified root group; kind must already be known (the factory
// is responsible for reading "what/object" on open, see internal/factory).
func NewObject(group backend.Group, version schema.Version, kind schema.ObjectKind) *Object {
	return &Object{
		node:     newNode(group, version),
		kind:     kind,
		datasets: newContainer(group, schema.GroupDataset),
	}
}

// ClassifyRoot reads the "what/object" attribute off an already-open root
// group, for the factory's open() path (spec §4.5: classify by root
// what/object, then return the concrete variant).
func ClassifyRoot(group backend.Group) (schema.ObjectKind, error) {
	n := newNode(group, schema.V2_1) // version irrelevant for a bare attribute read
	what, err := n.What()
	if err != nil {
		return "", err
	}
	s, err := what.GetString(schema.AttrWhatObject)
	if err != nil {
		return "", err
	}
	if !schema.IsObjectKind(s) {
		return "", &codec.FormatError{Group: schema.GroupWhat, Name: schema.AttrWhatObject, Value: s, Want: "ObjectKind"}
	}
	return schema.ObjectKind(s), nil
}

func (o *Object) Kind() schema.ObjectKind { return o.kind }

// ModelVersion returns the decoded "what/version" attribute.
func (o *Object) ModelVersion() (codec.ModelVersion, error) {
	what, err := o.What()
	if err != nil {
		return codec.ModelVersion{}, err
	}
	s, err := what.GetString(schema.AttrWhatVersion)
	if err != nil {
		return codec.ModelVersion{}, err
	}
	return codec.ParseModelVersion(s)
}

func (o *Object) SetModelVersion(v codec.ModelVersion) error {
	what, err := o.What()
	if err != nil {
		return err
	}
	return what.SetString(schema.AttrWhatVersion, v.String())
}

func (o *Object) Date() (string, error) {
	what, err := o.What()
	if err != nil {
		return "", err
	}
	return what.GetString(schema.AttrWhatDate)
}

func (o *Object) SetDate(yyyymmdd string) error {
	what, err := o.What()
	if err != nil {
		return err
	}
	return what.SetString(schema.AttrWhatDate, yyyymmdd)
}

func (o *Object) Time() (string, error) {
	what, err := o.What()
	if err != nil {
		return "", err
	}
	return what.GetString(schema.AttrWhatTime)
}

func (o *Object) SetTime(hhmmss string) error {
	what, err := o.What()
	if err != nil {
		return err
	}
	return what.SetString(schema.AttrWhatTime, hhmmss)
}

// Source returns the decoded "what/source" attribute.
func (o *Object) Source() (codec.SourceInfo, error) {
	what, err := o.What()
	if err != nil {
		return codec.SourceInfo{}, err
	}
	s, err := what.GetString(schema.AttrWhatSource)
	if err != nil {
		return codec.SourceInfo{}, err
	}
	return codec.ParseSourceInfo(s)
}

func (o *Object) SetSource(src codec.SourceInfo) error {
	what, err := o.What()
	if err != nil {
		return err
	}
	return what.SetString(schema.AttrWhatSource, src.String())
}

// Longitude/Latitude/Height are the site location, mandatory on
// volume/scan-like objects (schema.ObjectMandatoryWhere).
func (o *Object) Longitude() (float64, error) { return o.whereFloat(schema.AttrWhereLon) }
func (o *Object) Latitude() (float64, error)  { return o.whereFloat(schema.AttrWhereLat) }
func (o *Object) Height() (float64, error)    { return o.whereFloat(schema.AttrWhereHeight) }

func (o *Object) SetLongitude(v float64) error { return o.setWhereFloat(schema.AttrWhereLon, v) }
func (o *Object) SetLatitude(v float64) error  { return o.setWhereFloat(schema.AttrWhereLat, v) }
func (o *Object) SetHeight(v float64) error    { return o.setWhereFloat(schema.AttrWhereHeight, v) }

func (o *Object) whereFloat(attr string) (float64, error) {
	where, err := o.Where()
	if err != nil {
		return 0, err
	}
	return where.GetFloat64(attr)
}

func (o *Object) setWhereFloat(attr string, v float64) error {
	where, err := o.Where()
	if err != nil {
		return err
	}
	return where.SetFloat64(attr, v)
}

// DatasetCount returns how many dataset children this object owns.
func (o *Object) DatasetCount() (int, error) { return o.datasets.Count() }

// Dataset opens the i-th dataset child (0-based externally, 1-based on
// the underlying store).
func (o *Object) Dataset(i int) (*Dataset, error) {
	g, err := o.datasets.Open(i)
	if err != nil {
		return nil, err
	}
	return newDataset(g, o, i), nil
}

// CreateDataset appends a new dataset child carrying the given product
// tag. No other attribute is written: the product's mandatory what/where
// attributes (schema.DatasetMandatoryWhat/DatasetMandatoryWhere) are left
// for the caller to set.
func (o *Object) CreateDataset(product schema.ProductTag) (*Dataset, error) {
	g, idx, err := o.datasets.Create()
	if err != nil {
		return nil, err
	}
	ds := newDataset(g, o, idx)
	what, err := ds.What()
	if err != nil {
		return nil, err
	}
	if err := what.SetString(schema.AttrWhatProduct, string(product)); err != nil {
		return nil, err
	}
	return ds, nil
}

// RemoveDataset deletes the i-th dataset child (0-based) and renumbers the
// rest.
func (o *Object) RemoveDataset(i int) error { return o.datasets.Remove(i) }
