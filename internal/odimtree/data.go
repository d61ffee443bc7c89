package odimtree

import (
	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/matrix"
	"github.com/arpa-simc/odimh5/internal/schema"
)

// Data is a "dataN" node: one quantity's matrix within a Dataset, plus its
// own dense family of quality children.
type Data struct {
	*node
	dataset *Dataset
	Index   int
	quality *container
	matrix  *matrix.Matrix
}

func newData(group backend.Group, dataset *Dataset, index int) *Data {
	return &Data{
		node:    newNode(group, dataset.Version()),
		dataset: dataset,
		Index:   index,
		quality: newContainer(group, schema.GroupQuality),
		matrix:  matrix.New(group, schema.DatasetName),
	}
}

func (d *Data) Dataset() *Dataset { return d.dataset }

func (d *Data) Quantity() (schema.QuantityTag, error) {
	what, err := d.What()
	if err != nil {
		return "", err
	}
	s, err := what.GetString(schema.AttrWhatQuantity)
	return schema.QuantityTag(s), err
}

func (d *Data) SetQuantity(q schema.QuantityTag) error {
	what, err := d.What()
	if err != nil {
		return err
	}
	return what.SetString(schema.AttrWhatQuantity, string(q))
}

func (d *Data) Gain() (float64, error)     { return d.whatFloat(schema.AttrWhatGain) }
func (d *Data) Offset() (float64, error)   { return d.whatFloat(schema.AttrWhatOffset) }
func (d *Data) Nodata() (float64, error)   { return d.whatFloat(schema.AttrWhatNodata) }
func (d *Data) Undetect() (float64, error) { return d.whatFloat(schema.AttrWhatUndetect) }

func (d *Data) SetGain(v float64) error     { return d.setWhatFloat(schema.AttrWhatGain, v) }
func (d *Data) SetOffset(v float64) error   { return d.setWhatFloat(schema.AttrWhatOffset, v) }
func (d *Data) SetNodata(v float64) error   { return d.setWhatFloat(schema.AttrWhatNodata, v) }
func (d *Data) SetUndetect(v float64) error { return d.setWhatFloat(schema.AttrWhatUndetect, v) }

func (d *Data) whatFloat(attr string) (float64, error) {
	what, err := d.What()
	if err != nil {
		return 0, err
	}
	return what.GetFloat64(attr)
}

func (d *Data) setWhatFloat(attr string, v float64) error {
	what, err := d.What()
	if err != nil {
		return err
	}
	return what.SetFloat64(attr, v)
}

// Matrix returns the raw matrix accessor (component C3) for this node.
func (d *Data) Matrix() *matrix.Matrix { return d.matrix }

// ReadTranslated reads the matrix and applies this node's own gain/offset,
// the convenience path spec §4.1/§4.3 compose into: callers working at the
// tree level never have to look the gain/offset up themselves.
func (d *Data) ReadTranslated() (values []float64, rows, cols int, err error) {
	gain, err := d.Gain()
	if err != nil {
		return nil, 0, 0, err
	}
	offset, err := d.Offset()
	if err != nil {
		return nil, 0, 0, err
	}
	return d.matrix.ReadTranslatedF64(gain, offset)
}

// WriteAndTranslate translates values through this node's gain/offset and
// stores them as target, leaving gain/offset untouched (callers set them
// beforehand via SetGain/SetOffset).
func (d *Data) WriteAndTranslate(values []float64, rows, cols int, targetElemType backend.ElemType) error {
	gain, err := d.Gain()
	if err != nil {
		return err
	}
	offset, err := d.Offset()
	if err != nil {
		return err
	}
	return d.matrix.WriteAndTranslateF64(values, rows, cols, gain, offset, targetElemType)
}

func (d *Data) QualityCount() (int, error) { return d.quality.Count() }

func (d *Data) Quality(i int) (*Quality, error) {
	g, err := d.quality.Open(i)
	if err != nil {
		return nil, err
	}
	return newQuality(g, d, i), nil
}

func (d *Data) CreateQuality() (*Quality, error) {
	g, idx, err := d.quality.Create()
	if err != nil {
		return nil, err
	}
	return newQuality(g, d, idx), nil
}

func (d *Data) RemoveQuality(i int) error { return d.quality.Remove(i) }
