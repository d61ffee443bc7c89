package odimtree

import (
	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/matrix"
	"github.com/arpa-simc/odimh5/internal/schema"
)

// Quality is a "qualityN" node: the same shape as Data minus the
// quantity-specific attribute, carrying a quality-indicator matrix for its
// owning Data node.
type Quality struct {
	*node
	data   *Data
	Index  int
	matrix *matrix.Matrix
}

func newQuality(group backend.Group, data *Data, index int) *Quality {
	return &Quality{
		node:   newNode(group, data.Version()),
		data:   data,
		Index:  index,
		matrix: matrix.New(group, schema.DatasetName),
	}
}

func (q *Quality) Data() *Data { return q.data }

func (q *Quality) Gain() (float64, error)     { return q.whatFloat(schema.AttrWhatGain) }
func (q *Quality) Offset() (float64, error)   { return q.whatFloat(schema.AttrWhatOffset) }
func (q *Quality) Nodata() (float64, error)   { return q.whatFloat(schema.AttrWhatNodata) }
func (q *Quality) Undetect() (float64, error) { return q.whatFloat(schema.AttrWhatUndetect) }

func (q *Quality) SetGain(v float64) error     { return q.setWhatFloat(schema.AttrWhatGain, v) }
func (q *Quality) SetOffset(v float64) error   { return q.setWhatFloat(schema.AttrWhatOffset, v) }
func (q *Quality) SetNodata(v float64) error   { return q.setWhatFloat(schema.AttrWhatNodata, v) }
func (q *Quality) SetUndetect(v float64) error { return q.setWhatFloat(schema.AttrWhatUndetect, v) }

func (q *Quality) whatFloat(attr string) (float64, error) {
	what, err := q.What()
	if err != nil {
		return 0, err
	}
	return what.GetFloat64(attr)
}

func (q *Quality) setWhatFloat(attr string, v float64) error {
	what, err := q.What()
	if err != nil {
		return err
	}
	return what.SetFloat64(attr, v)
}

// Matrix returns the raw matrix accessor for this quality node.
func (q *Quality) Matrix() *matrix.Matrix { return q.matrix }

func (q *Quality) ReadTranslated() (values []float64, rows, cols int, err error) {
	gain, err := q.Gain()
	if err != nil {
		return nil, 0, 0, err
	}
	offset, err := q.Offset()
	if err != nil {
		return nil, 0, 0, err
	}
	return q.matrix.ReadTranslatedF64(gain, offset)
}
