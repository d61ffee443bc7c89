// Package matrix implements component C3: reading and writing the single
// named 2-D dataset owned by a Data or Quality node, including the
// gain/offset linear translation between stored integer codes and
// physical floating-point values.
package matrix

import (
	"math"

	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/codec"
)

// Matrix binds a name (always schema.DatasetName in practice) to the
// dataset owned by a backend.Group.
type Matrix struct {
	group backend.Group
	name  string
}

func New(group backend.Group, name string) *Matrix {
	return &Matrix{group: group, name: name}
}

// Exists reports whether the matrix dataset is present.
func (m *Matrix) Exists() (bool, error) {
	return m.group.HasDataset(m.name)
}

// ElemType returns the atomic element type of the stored matrix, or the
// Opaque sentinel when no matrix is present (spec §4.3 introspection).
func (m *Matrix) ElemType() (backend.ElemType, error) {
	ok, err := m.Exists()
	if err != nil || !ok {
		return backend.Opaque, err
	}
	ds, err := m.group.OpenDataset(m.name)
	if err != nil {
		return backend.Opaque, err
	}
	defer ds.Close()
	return ds.ElemType(), nil
}

// Dimensions returns (rows, cols) of the stored matrix. Fails with Format
// if the stored dataset is not 2-D (enforced upstream by backend.Dataset).
func (m *Matrix) Dimensions() (rows, cols int, err error) {
	ds, err := m.group.OpenDataset(m.name)
	if err != nil {
		return 0, 0, err
	}
	defer ds.Close()
	return ds.Dimensions()
}

// Write deletes any pre-existing matrix and creates a new height×width
// (row-major) one, chunk shape equal to the whole shape, deflate level 6,
// stamping the image-convention attributes when elemType is UInt8 (spec
// §4.3 write contract). buf must be exactly width*height*elemType.Size()
// bytes.
func (m *Matrix) Write(buf []byte, width, height int, elemType backend.ElemType) error {
	want := width * height * elemType.Size()
	if len(buf) != want {
		return &codec.InvalidArgumentError{Arg: "buf", Reason: "size does not match width*height*elem size"}
	}
	if ok, err := m.Exists(); err != nil {
		return err
	} else if ok {
		if err := m.group.RemoveDataset(m.name); err != nil {
			return err
		}
	}
	ds, err := m.group.CreateDataset(m.name, elemType, height, width)
	if err != nil {
		return err
	}
	defer ds.Close()
	return ds.WriteFrom(buf)
}

// Read refuses (returning nil, untouched) if the matrix is absent;
// otherwise reads the entire matrix into buf, which must be sized
// rows*cols*elemType.Size().
func (m *Matrix) Read(buf []byte) error {
	ok, err := m.Exists()
	if err != nil || !ok {
		return err
	}
	ds, err := m.group.OpenDataset(m.name)
	if err != nil {
		return err
	}
	defer ds.Close()
	return ds.ReadInto(buf)
}

// supportedWriteTarget reports whether elemType is a valid
// write_and_translate target (spec §4.3: i8, u8, u16, f32 only).
func supportedWriteTarget(t backend.ElemType) bool {
	switch t {
	case backend.Int8, backend.UInt8, backend.UInt16, backend.Float32:
		return true
	default:
		return false
	}
}

// ReadTranslatedF32 reads the stored matrix and applies physical = stored
// * gain + offset, returning the result as float32 regardless of the
// stored element type.
func (m *Matrix) ReadTranslatedF32(gain, offset float64) (values []float32, rows, cols int, err error) {
	f64, rows, cols, err := m.readTranslatedF64(gain, offset)
	if err != nil {
		return nil, 0, 0, err
	}
	out := make([]float32, len(f64))
	for i, v := range f64 {
		out[i] = float32(v)
	}
	return out, rows, cols, nil
}

// ReadTranslatedF64 is the float64 counterpart of ReadTranslatedF32.
func (m *Matrix) ReadTranslatedF64(gain, offset float64) (values []float64, rows, cols int, err error) {
	return m.readTranslatedF64(gain, offset)
}

func (m *Matrix) readTranslatedF64(gain, offset float64) ([]float64, int, int, error) {
	elemType, err := m.ElemType()
	if err != nil {
		return nil, 0, 0, err
	}
	if elemType == backend.Opaque {
		return nil, 0, 0, nil
	}
	rows, cols, err := m.Dimensions()
	if err != nil {
		return nil, 0, 0, err
	}
	buf := make([]byte, rows*cols*elemType.Size())
	if err := m.Read(buf); err != nil {
		return nil, 0, 0, err
	}
	raw, err := decodeRaw(buf, elemType)
	if err != nil {
		return nil, 0, 0, err
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = v*gain + offset
	}
	return out, rows, cols, nil
}

// WriteAndTranslateF32 stores values as target, applying the inverse
// translation stored = (physical - offset) / gain with truncation toward
// zero for integer targets. target must be one of i8, u8, u16, f32.
func (m *Matrix) WriteAndTranslateF32(values []float32, rows, cols int, gain, offset float64, target backend.ElemType) error {
	f64 := make([]float64, len(values))
	for i, v := range values {
		f64[i] = float64(v)
	}
	return m.writeAndTranslate(f64, rows, cols, gain, offset, target)
}

// WriteAndTranslateF64 is the float64 counterpart of WriteAndTranslateF32.
func (m *Matrix) WriteAndTranslateF64(values []float64, rows, cols int, gain, offset float64, target backend.ElemType) error {
	return m.writeAndTranslate(values, rows, cols, gain, offset, target)
}

func (m *Matrix) writeAndTranslate(values []float64, rows, cols int, gain, offset float64, target backend.ElemType) error {
	if !supportedWriteTarget(target) {
		return &codec.UnsupportedError{What: "translation target " + target.String()}
	}
	if len(values) != rows*cols {
		return &codec.InvalidArgumentError{Arg: "values", Reason: "length does not match rows*cols"}
	}
	if gain == 0 {
		return &codec.InvalidArgumentError{Arg: "gain", Reason: "must be non-zero"}
	}
	stored := make([]float64, len(values))
	for i, v := range values {
		stored[i] = (v - offset) / gain
	}
	buf, err := encodeRaw(stored, target)
	if err != nil {
		return err
	}
	return m.Write(buf, cols, rows, target)
}

func decodeRaw(buf []byte, t backend.ElemType) ([]float64, error) {
	n := len(buf) / t.Size()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		chunk := buf[i*t.Size() : (i+1)*t.Size()]
		switch t {
		case backend.Int8:
			out[i] = float64(int8(chunk[0]))
		case backend.UInt8:
			out[i] = float64(chunk[0])
		case backend.UInt16:
			out[i] = float64(le16(chunk))
		case backend.Float32:
			out[i] = float64(math.Float32frombits(le32(chunk)))
		case backend.Float64:
			out[i] = math.Float64frombits(le64(chunk))
		default:
			return nil, &codec.UnsupportedError{What: "element kind " + t.String()}
		}
	}
	return out, nil
}

func encodeRaw(values []float64, t backend.ElemType) ([]byte, error) {
	buf := make([]byte, len(values)*t.Size())
	for i, v := range values {
		chunk := buf[i*t.Size() : (i+1)*t.Size()]
		switch t {
		case backend.Int8:
			chunk[0] = byte(int8(truncToward0(v, -128, 127)))
		case backend.UInt8:
			chunk[0] = byte(truncToward0(v, 0, 255))
		case backend.UInt16:
			putLE16(chunk, uint16(truncToward0(v, 0, 65535)))
		case backend.Float32:
			putLE32(chunk, math.Float32bits(float32(v)))
		default:
			return nil, &codec.UnsupportedError{What: "element kind " + t.String()}
		}
	}
	return buf, nil
}

// truncToward0 truncates v toward zero (not toward -Inf, unlike math.Floor)
// and clamps into [lo, hi], matching the original's C-style cast-to-int
// behaviour on write_and_translate.
func truncToward0(v, lo, hi float64) float64 {
	t := math.Trunc(v)
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}
	return t
}

func le16(b []byte) uint16 { return uint16(b[0]) | uint16(b[1])<<8 }
func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
func le64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
func putLE16(b []byte, v uint16) { b[0] = byte(v); b[1] = byte(v >> 8) }
func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
