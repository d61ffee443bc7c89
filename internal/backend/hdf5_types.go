package backend

import (
	"fmt"

	"gonum.org/v1/hdf5"
)

type attrKindTag int

const (
	attrKindInt64 attrKindTag = iota
	attrKindFloat64
	attrKindString
)

// attrKind classifies an already-open attribute by its stored class, so
// GetAttribute can dispatch to the right native read. Integer and
// floating-point attributes are always written as 64-bit native types by
// this adapter (spec §4.4 capability 4); anything else is treated as the
// fixed-length ASCII string case.
func attrKind(attr *hdf5.Attribute) (attrKindTag, error) {
	dtype, err := attr.Datatype()
	if err != nil {
		return 0, err
	}
	defer dtype.Close()

	switch dtype.Class() {
	case hdf5.T_INTEGER:
		return attrKindInt64, nil
	case hdf5.T_FLOAT:
		return attrKindFloat64, nil
	default:
		return attrKindString, nil
	}
}

// nativeDatatype maps a matrix ElemType onto the HDF5 native type used to
// store and transfer it.
func nativeDatatype(t ElemType) (*hdf5.Datatype, error) {
	switch t {
	case Int8:
		return hdf5.T_NATIVE_SCHAR, nil
	case UInt8:
		return hdf5.T_NATIVE_UCHAR, nil
	case UInt16:
		return hdf5.T_NATIVE_USHORT, nil
	case Float32:
		return hdf5.T_NATIVE_FLOAT, nil
	case Float64:
		return hdf5.T_NATIVE_DOUBLE, nil
	default:
		return nil, fmt.Errorf("backend: no HDF5 datatype for element kind %v", t)
	}
}

// elemTypeFromDatatype is the inverse of nativeDatatype, used when opening
// an existing matrix whose element type was not already known.
func elemTypeFromDatatype(dtype *hdf5.Datatype) ElemType {
	size, _ := dtype.Size()
	switch dtype.Class() {
	case hdf5.T_INTEGER:
		signed := dtype.Sign() != hdf5.S_UNSIGNED
		switch {
		case size == 1 && signed:
			return Int8
		case size == 1:
			return UInt8
		case size == 2:
			return UInt16
		}
	case hdf5.T_FLOAT:
		switch size {
		case 4:
			return Float32
		case 8:
			return Float64
		}
	}
	return Opaque
}

// fixedStringType returns a copy of the C string datatype sized to hold s,
// including its NUL terminator, matching HDF5Attribute::set(const
// std::string&) in odimh5v21_hdf5.hpp which always writes fixed-length
// ASCII strings rather than variable-length ones.
func fixedStringType(size int) (*hdf5.Datatype, error) {
	dtype, err := hdf5.NewDatatypeFromType(hdf5.T_C_S1)
	if err != nil {
		return nil, err
	}
	if size < 1 {
		size = 1
	}
	if err := dtype.SetSize(size); err != nil {
		dtype.Close()
		return nil, err
	}
	return dtype, nil
}

// attrHost is the subset of HDF5 object methods needed to attach an
// attribute; *hdf5.CommonFG and *hdf5.Dataset both satisfy it through
// their embedded Location, so this package never needs to name the exact
// embedding either type uses.
type attrHost interface {
	AttrExists(name string) (bool, error)
	DeleteAttr(name string) error
	CreateAttribute(name string, dtype *hdf5.Datatype, space *hdf5.Dataspace) (*hdf5.Attribute, error)
}

func writeFixedString(loc attrHost, name, value string) error {
	dtype, err := fixedStringType(len(value) + 1)
	if err != nil {
		return wrap("write attribute", name, err)
	}
	defer dtype.Close()

	space, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		return wrap("write attribute", name, err)
	}
	defer space.Close()

	if exists, _ := loc.AttrExists(name); exists {
		if err := loc.DeleteAttr(name); err != nil {
			return wrap("replace attribute", name, err)
		}
	}

	attr, err := loc.CreateAttribute(name, dtype, space)
	if err != nil {
		return wrap("create attribute", name, err)
	}
	defer attr.Close()

	buf := []byte(value + "\x00")
	return wrap("write attribute", name, attr.Write(&buf, dtype))
}

func readFixedString(attr *hdf5.Attribute) (string, error) {
	dtype, err := attr.Datatype()
	if err != nil {
		return "", err
	}
	defer dtype.Close()
	size, err := dtype.Size()
	if err != nil {
		return "", err
	}
	buf := make([]byte, size)
	if err := attr.Read(&buf, dtype); err != nil {
		return "", err
	}
	return trimNUL(buf), nil
}

func trimNUL(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
