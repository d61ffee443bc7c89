// Package backend defines the minimum surface the rest of the library
// needs from a hierarchical attributed store (component C4), and provides
// an implementation on top of HDF5 via gonum.org/v1/hdf5. The adapter is
// the only component that touches the store directly; everything above it
// (internal/codec, internal/matrix, internal/odimtree) talks to these
// interfaces only.
package backend

import "github.com/arpa-simc/odimh5/internal/codec"

// OpenMode selects how Store.Open treats the target path.
type OpenMode int

const (
	// ReadOnly opens an existing file for reading only.
	ReadOnly OpenMode = iota
	// ReadWrite opens an existing file for reading and writing.
	ReadWrite
	// Create truncates the target (or creates it if absent) for writing.
	Create
)

// Store is a single open file handle. It owns the root Group and must be
// closed exactly once; closing suppresses internal errors (spec §4.6: no
// error may escape a destruction path) but Close still reports failures a
// caller may want to log.
type Store interface {
	Root() Group
	Close() error
}

// Group is one HDF5 group: a node that may host attributes, child groups
// and at most one matrix Dataset (odimtree leaves use the latter).
type Group interface {
	Attributes

	// ChildNames lists the names of immediate children (groups and
	// datasets). The order is the store's own: the HDF5 adapter lists by
	// name, not by creation.
	ChildNames() ([]string, error)
	// HasChild reports whether a child group with this name exists.
	HasChild(name string) (bool, error)
	// OpenChild opens an existing child group.
	OpenChild(name string) (Group, error)
	// CreateChild creates and opens a new child group; it is an error for
	// name to already exist.
	CreateChild(name string) (Group, error)
	// RemoveChild deletes a child group and everything beneath it.
	RemoveChild(name string) error
	// RenameChild renames a child group in place, used to re-pack dense
	// 1..N numbering after RemoveChild (spec §3 invariant on dense
	// numbering).
	RenameChild(oldName, newName string) error

	// HasDataset/OpenDataset/CreateDataset/RemoveDataset manage the single
	// named matrix dataset a Data/Quality node owns.
	HasDataset(name string) (bool, error)
	OpenDataset(name string) (Dataset, error)
	CreateDataset(name string, elemType ElemType, rows, cols int) (Dataset, error)
	RemoveDataset(name string) error

	Close() error
}

// Attributes is the per-node attribute CRUD surface (spec §4.4 capability
// 4): 64-bit int, 64-bit float and fixed-length ASCII string values.
type Attributes interface {
	GetAttribute(name string) (codec.Value, bool, error)
	SetAttribute(name string, v codec.Value) error
	RemoveAttribute(name string) error
	AttributeNames() ([]string, error)
}

// ElemType is the closed set of atomic element types a Dataset may store
// (spec §4.3). Opaque is the sentinel returned by ElemType() when no
// matrix is present.
type ElemType int

const (
	Opaque ElemType = iota
	Int8
	UInt8
	UInt16
	Float32
	Float64
)

func (t ElemType) String() string {
	switch t {
	case Int8:
		return "int8"
	case UInt8:
		return "uint8"
	case UInt16:
		return "uint16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "opaque"
	}
}

// Size returns the element's size in bytes, or 0 for Opaque.
func (t ElemType) Size() int {
	switch t {
	case Int8, UInt8:
		return 1
	case UInt16:
		return 2
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// Dataset is a single fixed-shape 2-D matrix dataset (spec §4.3/§4.4
// capability 5). Row-major, shape [rows, cols].
type Dataset interface {
	ElemType() ElemType
	Dimensions() (rows, cols int, err error)

	// ReadInto reads the whole dataset into buf, which must be exactly
	// rows*cols*ElemType().Size() bytes, in row-major byte order matching
	// the native encoding of ElemType().
	ReadInto(buf []byte) error
	// WriteFrom writes buf, sized the same way, as the dataset's sole
	// contents.
	WriteFrom(buf []byte) error

	Close() error
}
