package odim

import (
	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/codec"
	"github.com/arpa-simc/odimh5/internal/factory"
	"github.com/arpa-simc/odimh5/internal/odimtree"
	"github.com/arpa-simc/odimh5/internal/schema"
)

// Version identifies which ODIM_H5 revision a file targets.
type Version = schema.Version

const (
	V2_0 = schema.V2_0
	V2_1 = schema.V2_1
)

// ObjectKind is the closed set of root-level ODIM object kinds.
type ObjectKind = schema.ObjectKind

const (
	ObjectPVOL  = schema.ObjectPVOL
	ObjectCVOL  = schema.ObjectCVOL
	ObjectSCAN  = schema.ObjectSCAN
	ObjectRAY   = schema.ObjectRAY
	ObjectAZIM  = schema.ObjectAZIM
	ObjectIMAGE = schema.ObjectIMAGE
	ObjectCOMP  = schema.ObjectCOMP
	ObjectXSEC  = schema.ObjectXSEC
	ObjectVP    = schema.ObjectVP
	ObjectPIC   = schema.ObjectPIC
)

// ProductTag is the closed set of dataset product tags.
type ProductTag = schema.ProductTag

const (
	ProductSCAN  = schema.ProductSCAN
	ProductPPI   = schema.ProductPPI
	ProductCAPPI = schema.ProductCAPPI
	ProductCOMP  = schema.ProductCOMP
	ProductXSEC  = schema.ProductXSEC
	ProductVP    = schema.ProductVP
	ProductRHI   = schema.ProductRHI
	ProductRAY   = schema.ProductRAY
	ProductAZIM  = schema.ProductAZIM
)

// QuantityTag is the closed set of measured-quantity names.
type QuantityTag = schema.QuantityTag

const (
	QuantityDBZH = schema.QuantityDBZH
	QuantityVRAD = schema.QuantityVRAD
	QuantityWRAD = schema.QuantityWRAD
	QuantityTH   = schema.QuantityTH
)

// ElemType is the closed set of atomic element types a matrix may store.
type ElemType = backend.ElemType

const (
	UInt8   = backend.UInt8
	UInt16  = backend.UInt16
	Int8    = backend.Int8
	Float32 = backend.Float32
	Float64 = backend.Float64
)

// SourceInfo is the decoded "what/source" composite attribute.
type SourceInfo = codec.SourceInfo

// ModelVersion is the decoded "what/version" composite attribute.
type ModelVersion = codec.ModelVersion

// VilHeights is the decoded "what/prodpar" composite for VIL datasets.
type VilHeights = codec.VilHeights

// Object, Dataset, Data and Quality are the tree node types making up an
// ODIM_H5 object: see internal/odimtree for their full method surface
// (attribute accessors, mandatory-attribute checks, product capability
// predicates, matrix read/write).
type (
	Object  = odimtree.Object
	Dataset = odimtree.Dataset
	Data    = odimtree.Data
	Quality = odimtree.Quality
)

// Point is a geographic longitude/latitude pair, used by Dataset's corner
// accessors (Corners, UL, LR, SetCorners).
type Point = odimtree.Point

// Direction is a polar scan's rotation sense, as reported by Dataset.Direction.
type Direction = odimtree.Direction

const (
	Clockwise        = odimtree.Clockwise
	CounterClockwise = odimtree.CounterClockwise
)

// OriginalRayIndex maps a 0-based ray position back to its original
// acquisition index; see internal/odimtree.OriginalRayIndex.
func OriginalRayIndex(i int, direction Direction, nrays, a1gate int) int {
	return odimtree.OriginalRayIndex(i, direction, nrays, a1gate)
}

// File is an open ODIM_H5 file plus the root Object it carries.
type File struct {
	inner *factory.File
}

// Object returns the file's root ODIM object.
func (f *File) Object() *Object { return f.inner.Object }

// Close releases the underlying file handle.
func (f *File) Close() error { return f.inner.Close() }

func wrap(inner *factory.File, err error) (*File, error) {
	if err != nil {
		return nil, err
	}
	return &File{inner: inner}, nil
}

// CreatePolarVolume creates a new PVOL file at path, truncating it if it
// already exists.
func CreatePolarVolume(path string, version Version) (*File, error) {
	return wrap(factory.CreatePolarVolume(path, version))
}

// CreateImage creates a new IMAGE file at path.
func CreateImage(path string, version Version) (*File, error) {
	return wrap(factory.CreateImage(path, version))
}

// CreateComposite creates a new COMP file at path.
func CreateComposite(path string, version Version) (*File, error) {
	return wrap(factory.CreateComposite(path, version))
}

// CreateXsec creates a new XSEC file at path.
func CreateXsec(path string, version Version) (*File, error) {
	return wrap(factory.CreateXsec(path, version))
}

// Create creates a new root object of the given kind at path.
func Create(path string, version Version, kind ObjectKind) (*File, error) {
	return wrap(factory.Create(path, version, kind))
}

// Open opens an existing ODIM_H5 file for read-write access, classifying its
// root object and validating its "Conventions" attribute (see
// internal/factory.Open for the RADARLIB_SKIP_CHECK_VERSION override).
func Open(path string) (*File, error) {
	return wrap(factory.Open(path))
}

// OpenReadOnly opens an existing ODIM_H5 file for read-only access.
func OpenReadOnly(path string) (*File, error) {
	return wrap(factory.OpenReadOnly(path))
}
