// Package factory is the single entry point for creating and opening ODIM_H5
// files: component C5. It owns the HDF5 file lifecycle (via internal/backend)
// and the root "Conventions" version guard, then hands back an
// internal/odimtree.Object wired to the concrete version and kind.
package factory

import (
	"os"
	"sync"

	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/codec"
	"github.com/arpa-simc/odimh5/internal/odimtree"
	"github.com/arpa-simc/odimh5/internal/schema"
)

var (
	skipVersionCheckOnce sync.Once
	skipVersionCheck     bool
)

// skipCheckVersion mirrors the original library's RADARLIB_SKIP_CHECK_VERSION
// escape hatch: read once as process-wide static state, not re-read per call,
// since the source treats it the same way.
func skipCheckVersion() bool {
	skipVersionCheckOnce.Do(func() {
		skipVersionCheck = os.Getenv("RADARLIB_SKIP_CHECK_VERSION") == "yes"
	})
	return skipVersionCheck
}

// File is an open ODIM_H5 file plus the root object it carries. Close
// releases the underlying backend.Store.
type File struct {
	store  backend.Store
	Object *odimtree.Object
}

func (f *File) Close() error { return f.store.Close() }

// Create creates a new, generic root object of kind at path, recreating the
// file if it already exists (odimh5v21_factory.hpp's create/createPolarVolume
// family: every create_* variant differs only in the object kind it stamps,
// so here they collapse into one function taking the kind as a parameter).
func Create(path string, version schema.Version, kind schema.ObjectKind) (*File, error) {
	store, err := backend.Open(path, backend.Create)
	if err != nil {
		return nil, err
	}
	root := store.Root()
	if err := root.SetAttribute(schema.AttributeConventions, codec.String(version.Conventions())); err != nil {
		store.Close()
		return nil, err
	}
	obj := odimtree.NewObject(root, version, kind)
	if err := obj.SetMandatoryDefaults(); err != nil {
		store.Close()
		return nil, err
	}
	return &File{store: store, Object: obj}, nil
}

// CreatePolarVolume creates a new PVOL root object.
func CreatePolarVolume(path string, version schema.Version) (*File, error) {
	return Create(path, version, schema.ObjectPVOL)
}

// CreateImage creates a new IMAGE root object.
func CreateImage(path string, version schema.Version) (*File, error) {
	return Create(path, version, schema.ObjectIMAGE)
}

// CreateComposite creates a new COMP root object.
func CreateComposite(path string, version schema.Version) (*File, error) {
	return Create(path, version, schema.ObjectCOMP)
}

// CreateXsec creates a new XSEC root object.
func CreateXsec(path string, version schema.Version) (*File, error) {
	return Create(path, version, schema.ObjectXSEC)
}

// Open opens an existing ODIM_H5 file for read-write access, classifying its
// root object from "what/object" and validating the root "Conventions"
// attribute against the versions this library knows, unless
// RADARLIB_SKIP_CHECK_VERSION=yes is set in the environment.
func Open(path string) (*File, error) {
	return openWithMode(path, backend.ReadWrite)
}

// OpenReadOnly is Open without write access.
func OpenReadOnly(path string) (*File, error) {
	return openWithMode(path, backend.ReadOnly)
}

func openWithMode(path string, mode backend.OpenMode) (*File, error) {
	store, err := backend.Open(path, mode)
	if err != nil {
		return nil, err
	}
	root := store.Root()

	version, err := checkConventions(root)
	if err != nil {
		store.Close()
		return nil, err
	}

	kind, err := odimtree.ClassifyRoot(root)
	if err != nil {
		store.Close()
		return nil, err
	}

	obj := odimtree.NewObject(root, version, kind)
	if err := obj.CheckMandatoryTree(); err != nil {
		store.Close()
		return nil, err
	}
	return &File{store: store, Object: obj}, nil
}

// checkConventions reads the root "Conventions" attribute and resolves it to
// a schema.Version, failing closed unless skipCheckVersion() is set.
func checkConventions(root backend.Group) (schema.Version, error) {
	v, ok, err := root.GetAttribute(schema.AttributeConventions)
	if err != nil {
		return 0, err
	}
	if !ok {
		if skipCheckVersion() {
			return schema.V2_1, nil
		}
		return 0, &codec.MissingAttributeError{Group: "/", Name: schema.AttributeConventions}
	}
	s := v.String()
	switch s {
	case schema.V2_0.Conventions():
		return schema.V2_0, nil
	case schema.V2_1.Conventions():
		return schema.V2_1, nil
	default:
		if skipCheckVersion() {
			return schema.V2_1, nil
		}
		return 0, &codec.FormatError{Group: "/", Name: schema.AttributeConventions, Value: s, Want: "ODIM_H5/V2_0 or ODIM_H5/V2_1"}
	}
}
