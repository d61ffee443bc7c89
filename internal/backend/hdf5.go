package backend

import (
	"fmt"

	"github.com/arpa-simc/odimh5/internal/codec"
	"gonum.org/v1/hdf5"
)

// hdf5Store is the Store implementation backed by a real HDF5 file via
// gonum.org/v1/hdf5's cgo bindings onto libhdf5. This is the only file in
// the module that imports the hdf5 package directly.
type hdf5Store struct {
	file *hdf5.File
	root *hdf5Group
}

// Open opens path under the given mode and returns its root group.
// Grounded on HDF5File::open in odimh5v21_hdf5.hpp, which exposes exactly
// these three modes.
func Open(path string, mode OpenMode) (Store, error) {
	var (
		f   *hdf5.File
		err error
	)
	switch mode {
	case ReadOnly:
		f, err = hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	case ReadWrite:
		f, err = hdf5.OpenFile(path, hdf5.F_ACC_RDWR)
	case Create:
		f, err = hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	default:
		return nil, &Error{Op: "open", Path: path, Err: fmt.Errorf("unknown open mode %d", mode)}
	}
	if err != nil {
		return nil, wrap("open", path, err)
	}
	return &hdf5Store{file: f, root: &hdf5Group{loc: &f.CommonFG, path: "/"}}, nil
}

func (s *hdf5Store) Root() Group { return s.root }

func (s *hdf5Store) Close() error {
	// Destruction paths suppress errors (spec §4.6); Close still returns
	// what it saw so a caller that wants to log it can.
	return wrap("close", "", s.file.Close())
}

// hdf5Group wraps an hdf5.Group (or the file's root CommonFG) and
// implements backend.Group.
type hdf5Group struct {
	loc  *hdf5.CommonFG
	grp  *hdf5.Group // nil for the root group, which is owned by the file
	path string      // for diagnostics only
}

func (g *hdf5Group) child(name string) *hdf5.CommonFG { return g.loc }

func (g *hdf5Group) ChildNames() ([]string, error) {
	n, err := g.loc.NumObjects()
	if err != nil {
		return nil, wrap("list children", g.path, err)
	}
	names := make([]string, 0, n)
	for i := uint(0); i < n; i++ {
		name, err := g.loc.ObjectNameByIndex(i)
		if err != nil {
			return nil, wrap("list children", g.path, err)
		}
		names = append(names, name)
	}
	return names, nil
}

func (g *hdf5Group) HasChild(name string) (bool, error) {
	names, err := g.ChildNames()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

func (g *hdf5Group) OpenChild(name string) (Group, error) {
	sub, err := g.loc.OpenGroup(name)
	if err != nil {
		return nil, wrap("open group", g.path+name, err)
	}
	return &hdf5Group{loc: &sub.CommonFG, grp: sub, path: g.path + name + "/"}, nil
}

func (g *hdf5Group) CreateChild(name string) (Group, error) {
	sub, err := g.loc.CreateGroup(name)
	if err != nil {
		return nil, wrap("create group", g.path+name, err)
	}
	return &hdf5Group{loc: &sub.CommonFG, grp: sub, path: g.path + name + "/"}, nil
}

func (g *hdf5Group) RemoveChild(name string) error {
	if err := g.loc.Delete(name); err != nil {
		return wrap("remove group", g.path+name, err)
	}
	return nil
}

func (g *hdf5Group) RenameChild(oldName, newName string) error {
	if err := g.loc.Move(oldName, newName); err != nil {
		return wrap("rename group", g.path+oldName, err)
	}
	return nil
}

func (g *hdf5Group) Close() error {
	if g.grp == nil {
		return nil // root group is closed implicitly with the file
	}
	return wrap("close group", g.path, g.grp.Close())
}

// --- attributes ---

func (g *hdf5Group) AttributeNames() ([]string, error) {
	n, err := g.loc.NumAttrs()
	if err != nil {
		return nil, wrap("list attributes", g.path, err)
	}
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name, err := g.loc.AttrNameByIndex(uint(i))
		if err != nil {
			return nil, wrap("list attributes", g.path, err)
		}
		names = append(names, name)
	}
	return names, nil
}

func (g *hdf5Group) GetAttribute(name string) (codec.Value, bool, error) {
	exists, err := g.loc.AttrExists(name)
	if err != nil {
		return codec.Value{}, false, wrap("stat attribute", g.path+name, err)
	}
	if !exists {
		return codec.Value{}, false, nil
	}
	attr, err := g.loc.OpenAttribute(name)
	if err != nil {
		return codec.Value{}, false, wrap("open attribute", g.path+name, err)
	}
	defer attr.Close()

	kind, err := attrKind(attr)
	if err != nil {
		return codec.Value{}, false, wrap("inspect attribute", g.path+name, err)
	}
	switch kind {
	case attrKindInt64:
		var v int64
		if err := attr.Read(&v, hdf5.T_NATIVE_LLONG); err != nil {
			return codec.Value{}, false, wrap("read attribute", g.path+name, err)
		}
		return codec.Int64(v), true, nil
	case attrKindFloat64:
		var v float64
		if err := attr.Read(&v, hdf5.T_NATIVE_DOUBLE); err != nil {
			return codec.Value{}, false, wrap("read attribute", g.path+name, err)
		}
		return codec.Float64(v), true, nil
	default:
		s, err := readFixedString(attr)
		if err != nil {
			return codec.Value{}, false, wrap("read attribute", g.path+name, err)
		}
		return codec.String(s), true, nil
	}
}

func (g *hdf5Group) SetAttribute(name string, v codec.Value) error {
	// Attributes in HDF5 are write-once per identity: overwriting means
	// delete-then-recreate, same as the original HDF5Attribute::set
	// overloads in odimh5v21_hdf5.hpp.
	exists, err := g.loc.AttrExists(name)
	if err != nil {
		return wrap("stat attribute", g.path+name, err)
	}
	if exists {
		if err := g.loc.DeleteAttr(name); err != nil {
			return wrap("replace attribute", g.path+name, err)
		}
	}

	space, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		return wrap("set attribute", g.path+name, err)
	}
	defer space.Close()

	switch v.Kind() {
	case codec.KindInt64:
		attr, err := g.loc.CreateAttribute(name, hdf5.T_NATIVE_LLONG, space)
		if err != nil {
			return wrap("create attribute", g.path+name, err)
		}
		defer attr.Close()
		val, _ := v.Int64() // guaranteed: Kind() already matched KindInt64 above
		return wrap("write attribute", g.path+name, attr.Write(&val, hdf5.T_NATIVE_LLONG))
	case codec.KindFloat64:
		attr, err := g.loc.CreateAttribute(name, hdf5.T_NATIVE_DOUBLE, space)
		if err != nil {
			return wrap("create attribute", g.path+name, err)
		}
		defer attr.Close()
		val, _ := v.Float64() // guaranteed: Kind() already matched KindFloat64 above
		return wrap("write attribute", g.path+name, attr.Write(&val, hdf5.T_NATIVE_DOUBLE))
	default:
		return writeFixedString(g.loc, name, v.String())
	}
}

func (g *hdf5Group) RemoveAttribute(name string) error {
	if err := g.loc.DeleteAttr(name); err != nil {
		return wrap("remove attribute", g.path+name, err)
	}
	return nil
}

// --- datasets ---

func (g *hdf5Group) HasDataset(name string) (bool, error) { return g.HasChild(name) }

func (g *hdf5Group) OpenDataset(name string) (Dataset, error) {
	ds, err := g.loc.OpenDataset(name)
	if err != nil {
		return nil, wrap("open dataset", g.path+name, err)
	}
	return &hdf5Dataset{ds: ds, path: g.path + name}, nil
}

func (g *hdf5Group) CreateDataset(name string, elemType ElemType, rows, cols int) (Dataset, error) {
	dtype, err := nativeDatatype(elemType)
	if err != nil {
		return nil, err
	}
	dims := []uint{uint(rows), uint(cols)}
	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return nil, wrap("create dataset", g.path+name, err)
	}
	defer space.Close()

	// Chunk shape equals the whole shape, deflate level 6 (spec §4.3).
	plist, err := hdf5.NewPropList(hdf5.P_DATASET_CREATE)
	if err != nil {
		return nil, wrap("create dataset", g.path+name, err)
	}
	defer plist.Close()
	if err := plist.SetChunk(dims); err != nil {
		return nil, wrap("create dataset", g.path+name, err)
	}
	if err := plist.SetDeflate(6); err != nil {
		return nil, wrap("create dataset", g.path+name, err)
	}

	ds, err := g.loc.CreateDatasetWith(name, dtype, space, plist)
	if err != nil {
		return nil, wrap("create dataset", g.path+name, err)
	}

	if elemType == UInt8 {
		if err := stampImageConvention(ds); err != nil {
			ds.Close()
			return nil, err
		}
	}
	return &hdf5Dataset{ds: ds, path: g.path + name, elemType: elemType}, nil
}

func (g *hdf5Group) RemoveDataset(name string) error {
	if err := g.loc.Delete(name); err != nil {
		return wrap("remove dataset", g.path+name, err)
	}
	return nil
}

// hdf5Dataset wraps an hdf5.Dataset.
type hdf5Dataset struct {
	ds       *hdf5.Dataset
	path     string
	elemType ElemType
}

func (d *hdf5Dataset) ElemType() ElemType {
	if d.elemType != Opaque {
		return d.elemType
	}
	dtype, err := d.ds.Datatype()
	if err != nil {
		return Opaque
	}
	defer dtype.Close()
	d.elemType = elemTypeFromDatatype(dtype)
	return d.elemType
}

func (d *hdf5Dataset) Dimensions() (rows, cols int, err error) {
	space := d.ds.Space()
	defer space.Close()
	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return 0, 0, wrap("inspect dataset", d.path, err)
	}
	if len(dims) != 2 {
		return 0, 0, &codec.FormatError{Name: d.path, Want: "2-D dataset"}
	}
	return int(dims[0]), int(dims[1]), nil
}

func (d *hdf5Dataset) ReadInto(buf []byte) error {
	return wrap("read dataset", d.path, d.ds.Read(&buf))
}

func (d *hdf5Dataset) WriteFrom(buf []byte) error {
	return wrap("write dataset", d.path, d.ds.Write(&buf))
}

func (d *hdf5Dataset) Close() error { return wrap("close dataset", d.path, d.ds.Close()) }

func stampImageConvention(ds *hdf5.Dataset) error {
	if err := writeFixedString(ds, "CLASS", "IMAGE"); err != nil {
		return err
	}
	return writeFixedString(ds, "IMAGE_VERSION", "1.2")
}
