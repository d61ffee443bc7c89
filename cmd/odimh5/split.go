package main

import (
	"flag"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/codec"
	"github.com/arpa-simc/odimh5/internal/schema"
	"github.com/arpa-simc/odimh5/pkg/odim"
)

// combinedProducts are written as sibling datasets of one HVMI_* file
// instead of one file each (spec §8 scenario 6).
var combinedProducts = map[odim.ProductTag]bool{
	schema.ProductMAX: true,
	schema.ProductHSP: true,
	schema.ProductVSP: true,
}

// runSplit implements the HVMI splitter (spec §8 scenario 6, grounded on
// original_source/test/test-odimh5v21-prod-splitter.cc): for each dataset
// in an IMAGE/COMP source file not in {MAX, HSP, VSP}, write a new
// single-product file; MAX/HSP/VSP datasets instead go into one shared
// HVMI_<quantity>_<timestamp>.h5 file as sibling datasets.
func runSplit(logger zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("split", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("split: expected a single file argument")
	}
	path := fs.Arg(0)

	src, err := odim.OpenReadOnly(path)
	if err != nil {
		return fmt.Errorf("split: open %s: %w", path, err)
	}
	defer src.Close()

	obj := src.Object()
	kind := obj.Kind()
	if kind != odim.ObjectIMAGE && kind != odim.ObjectCOMP {
		return fmt.Errorf("split: %s is not an IMAGE or COMP object (got %s)", path, kind)
	}

	timestamp, err := fileTimestamp(obj)
	if err != nil {
		return err
	}

	count, err := obj.DatasetCount()
	if err != nil {
		return err
	}

	var combined []*odim.Dataset
	for i := 0; i < count; i++ {
		ds, err := obj.Dataset(i)
		if err != nil {
			return err
		}
		product, err := ds.Product()
		if err != nil {
			return fmt.Errorf("split: dataset %d: %w", i, err)
		}
		if combinedProducts[product] {
			combined = append(combined, ds)
			continue
		}
		name, err := standaloneFileName(ds, product, timestamp)
		if err != nil {
			return err
		}
		if err := writeSingleProductFile(obj, ds, kind, name); err != nil {
			return fmt.Errorf("split: writing %s: %w", name, err)
		}
		logger.Info().Str("file", name).Str("product", string(product)).Msg("wrote product file")
	}

	if len(combined) > 0 {
		quantity, err := firstQuantity(combined[0])
		if err != nil {
			return err
		}
		name := fmt.Sprintf("HVMI_%s_%s.h5", quantity, timestamp)
		if err := writeCombinedFile(obj, combined, kind, name); err != nil {
			return fmt.Errorf("split: writing %s: %w", name, err)
		}
		logger.Info().Str("file", name).Int("datasets", len(combined)).Msg("wrote combined HVMI file")
	}

	return nil
}

// fileTimestamp formats an object's what/date+what/time as YYYYMMDDhhmm,
// the truncated-to-minutes form the splitter's output names use.
func fileTimestamp(obj *odim.Object) (string, error) {
	date, err := obj.Date()
	if err != nil {
		return "", err
	}
	t, err := obj.Time()
	if err != nil {
		return "", err
	}
	if len(t) < 4 {
		return "", fmt.Errorf("split: what/time %q too short", t)
	}
	return date + t[:4], nil
}

func standaloneFileName(ds *odim.Dataset, product odim.ProductTag, timestamp string) (string, error) {
	quantity, err := firstQuantity(ds)
	if err != nil {
		return "", err
	}
	var prodpar string
	if product == schema.ProductVIL {
		v, err := ds.ProdparPair()
		if err != nil {
			return "", err
		}
		prodpar = fmt.Sprintf("%g-%g", v.Bottom, v.Top)
	} else {
		v, err := ds.ProdparFloat()
		if err == nil {
			prodpar = fmt.Sprintf("%g", v)
		}
	}
	if prodpar == "" {
		return fmt.Sprintf("ODIMH5V21_%s_%s_%s.h5", product, quantity, timestamp), nil
	}
	return fmt.Sprintf("ODIMH5V21_%s-%s_%s_%s.h5", product, prodpar, quantity, timestamp), nil
}

func firstQuantity(ds *odim.Dataset) (odim.QuantityTag, error) {
	count, err := ds.DataCount()
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "", fmt.Errorf("split: dataset has no data children")
	}
	data, err := ds.Data(0)
	if err != nil {
		return "", err
	}
	return data.Quantity()
}

func writeSingleProductFile(src *odim.Object, ds *odim.Dataset, kind odim.ObjectKind, path string) error {
	dst, err := odim.Create(path, src.Version(), kind)
	if err != nil {
		return err
	}
	defer dst.Close()

	if err := copyObjectAttributes(src, dst.Object()); err != nil {
		return err
	}
	newDS, err := dst.Object().CreateDataset(mustProduct(ds))
	if err != nil {
		return err
	}
	return copyDataset(ds, newDS)
}

func writeCombinedFile(src *odim.Object, datasets []*odim.Dataset, kind odim.ObjectKind, path string) error {
	dst, err := odim.Create(path, src.Version(), kind)
	if err != nil {
		return err
	}
	defer dst.Close()

	if err := copyObjectAttributes(src, dst.Object()); err != nil {
		return err
	}
	for _, ds := range datasets {
		newDS, err := dst.Object().CreateDataset(mustProduct(ds))
		if err != nil {
			return err
		}
		if err := copyDataset(ds, newDS); err != nil {
			return err
		}
	}
	return nil
}

func mustProduct(ds *odim.Dataset) odim.ProductTag {
	p, _ := ds.Product()
	return p
}

// copyObjectAttributes copies every what/where/how attribute from src to
// dst root groups verbatim.
func copyObjectAttributes(src, dst *odim.Object) error {
	srcWhat, err := src.What()
	if err != nil {
		return err
	}
	dstWhat, err := dst.What()
	if err != nil {
		return err
	}
	if err := copyGroupAttrs(srcWhat, dstWhat); err != nil {
		return err
	}

	srcWhere, err := src.Where()
	if err != nil {
		return err
	}
	dstWhere, err := dst.Where()
	if err != nil {
		return err
	}
	if err := copyGroupAttrs(srcWhere, dstWhere); err != nil {
		return err
	}

	srcHow, err := src.How()
	if err != nil {
		return err
	}
	dstHow, err := dst.How()
	if err != nil {
		return err
	}
	return copyGroupAttrs(srcHow, dstHow)
}

// copyDataset copies a dataset's what/where/how attributes, its data
// children (quantity attributes plus the verbatim matrix), and their
// quality children, from src to dst.
func copyDataset(src, dst *odim.Dataset) error {
	if err := copyGroups(src, dst); err != nil {
		return err
	}

	count, err := src.DataCount()
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		data, err := src.Data(i)
		if err != nil {
			return err
		}
		quantity, err := data.Quantity()
		if err != nil {
			return err
		}
		newData, err := dst.CreateData(quantity)
		if err != nil {
			return err
		}
		if err := copyDataNode(data, newData); err != nil {
			return err
		}
	}
	return nil
}

// groupAccessor is the common shape Object/Dataset/Data/Quality expose for
// their attribute groups; used so copyGroups works for any node kind.
type groupAccessor interface {
	What() (*codec.Group, error)
	Where() (*codec.Group, error)
	How() (*codec.Group, error)
}

func copyGroups(src, dst groupAccessor) error {
	srcWhat, err := src.What()
	if err != nil {
		return err
	}
	dstWhat, err := dst.What()
	if err != nil {
		return err
	}
	if err := copyGroupAttrs(srcWhat, dstWhat); err != nil {
		return err
	}
	srcWhere, err := src.Where()
	if err != nil {
		return err
	}
	dstWhere, err := dst.Where()
	if err != nil {
		return err
	}
	if err := copyGroupAttrs(srcWhere, dstWhere); err != nil {
		return err
	}
	srcHow, err := src.How()
	if err != nil {
		return err
	}
	dstHow, err := dst.How()
	if err != nil {
		return err
	}
	return copyGroupAttrs(srcHow, dstHow)
}

func copyDataNode(src, dst *odim.Data) error {
	if err := copyGroups(src, dst); err != nil {
		return err
	}

	elemType, err := src.Matrix().ElemType()
	if err != nil {
		return err
	}
	if elemType != backend.Opaque {
		rows, cols, err := src.Matrix().Dimensions()
		if err != nil {
			return err
		}
		buf := make([]byte, rows*cols*elemType.Size())
		if err := src.Matrix().Read(buf); err != nil {
			return err
		}
		if err := dst.Matrix().Write(buf, cols, rows, elemType); err != nil {
			return err
		}
	}

	qualityCount, err := src.QualityCount()
	if err != nil {
		return err
	}
	for i := 0; i < qualityCount; i++ {
		q, err := src.Quality(i)
		if err != nil {
			return err
		}
		newQ, err := dst.CreateQuality()
		if err != nil {
			return err
		}
		if err := copyGroups(q, newQ); err != nil {
			return err
		}
		qElemType, err := q.Matrix().ElemType()
		if err != nil {
			return err
		}
		if qElemType == backend.Opaque {
			continue
		}
		rows, cols, err := q.Matrix().Dimensions()
		if err != nil {
			return err
		}
		buf := make([]byte, rows*cols*qElemType.Size())
		if err := q.Matrix().Read(buf); err != nil {
			return err
		}
		if err := newQ.Matrix().Write(buf, cols, rows, qElemType); err != nil {
			return err
		}
	}
	return nil
}

func copyGroupAttrs(src, dst *codec.Group) error {
	names, err := src.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		v, ok, err := src.GetValue(name)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := dst.SetValue(name, v); err != nil {
			return err
		}
	}
	return nil
}
