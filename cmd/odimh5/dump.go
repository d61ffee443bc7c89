package main

import (
	"flag"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arpa-simc/odimh5/pkg/odim"
)

// runDump walks an ODIM_H5 file's Object/Dataset/Data/Quality tree and
// prints the object kind, date and time, each dataset's product, each data
// node's quantity, gain, offset, element type and shape, and one line per
// quality child (other attributes are not printed), the way the original
// library's own textual dump tool does (spec §1 lists that tool as an
// out-of-scope collaborator; only the walk-and-print behavior is
// reimplemented here, not its formatter).
func runDump(logger zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("dump: expected a single file argument")
	}
	path := fs.Arg(0)

	f, err := odim.OpenReadOnly(path)
	if err != nil {
		return fmt.Errorf("dump: open %s: %w", path, err)
	}
	defer f.Close()

	obj := f.Object()
	kind := obj.Kind()
	date, _ := obj.Date()
	time, _ := obj.Time()
	fmt.Printf("object: %s  date: %s  time: %s\n", kind, date, time)

	count, err := obj.DatasetCount()
	if err != nil {
		return fmt.Errorf("dump: dataset count: %w", err)
	}
	for i := 0; i < count; i++ {
		ds, err := obj.Dataset(i)
		if err != nil {
			return fmt.Errorf("dump: open dataset %d: %w", i, err)
		}
		dumpDataset(logger, i, ds)
	}
	return nil
}

func dumpDataset(logger zerolog.Logger, index int, ds *odim.Dataset) {
	product, err := ds.Product()
	if err != nil {
		logger.Warn().Int("dataset", index).Err(err).Msg("missing product tag")
		product = ""
	}
	fmt.Printf("  dataset%d: product=%s\n", index, product)

	dataCount, err := ds.DataCount()
	if err != nil {
		logger.Warn().Int("dataset", index).Err(err).Msg("data count")
		return
	}
	for j := 0; j < dataCount; j++ {
		data, err := ds.Data(j)
		if err != nil {
			logger.Warn().Int("dataset", index).Int("data", j).Err(err).Msg("open data")
			continue
		}
		quantity, _ := data.Quantity()
		gain, _ := data.Gain()
		offset, _ := data.Offset()
		elemType, _ := data.Matrix().ElemType()
		rows, cols, _ := data.Matrix().Dimensions()
		fmt.Printf("    data%d: quantity=%s gain=%g offset=%g elemType=%s shape=%dx%d\n",
			j, quantity, gain, offset, elemType, rows, cols)

		qualityCount, err := data.QualityCount()
		if err != nil {
			continue
		}
		for k := 0; k < qualityCount; k++ {
			fmt.Printf("      quality%d\n", k)
		}
	}
}
