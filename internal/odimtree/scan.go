package odimtree

import (
	"github.com/arpa-simc/odimh5/internal/schema"
)

// ListScanElevationAngles returns the where/elangle of every dataset
// directly under this object, in dataset order. Datasets are not filtered
// by product; one without where/elangle makes the call fail.
func (o *Object) ListScanElevationAngles() ([]float64, error) {
	count, err := o.DatasetCount()
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		ds, err := o.Dataset(i)
		if err != nil {
			return nil, err
		}
		angle, err := ds.Elangle()
		if err != nil {
			return nil, err
		}
		out = append(out, angle)
	}
	return out, nil
}

// ListDistinctElevationAngles is ListScanElevationAngles deduplicated,
// preserving first-seen order.
func (o *Object) ListDistinctElevationAngles() ([]float64, error) {
	all, err := o.ListScanElevationAngles()
	if err != nil {
		return nil, err
	}
	seen := make(map[float64]bool, len(all))
	out := make([]float64, 0, len(all))
	for _, a := range all {
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out, nil
}

// ScansWithin returns the 0-based indices of dataset children whose
// elangle falls within [lo, hi] inclusive.
func (o *Object) ScansWithin(lo, hi float64) ([]int, error) {
	count, err := o.DatasetCount()
	if err != nil {
		return nil, err
	}
	var out []int
	for i := 0; i < count; i++ {
		ds, err := o.Dataset(i)
		if err != nil {
			return nil, err
		}
		angle, err := ds.Elangle()
		if err != nil {
			return nil, err
		}
		if angle >= lo && angle <= hi {
			out = append(out, i)
		}
	}
	return out, nil
}

// ScansCarryingQuantity returns the 0-based dataset indices that own a
// data child for the given quantity.
func (o *Object) ScansCarryingQuantity(quantity schema.QuantityTag) ([]int, error) {
	count, err := o.DatasetCount()
	if err != nil {
		return nil, err
	}
	var out []int
	for i := 0; i < count; i++ {
		ds, err := o.Dataset(i)
		if err != nil {
			return nil, err
		}
		dataCount, err := ds.DataCount()
		if err != nil {
			return nil, err
		}
		for j := 0; j < dataCount; j++ {
			data, err := ds.Data(j)
			if err != nil {
				return nil, err
			}
			q, err := data.Quantity()
			if err != nil {
				return nil, err
			}
			if q == quantity {
				out = append(out, i)
				break
			}
		}
	}
	return out, nil
}

// Direction is a polar scan's rotation sense.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (dir Direction) String() string {
	if dir == Clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}

// Direction reports this polar dataset's rotation sense: Clockwise if
// "how/rpm" is positive, CounterClockwise if negative. When rpm is
// absent or zero, it falls back to the monotonicity of "how/startazT":
// strictly non-decreasing implies clockwise, anything else
// counter-clockwise.
func (d *Dataset) Direction() (Direction, error) {
	rpm, err := d.Rpm()
	if err != nil {
		return Clockwise, err
	}
	if rpm > 0 {
		return Clockwise, nil
	}
	if rpm < 0 {
		return CounterClockwise, nil
	}

	startazT, err := d.StartazT()
	if err != nil {
		return Clockwise, err
	}
	for i := 1; i < len(startazT); i++ {
		if startazT[i] < startazT[i-1] {
			return CounterClockwise, nil
		}
	}
	return Clockwise, nil
}

// OriginalRayIndex maps a 0-based position i in acquisition order to the
// stored ray index within a polar dataset of nrays rays whose first-acquired
// ray is stored at index a1gate, for iterating rays in acquisition order
// (where/a1gate, where/nrays).
func OriginalRayIndex(i int, direction Direction, nrays, a1gate int) int {
	if direction == Clockwise {
		return floorMod(i+a1gate, nrays)
	}
	return floorMod(nrays+a1gate-i, nrays)
}

// floorMod is the mathematical (always non-negative) modulo, unlike Go's
// %, which carries the sign of its dividend.
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
