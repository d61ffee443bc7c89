// Package geoindex provides an R-tree spatial index over the cartesian
// datasets (IMAGE/COMP/XSEC products) of one or more ODIM_H5 objects, so a
// caller holding many files open can answer "which datasets cover this
// bounding box" in O(log n) instead of scanning every object linearly.
package geoindex

import (
	"github.com/dhconnelly/rtreego"

	"github.com/arpa-simc/odimh5/internal/odimtree"
)

// Bounds is a geographic bounding box in decimal degrees.
type Bounds struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

// Intersects reports whether b and other overlap.
func (b Bounds) Intersects(other Bounds) bool {
	return b.MinLon <= other.MaxLon && b.MaxLon >= other.MinLon &&
		b.MinLat <= other.MaxLat && b.MaxLat >= other.MinLat
}

// Entry is one indexed cartesian dataset: the Object/Dataset pair plus the
// bounding box it was indexed under.
type Entry struct {
	Object  *odimtree.Object
	Dataset *odimtree.Dataset
	Bounds  Bounds
}

// indexedEntry adapts Entry to rtreego.Spatial.
type indexedEntry struct {
	entry Entry
}

// epsilon guards against rtreego's requirement for non-zero rectangle
// dimensions; a cartesian product whose corners happen to collapse onto a
// single point (degenerate input) still needs an indexable box.
const epsilon = 0.0001

func (e *indexedEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.entry.Bounds.MinLon, e.entry.Bounds.MinLat}

	lonLength := e.entry.Bounds.MaxLon - e.entry.Bounds.MinLon
	latLength := e.entry.Bounds.MaxLat - e.entry.Bounds.MinLat
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

// Index is an R-tree over cartesian-product dataset bounding boxes.
type Index struct {
	rtree   *rtreego.Rtree
	entries []Entry // linear fallback / full enumeration
}

// Build constructs an Index over every cartesian dataset (HasCartesianGeometry
// or HasVerticalGeometry) found in objects. A dataset whose Corners() read
// fails (e.g. a polar-only object) is skipped rather than aborting the whole
// build, since a mixed collection of PVOL/IMAGE files is the common case.
func Build(objects []*odimtree.Object) (*Index, error) {
	rtree := rtreego.NewTree(2, 25, 50)
	idx := &Index{rtree: rtree}

	for _, obj := range objects {
		count, err := obj.DatasetCount()
		if err != nil {
			return nil, err
		}
		for i := 0; i < count; i++ {
			ds, err := obj.Dataset(i)
			if err != nil {
				return nil, err
			}
			if !ds.HasCartesianGeometry() && !ds.HasVerticalGeometry() {
				continue
			}
			llLon, llLat, urLon, urLat, err := ds.Corners()
			if err != nil {
				continue
			}
			bounds := normalizeBounds(llLon, llLat, urLon, urLat)
			entry := Entry{Object: obj, Dataset: ds, Bounds: bounds}
			idx.entries = append(idx.entries, entry)
			rtree.Insert(&indexedEntry{entry: entry})
		}
	}
	return idx, nil
}

// normalizeBounds orders the LL/UR corner pair into Min/Max regardless of
// which corner the file actually stored first (ODIM only promises "lower
// left" and "upper right" by name, not by numeric ordering).
func normalizeBounds(llLon, llLat, urLon, urLat float64) Bounds {
	b := Bounds{MinLon: llLon, MinLat: llLat, MaxLon: urLon, MaxLat: urLat}
	if b.MinLon > b.MaxLon {
		b.MinLon, b.MaxLon = b.MaxLon, b.MinLon
	}
	if b.MinLat > b.MaxLat {
		b.MinLat, b.MaxLat = b.MaxLat, b.MinLat
	}
	return b
}

// Query returns every indexed entry whose bounding box intersects bounds.
func (idx *Index) Query(bounds Bounds) []Entry {
	if idx.rtree == nil || len(idx.entries) == 0 {
		return nil
	}
	point := rtreego.Point{bounds.MinLon, bounds.MinLat}
	lengths := []float64{bounds.MaxLon - bounds.MinLon, bounds.MaxLat - bounds.MinLat}
	rect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		return idx.queryLinear(bounds)
	}

	spatials := idx.rtree.SearchIntersect(rect)
	result := make([]Entry, 0, len(spatials))
	for _, s := range spatials {
		result = append(result, s.(*indexedEntry).entry)
	}
	return result
}

func (idx *Index) queryLinear(bounds Bounds) []Entry {
	result := make([]Entry, 0, len(idx.entries)/4)
	for _, e := range idx.entries {
		if e.Bounds.Intersects(bounds) {
			result = append(result, e)
		}
	}
	return result
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int { return len(idx.entries) }
