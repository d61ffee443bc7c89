package odim

import "github.com/arpa-simc/odimh5/internal/geoindex"

// Bounds is a geographic bounding box in decimal degrees.
type Bounds = geoindex.Bounds

// GeoEntry is one indexed cartesian dataset.
type GeoEntry = geoindex.Entry

// GeoIndex is an R-tree spatial index over the cartesian-product datasets
// (IMAGE/COMP/XSEC) of a batch of objects, for fast "what covers this area"
// queries over many open files.
type GeoIndex struct {
	inner *geoindex.Index
}

// NewGeoIndex builds a GeoIndex over every cartesian or vertical dataset
// found across objects.
func NewGeoIndex(objects []*Object) (*GeoIndex, error) {
	inner, err := geoindex.Build(objects)
	if err != nil {
		return nil, err
	}
	return &GeoIndex{inner: inner}, nil
}

// Query returns every indexed dataset whose bounding box intersects bounds.
func (g *GeoIndex) Query(bounds Bounds) []GeoEntry { return g.inner.Query(bounds) }

// Len returns the number of indexed datasets.
func (g *GeoIndex) Len() int { return g.inner.Len() }
