package odimtree

import "github.com/arpa-simc/odimh5/internal/schema"

// Dataset is a single Go type for every product kind; the source's
// per-product C++ subclass hierarchy (PolarScan, Image, Composite, Xsec,
// VerticalProfile, ...) is replaced here by a tag (Product()) plus a
// handful of narrow capability checks, since the only thing that actually
// varies between product kinds is which attribute surface is mandatory
// and meaningful — not behaviour (spec §9 Design Notes: polymorphism
// redesign).

// HasPolarGeometry reports whether this dataset's product carries the
// polar (elangle/nbins/rstart/rscale/nrays/a1gate) where-attribute surface.
func (d *Dataset) HasPolarGeometry() bool {
	switch mustProduct(d) {
	case schema.ProductSCAN, schema.ProductRAY, schema.ProductAZIM:
		return true
	default:
		return false
	}
}

// HasCartesianGeometry reports whether this dataset's product carries the
// 2-D cartesian grid where-attribute surface.
func (d *Dataset) HasCartesianGeometry() bool {
	return schema.HorizontalProducts[mustProduct(d)]
}

// HasVerticalGeometry reports whether this dataset's product carries the
// vertical cross-section where-attribute surface.
func (d *Dataset) HasVerticalGeometry() bool {
	return schema.VerticalProducts[mustProduct(d)]
}

// HasHowPolar reports whether the how group is expected to carry the
// polar-radar telemetry attributes (beamwidth, wavelength, pulsewidth...).
func (d *Dataset) HasHowPolar() bool {
	return d.HasPolarGeometry()
}

// mustProduct reads the product tag, returning "" on error; used only by
// the boolean capability checks above, where a read failure should simply
// mean "no, this dataset doesn't have that shape" rather than panic.
func mustProduct(d *Dataset) schema.ProductTag {
	p, err := d.Product()
	if err != nil {
		return ""
	}
	return p
}
