// Package schema holds the OPERA ODIM_H5 constant tables: group and
// attribute names, the closed enumerations (object kind, product, quantity,
// method, software, polarization), and the mandatory-attribute sets per
// object/product kind.
//
// The source repeats nearly identical class hierarchies under a v2.0 and a
// v2.1 namespace. Here the version is a value, not a namespace: one set of
// types and operations, parameterised by a Version whose methods differ
// only where the two ODIM revisions actually differ.
package schema

// Version identifies which ODIM_H5 revision a file or factory targets.
type Version int

const (
	V2_0 Version = iota
	V2_1
)

func (v Version) String() string {
	switch v {
	case V2_0:
		return "ODIM_H5/V2_0"
	case V2_1:
		return "ODIM_H5/V2_1"
	default:
		return "unknown"
	}
}

// Conventions returns the exact root "Conventions" attribute value this
// version writes and expects on open.
func (v Version) Conventions() string {
	return v.String()
}

// Major/Minor return the model-version numbers this ODIM revision stamps
// into "what/version" (H5rad <Major>.<Minor>) by default.
func (v Version) Major() int { return 2 }

func (v Version) Minor() int {
	if v == V2_0 {
		return 0
	}
	return 1
}

// HasPairedAzimuthAngles reports whether this version is the one (v2.0)
// that encodes per-ray azimuth angles and times as paired "start:stop"
// values rather than the single-ended startaz/stopaz arrays of v2.1.
// internal/codec parses and formats the paired text; no dataset accessor
// in this module reads or writes either per-ray azimuth form.
func (v Version) HasPairedAzimuthAngles() bool {
	return v == V2_0
}

// HasElangles reports whether "how/elangles" (per-ray elevation angle
// sequence) is part of this version's attribute set. Present in both, kept
// as a version predicate because a handful of how-attributes (azangles,
// aztimes, MDS) were dropped between v2.0 and v2.1 and this is the pattern
// future removals would follow.
func (v Version) HasElangles() bool { return true }
