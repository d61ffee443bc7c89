package schema

// AttributeSet is an unordered set of attribute names, used to describe
// which attributes an object/dataset/data/quality node of a given kind must
// carry before it is considered well-formed (the "mandatory-information
// protocol" of the root spec, modelled on
// Specification::getStandardAttributes/isMandatory in the original source).
type AttributeSet map[string]bool

func newSet(names ...string) AttributeSet {
	s := make(AttributeSet, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// Has reports whether name is a member of the set.
func (s AttributeSet) Has(name string) bool { return s[name] }

// rootMandatory is mandatory on every object's what group regardless of
// object kind.
var rootMandatory = newSet(
	AttrWhatObject, AttrWhatVersion, AttrWhatDate, AttrWhatTime, AttrWhatSource,
)

// RootMandatoryWhat returns the attributes every root object's what group
// must carry.
func RootMandatoryWhat() AttributeSet { return rootMandatory }

// ObjectMandatoryWhere returns the mandatory where-attributes for a root
// object of the given kind. Polar-volume/scan-like objects carry the radar
// site; cartesian composites and images do not (their where group lives on
// each dataset instead).
func ObjectMandatoryWhere(kind ObjectKind) AttributeSet {
	switch kind {
	case ObjectPVOL, ObjectCVOL, ObjectSCAN, ObjectRAY, ObjectAZIM:
		return newSet(AttrWhereLon, AttrWhereLat, AttrWhereHeight)
	default:
		return newSet()
	}
}

// DatasetMandatoryWhat returns the mandatory what-attributes for a dataset
// carrying the given product tag.
func DatasetMandatoryWhat(product ProductTag) AttributeSet {
	base := newSet(AttrWhatProduct, AttrWhatStartdate, AttrWhatStarttime, AttrWhatEnddate, AttrWhatEndtime)
	switch product {
	case ProductCAPPI, ProductPCAPPI, ProductETOP, ProductVIL, ProductVP, ProductCOMP:
		base[AttrWhatProdpar] = true
	}
	return base
}

// DatasetMandatoryWhere returns the mandatory where-attributes for a
// dataset of the given product, distinguishing the polar, cartesian and
// vertical-profile geometry surfaces.
func DatasetMandatoryWhere(product ProductTag) AttributeSet {
	switch {
	case product == ProductSCAN || product == ProductRAY || product == ProductAZIM:
		return newSet(
			AttrWhereElangle, AttrWhereNbins, AttrWhereRstart, AttrWhereRscale,
			AttrWhereNrays, AttrWhereA1gate,
		)
	case HorizontalProducts[product]:
		return newSet(
			AttrWhereProjdef, AttrWhereXsize, AttrWhereYsize, AttrWhereXscale, AttrWhereYscale,
			AttrWhereLLLon, AttrWhereLLLat, AttrWhereURLon, AttrWhereURLat,
		)
	case VerticalProducts[product]:
		return newSet(
			AttrWhereMinheight, AttrWhereMaxheight,
			AttrWhereStartLon, AttrWhereStartLat, AttrWhereStopLon, AttrWhereStopLat,
		)
	case product == ProductVP:
		return newSet(AttrWhereLevels, AttrWhereInterval, AttrWhereHeight)
	default:
		return newSet()
	}
}

// DataMandatoryWhat returns the mandatory what-attributes every data node
// must carry: the quantity tag plus gain, offset, nodata and undetect.
// Quality nodes carry no quantity and are not checked against this set.
var dataMandatory = newSet(AttrWhatQuantity, AttrWhatGain, AttrWhatOffset, AttrWhatNodata, AttrWhatUndetect)

func DataMandatoryWhat() AttributeSet { return dataMandatory }
