package schema

// ObjectKind is the closed set of root-level ODIM object kinds (what/object).
type ObjectKind string

const (
	ObjectPVOL  ObjectKind = "PVOL"
	ObjectCVOL  ObjectKind = "CVOL"
	ObjectSCAN  ObjectKind = "SCAN"
	ObjectRAY   ObjectKind = "RAY"
	ObjectAZIM  ObjectKind = "AZIM"
	ObjectIMAGE ObjectKind = "IMAGE"
	ObjectCOMP  ObjectKind = "COMP"
	ObjectXSEC  ObjectKind = "XSEC"
	ObjectVP    ObjectKind = "VP"
	ObjectPIC   ObjectKind = "PIC"
)

// IsObjectKind reports whether value names one of the closed ODIM object
// kinds (Specification::isObject in the original source).
func IsObjectKind(value string) bool {
	switch ObjectKind(value) {
	case ObjectPVOL, ObjectCVOL, ObjectSCAN, ObjectRAY, ObjectAZIM,
		ObjectIMAGE, ObjectCOMP, ObjectXSEC, ObjectVP, ObjectPIC:
		return true
	}
	return false
}

// ProductTag is the closed set of dataset product tags (what/product).
type ProductTag string

const (
	ProductSCAN    ProductTag = "SCAN"
	ProductPPI     ProductTag = "PPI"
	ProductCAPPI   ProductTag = "CAPPI"
	ProductPCAPPI  ProductTag = "PCAPPI"
	ProductETOP    ProductTag = "ETOP"
	ProductMAX     ProductTag = "MAX"
	ProductRR      ProductTag = "RR"
	ProductVIL     ProductTag = "VIL"
	ProductCOMP    ProductTag = "COMP"
	ProductVP      ProductTag = "VP"
	ProductRHI     ProductTag = "RHI"
	ProductXSEC    ProductTag = "XSEC"
	ProductVSP     ProductTag = "VSP"
	ProductHSP     ProductTag = "HSP"
	ProductRAY     ProductTag = "RAY"
	ProductAZIM    ProductTag = "AZIM"
	ProductQUAL    ProductTag = "QUAL"
	ProductLBMArpa ProductTag = "NEW:LBM_ARPA" // non-standard extension, round-tripped only
)

// HorizontalProducts share the 2-D cartesian attribute surface.
var HorizontalProducts = map[ProductTag]bool{
	ProductPPI: true, ProductCAPPI: true, ProductPCAPPI: true, ProductETOP: true,
	ProductMAX: true, ProductRR: true, ProductVIL: true, ProductLBMArpa: true, ProductCOMP: true,
}

// VerticalProducts share the vertical cross-section attribute surface.
var VerticalProducts = map[ProductTag]bool{
	ProductXSEC: true, ProductRHI: true, ProductHSP: true, ProductVSP: true,
}

// QuantityTag is the closed set of measured-quantity names (what/quantity).
type QuantityTag string

const (
	QuantityTH     QuantityTag = "TH"
	QuantityTV     QuantityTag = "TV"
	QuantityDBZH   QuantityTag = "DBZH"
	QuantityDBZV   QuantityTag = "DBZV"
	QuantityVRAD   QuantityTag = "VRAD"
	QuantityWRAD   QuantityTag = "WRAD"
	QuantityZDR    QuantityTag = "ZDR"
	QuantityRHOHV  QuantityTag = "RHOHV"
	QuantityLDR    QuantityTag = "LDR"
	QuantityPHIDP  QuantityTag = "PHIDP"
	QuantityKDP    QuantityTag = "KDP"
	QuantitySQI    QuantityTag = "SQI"
	QuantitySNR    QuantityTag = "SNR"
	QuantityRATE   QuantityTag = "RATE"
	QuantityACRR   QuantityTag = "ACRR"
	QuantityHGHT   QuantityTag = "HGHT"
	QuantityVIL    QuantityTag = "VIL"
	QuantityUWND   QuantityTag = "UWND"
	QuantityVWND   QuantityTag = "VWND"
	QuantityBRDR   QuantityTag = "BRDR"
	QuantityQIND   QuantityTag = "QIND"
	QuantityCLASS  QuantityTag = "CLASS"

	// Vertical-profile specific quantities (lowercase per standard).
	QuantityFF      QuantityTag = "ff"
	QuantityDD      QuantityTag = "dd"
	QuantityFFDev   QuantityTag = "ff_dev"
	QuantityDDDev   QuantityTag = "dd_dev"
	QuantityN       QuantityTag = "n"
	QuantityDBZ     QuantityTag = "dbz"
	QuantityDBZDev  QuantityTag = "dbz_dev"
	QuantityZ       QuantityTag = "z"
	QuantityZDev    QuantityTag = "z_dev"
	QuantityW       QuantityTag = "w"
	QuantityWDev    QuantityTag = "w_dev"
	QuantityDiv     QuantityTag = "div"
	QuantityDivDev  QuantityTag = "div_dev"
	QuantityDef     QuantityTag = "def"
	QuantityDefDev  QuantityTag = "def_dev"
	QuantityAD      QuantityTag = "ad"
	QuantityADDev   QuantityTag = "ad_dev"
	QuantityChi2    QuantityTag = "chi2"
	QuantityRhohv2  QuantityTag = "rhohv"
	QuantityRhohvDv QuantityTag = "rhohv_dev"
)

// StandardQuantities lists every quantity tag defined by the standard
// (Specification::getStandardQuantities in the original source).
var StandardQuantities = []QuantityTag{
	QuantityTH, QuantityTV, QuantityDBZH, QuantityDBZV, QuantityZDR, QuantityRHOHV,
	QuantityLDR, QuantityPHIDP, QuantityKDP, QuantitySQI, QuantitySNR, QuantityRATE,
	QuantityACRR, QuantityHGHT, QuantityVIL, QuantityVRAD, QuantityWRAD, QuantityUWND,
	QuantityVWND, QuantityBRDR, QuantityQIND, QuantityCLASS,
	QuantityFF, QuantityDD, QuantityFFDev, QuantityDDDev, QuantityN, QuantityDBZ,
	QuantityDBZDev, QuantityZ, QuantityZDev, QuantityW, QuantityWDev, QuantityDiv,
	QuantityDivDev, QuantityDef, QuantityDefDev, QuantityAD, QuantityADDev, QuantityChi2,
	QuantityRhohv2, QuantityRhohvDv,
}

// SourceKey is one of the six closed keys of a SourceInfo composite.
type SourceKey string

const (
	SourceWMO SourceKey = "WMO"
	SourceRAD SourceKey = "RAD"
	SourceORG SourceKey = "ORG"
	SourcePLC SourceKey = "PLC"
	SourceCTY SourceKey = "CTY"
	SourceCMT SourceKey = "CMT"
)

// SourceKeyOrder is the canonical emission order for SourceInfo.String().
var SourceKeyOrder = []SourceKey{SourceWMO, SourceRAD, SourceORG, SourcePLC, SourceCTY, SourceCMT}

// IsSourceKey reports whether k is one of the six closed SourceInfo keys.
func IsSourceKey(k string) bool {
	switch SourceKey(k) {
	case SourceWMO, SourceRAD, SourceORG, SourcePLC, SourceCTY, SourceCMT:
		return true
	}
	return false
}

// Method is the closed set of processing-method tokens used by several
// how-attributes (azmethod, binmethod, camethod).
type Method string

const (
	MethodNearest  Method = "NEAREST"
	MethodInterpol Method = "INTERPOL"
	MethodAverage  Method = "AVERAGE"
	MethodRandom   Method = "RANDOM"
	MethodMDE      Method = "MDE"
	MethodLatest   Method = "LATEST"
	MethodMaximum  Method = "MAXIMUM"
	MethodDomain   Method = "DOMAIN"
	MethodVAD      Method = "VAD"
	MethodVVP      Method = "VVP"
	MethodRGA      Method = "RGA"
)

func IsMethod(value string) bool {
	switch Method(value) {
	case MethodNearest, MethodInterpol, MethodAverage, MethodRandom, MethodMDE,
		MethodLatest, MethodMaximum, MethodDomain, MethodVAD, MethodVVP, MethodRGA:
		return true
	}
	return false
}

// Software is the closed set of acquisition/processing software names.
type Software string

const (
	SoftwareCastor   Software = "CASTOR"
	SoftwareEdge     Software = "EDGE"
	SoftwareFrog     Software = "FROG"
	SoftwareIris     Software = "IRIS"
	SoftwareNordrad  Software = "NORDRAD"
	SoftwareRadarnet Software = "RADARNET"
	SoftwareRainbow  Software = "RAINBOW"
)

func IsSoftware(value string) bool {
	switch Software(value) {
	case SoftwareCastor, SoftwareEdge, SoftwareFrog, SoftwareIris, SoftwareNordrad,
		SoftwareRadarnet, SoftwareRainbow:
		return true
	}
	return false
}

// Polarization is H or V.
type Polarization string

const (
	PolarizationH Polarization = "H"
	PolarizationV Polarization = "V"
)

func IsPolarization(value string) bool {
	return Polarization(value) == PolarizationH || Polarization(value) == PolarizationV
}
