package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arpa-simc/odimh5/internal/schema"
)

// ModelVersion is the decoded form of "what/version": "H5rad <Major>.<Minor>".
type ModelVersion struct {
	Major int
	Minor int
}

func (v ModelVersion) String() string {
	return fmt.Sprintf("H5rad %d.%d", v.Major, v.Minor)
}

// ParseModelVersion decodes a "what/version" string.
func ParseModelVersion(s string) (ModelVersion, error) {
	var v ModelVersion
	n, err := fmt.Sscanf(s, "H5rad %d.%d", &v.Major, &v.Minor)
	if err != nil || n != 2 {
		return ModelVersion{}, &FormatError{Name: "version", Value: s, Want: "ModelVersion", Err: err}
	}
	return v, nil
}

// FromSchemaVersion builds the ModelVersion a given ODIM revision stamps by
// default.
func FromSchemaVersion(v schema.Version) ModelVersion {
	return ModelVersion{Major: v.Major(), Minor: v.Minor()}
}

// SourceInfo is the decoded form of "what/source": a comma-separated
// "KEY:value" list, keys drawn from the closed SourceKey set. Only the keys
// actually present in the original string round-trip; OriginatingCenter and
// Country are 0 when absent, matching the original's "0 means unset"
// convention for its two integer sub-fields.
type SourceInfo struct {
	WMO               string
	OperaRadarSite    string // RAD
	OriginatingCenter int    // ORG
	Place             string // PLC
	Country           int    // CTY
	Comment           string // CMT
}

// ParseSourceInfo decodes a "what/source" string.
func ParseSourceInfo(s string) (SourceInfo, error) {
	var info SourceInfo
	if strings.TrimSpace(s) == "" {
		return info, nil
	}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		pos := strings.Index(tok, ":")
		if pos != 3 {
			return SourceInfo{}, &FormatError{Name: "source", Value: s, Want: "SourceInfo"}
		}
		key, val := tok[:3], tok[4:]
		switch schema.SourceKey(key) {
		case schema.SourceWMO:
			info.WMO = val
		case schema.SourceRAD:
			info.OperaRadarSite = val
		case schema.SourceORG:
			n, err := strconv.Atoi(val)
			if err != nil {
				return SourceInfo{}, &FormatError{Name: "source", Value: s, Want: "SourceInfo.ORG", Err: err}
			}
			info.OriginatingCenter = n
		case schema.SourcePLC:
			info.Place = val
		case schema.SourceCTY:
			n, err := strconv.Atoi(val)
			if err != nil {
				return SourceInfo{}, &FormatError{Name: "source", Value: s, Want: "SourceInfo.CTY", Err: err}
			}
			info.Country = n
		case schema.SourceCMT:
			info.Comment = val
		default:
			return SourceInfo{}, &FormatError{Name: "source", Value: s, Want: "SourceInfo"}
		}
	}
	return info, nil
}

// String encodes the source back to "KEY:value,...", omitting every
// sub-field that is at its zero value, in SourceKeyOrder.
func (s SourceInfo) String() string {
	var parts []string
	if s.WMO != "" {
		parts = append(parts, string(schema.SourceWMO)+":"+s.WMO)
	}
	if s.OperaRadarSite != "" {
		parts = append(parts, string(schema.SourceRAD)+":"+s.OperaRadarSite)
	}
	if s.OriginatingCenter != 0 {
		parts = append(parts, string(schema.SourceORG)+":"+strconv.Itoa(s.OriginatingCenter))
	}
	if s.Place != "" {
		parts = append(parts, string(schema.SourcePLC)+":"+s.Place)
	}
	if s.Country != 0 {
		parts = append(parts, string(schema.SourceCTY)+":"+strconv.Itoa(s.Country))
	}
	if s.Comment != "" {
		parts = append(parts, string(schema.SourceCMT)+":"+s.Comment)
	}
	return strings.Join(parts, ",")
}

// AzimuthAnglePair is a ray's start/stop azimuth, "start:stop".
type AzimuthAnglePair struct {
	Start, Stop float64
}

func ParseAzimuthAnglePair(s string) (AzimuthAnglePair, error) {
	start, stop, err := splitPair(s, ':')
	if err != nil {
		return AzimuthAnglePair{}, &FormatError{Name: "azimuth angle pair", Value: s, Want: "AzimuthAnglePair", Err: err}
	}
	return AzimuthAnglePair{Start: start, Stop: stop}, nil
}

func (p AzimuthAnglePair) String() string {
	return formatFloat(p.Start) + ":" + formatFloat(p.Stop)
}

// ParseAzimuthAnglePairSequence decodes a comma-separated list of
// "start:stop" pairs (the v2.0 combined encoding). The single-ended
// "how/startazA"/"how/stopazA" sequences carry no ':' and are not
// decoded by it.
func ParseAzimuthAnglePairSequence(s string) ([]AzimuthAnglePair, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	toks := strings.Split(s, ",")
	out := make([]AzimuthAnglePair, len(toks))
	for i, t := range toks {
		p, err := ParseAzimuthAnglePair(t)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func FormatAzimuthAnglePairSequence(pairs []AzimuthAnglePair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}

// AzimuthTimePair is a ray's start/stop acquisition time, encoded as
// "HHMMSS.sss:HHMMSS.sss" seconds-since-midnight.
type AzimuthTimePair struct {
	Start, Stop float64 // seconds since midnight
}

func ParseAzimuthTimePair(s string) (AzimuthTimePair, error) {
	pos := strings.IndexByte(s, ':')
	if pos < 0 {
		return AzimuthTimePair{}, &FormatError{Name: "azimuth time pair", Value: s, Want: "AzimuthTimePair"}
	}
	start, err := parseHHMMSSsss(s[:pos])
	if err != nil {
		return AzimuthTimePair{}, &FormatError{Name: "azimuth time pair", Value: s, Want: "AzimuthTimePair", Err: err}
	}
	stop, err := parseHHMMSSsss(s[pos+1:])
	if err != nil {
		return AzimuthTimePair{}, &FormatError{Name: "azimuth time pair", Value: s, Want: "AzimuthTimePair", Err: err}
	}
	return AzimuthTimePair{Start: start, Stop: stop}, nil
}

func (p AzimuthTimePair) String() string {
	return formatHHMMSSsss(p.Start) + ":" + formatHHMMSSsss(p.Stop)
}

func parseHHMMSSsss(s string) (float64, error) {
	if len(s) < 6 {
		return 0, fmt.Errorf("time %q too short, want HHMMSS[.sss]", s)
	}
	hh, err := strconv.Atoi(s[0:2])
	if err != nil {
		return 0, err
	}
	mm, err := strconv.Atoi(s[2:4])
	if err != nil {
		return 0, err
	}
	ss, err := strconv.ParseFloat(s[4:], 64)
	if err != nil {
		return 0, err
	}
	return float64(hh*3600+mm*60) + ss, nil
}

func formatHHMMSSsss(secs float64) string {
	total := secs
	hh := int(total) / 3600
	mm := (int(total) % 3600) / 60
	ss := total - float64(hh*3600+mm*60)
	return fmt.Sprintf("%02d%02d%06.3f", hh, mm, ss)
}

// VilHeights is the bottom/top integration-layer height pair, "bottom,top".
type VilHeights struct {
	Bottom, Top float64
}

func ParseVilHeights(s string) (VilHeights, error) {
	bottom, top, err := splitPair(s, ',')
	if err != nil {
		return VilHeights{}, &FormatError{Name: "VIL heights", Value: s, Want: "VilHeights", Err: err}
	}
	return VilHeights{Bottom: bottom, Top: top}, nil
}

func (h VilHeights) String() string {
	return formatFloat(h.Bottom) + "," + formatFloat(h.Top)
}

func splitPair(s string, sep byte) (a, b float64, err error) {
	pos := strings.IndexByte(s, sep)
	if pos < 0 {
		return 0, 0, fmt.Errorf("missing separator %q in %q", string(sep), s)
	}
	a, err = strconv.ParseFloat(strings.TrimSpace(s[:pos]), 64)
	if err != nil {
		return 0, 0, err
	}
	b, err = strconv.ParseFloat(strings.TrimSpace(s[pos+1:]), 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
