package schema

// Attribute names, grouped by the what/where/how group that hosts them.
// Names follow odimh5v21_const.cpp exactly (v2.0 uses the same strings).
// The mandatory sets in mandatory.go are the same for both revisions.
const (
	// what
	AttrWhatObject    = "object"
	AttrWhatVersion   = "version"
	AttrWhatDate      = "date"
	AttrWhatTime      = "time"
	AttrWhatSource    = "source"
	AttrWhatProduct   = "product"
	AttrWhatProdpar   = "prodpar"
	AttrWhatQuantity  = "quantity"
	AttrWhatStartdate = "startdate"
	AttrWhatStarttime = "starttime"
	AttrWhatEnddate   = "enddate"
	AttrWhatEndtime   = "endtime"
	AttrWhatGain      = "gain"
	AttrWhatOffset    = "offset"
	AttrWhatNodata    = "nodata"
	AttrWhatUndetect  = "undetect"

	// where — site geometry
	AttrWhereLon    = "lon"
	AttrWhereLat    = "lat"
	AttrWhereHeight = "height"

	// where — polar
	AttrWhereElangle = "elangle"
	AttrWhereNbins   = "nbins"
	AttrWhereRstart  = "rstart"
	AttrWhereRscale  = "rscale"
	AttrWhereNrays   = "nrays"
	AttrWhereA1gate  = "a1gate"
	AttrWhereStartaz = "startaz"
	AttrWhereStopaz  = "stopaz"

	// where — cartesian (horizontal products)
	AttrWhereProjdef = "projdef"
	AttrWhereXsize   = "xsize"
	AttrWhereYsize   = "ysize"
	AttrWhereXscale  = "xscale"
	AttrWhereYscale  = "yscale"
	AttrWhereLLLon   = "LL_lon"
	AttrWhereLLLat   = "LL_lat"
	AttrWhereULLon   = "UL_lon"
	AttrWhereULLat   = "UL_lat"
	AttrWhereURLon   = "UR_lon"
	AttrWhereURLat   = "UR_lat"
	AttrWhereLRLon   = "LR_lon"
	AttrWhereLRLat   = "LR_lat"

	// where — vertical cross sections
	AttrWhereMinheight = "minheight"
	AttrWhereMaxheight = "maxheight"
	AttrWhereAzAngle   = "az_angle"
	AttrWhereAngles    = "angles"
	AttrWhereRange     = "range"
	AttrWhereStartLon  = "start_lon"
	AttrWhereStartLat  = "start_lat"
	AttrWhereStopLon   = "stop_lon"
	AttrWhereStopLat   = "stop_lat"

	// where — vertical profile
	AttrWhereLevels   = "levels"
	AttrWhereInterval = "interval"

	// how — generic
	AttrHowTask        = "task"
	AttrHowStartepochs = "startepochs"
	AttrHowEndepochs   = "endepochs"
	AttrHowSystem      = "system"
	AttrHowSoftware    = "software"
	AttrHowSwVersion   = "sw_version"
	AttrHowZrA         = "zr_a"
	AttrHowZrB         = "zr_b"
	AttrHowKrA         = "kr_a"
	AttrHowKrB         = "kr_b"
	AttrHowSimulated   = "simulated"

	// how — polar radar
	AttrHowBeamwidth    = "beamwidth"
	AttrHowWavelength   = "wavelength"
	AttrHowRpm          = "rpm"
	AttrHowPulsewidth   = "pulsewidth"
	AttrHowRXbandwidth  = "RXbandwidth"
	AttrHowLowprf       = "lowprf"
	AttrHowHighprf      = "highprf"
	AttrHowTXloss       = "TXloss"
	AttrHowRXloss       = "RXloss"
	AttrHowRadomeloss   = "radomeloss"
	AttrHowAntgain      = "antgain"
	AttrHowBeamwH       = "beamwH"
	AttrHowBeamwV       = "beamwV"
	AttrHowGasattn      = "gasattn"
	AttrHowRadconstH    = "radconstH"
	AttrHowRadconstV    = "radconstV"
	AttrHowNomTXpower   = "nomTXpower"
	AttrHowTXpower      = "TXpower"
	AttrHowNI           = "NI"
	AttrHowVsamples     = "Vsamples"
	AttrHowAzmethod     = "azmethod"
	AttrHowBinmethod    = "binmethod"
	AttrHowElangles     = "elangles"
	AttrHowStartazA     = "startazA"
	AttrHowStopazA      = "stopazA"
	AttrHowStartazT     = "startazT"
	AttrHowStopazT      = "stopazT"
	AttrHowMinrange     = "minrange"
	AttrHowMaxrange     = "maxrange"
	AttrHowDealiased    = "dealiased"
	AttrHowPointaccEL   = "pointaccEL"
	AttrHowPointaccAZ   = "pointaccAZ"
	AttrHowMalfunc      = "malfunc"
	AttrHowRadarMsg     = "radar_msg"
	AttrHowRadhoriz     = "radhoriz"
	AttrHowNEZ          = "NEZ"
	AttrHowOUR          = "OUR"
	AttrHowDclutter     = "Dclutter"
	AttrHowComment      = "comment"
	AttrHowSQI          = "SQI"
	AttrHowCSR          = "CSR"
	AttrHowLOG          = "LOG"
	AttrHowVPRCorr      = "VPRCorr"
	AttrHowFreeze       = "freeze"
	AttrHowMin          = "min"
	AttrHowMax          = "max"
	AttrHowStep         = "step"
	AttrHowLevels       = "levels"
	AttrHowPeakpwr      = "peakpwr"
	AttrHowAvgpwr       = "avgpwr"
	AttrHowDynrange     = "dynrange"
	AttrHowRAC          = "RAC"
	AttrHowBBC          = "BBC"
	AttrHowPAC          = "PAC"
	AttrHowS2N          = "S2N"
	AttrHowPolarization = "polarization"

	// how — cartesian (horizontal products)
	AttrHowAngles    = "angles"
	AttrHowArotation = "arotation"
	AttrHowCamethod  = "camethod"
	AttrHowNodes     = "nodes"
	AttrHowAccnum    = "accnum"
)

// StandardAttributes lists every attribute name defined by the standard
// (Specification::getStandardAttributes in the original source). Nothing
// in this module consults it: the HVMI splitter copies every attribute a
// group holds, standard or not.
var StandardAttributes = []string{
	AttrWhatObject, AttrWhatVersion, AttrWhatDate, AttrWhatTime, AttrWhatSource,
	AttrWhatProduct, AttrWhatProdpar, AttrWhatQuantity, AttrWhatStartdate, AttrWhatStarttime,
	AttrWhatEnddate, AttrWhatEndtime, AttrWhatGain, AttrWhatOffset, AttrWhatNodata, AttrWhatUndetect,
	AttrWhereLon, AttrWhereLat, AttrWhereHeight,
	AttrWhereElangle, AttrWhereNbins, AttrWhereRstart, AttrWhereRscale, AttrWhereNrays, AttrWhereA1gate,
	AttrWhereStartaz, AttrWhereStopaz,
	AttrWhereProjdef, AttrWhereXsize, AttrWhereYsize, AttrWhereXscale, AttrWhereYscale,
	AttrWhereLLLon, AttrWhereLLLat, AttrWhereULLon, AttrWhereULLat, AttrWhereURLon, AttrWhereURLat, AttrWhereLRLon, AttrWhereLRLat,
	AttrWhereMinheight, AttrWhereMaxheight, AttrWhereAzAngle, AttrWhereAngles, AttrWhereRange,
	AttrWhereStartLon, AttrWhereStartLat, AttrWhereStopLon, AttrWhereStopLat,
	AttrWhereLevels, AttrWhereInterval,
	AttrHowTask, AttrHowStartepochs, AttrHowEndepochs, AttrHowSystem, AttrHowSoftware,
	AttrHowSwVersion, AttrHowZrA, AttrHowZrB, AttrHowKrA, AttrHowKrB, AttrHowSimulated,
	AttrHowBeamwidth, AttrHowWavelength, AttrHowRpm, AttrHowPulsewidth, AttrHowLowprf, AttrHowHighprf,
	AttrHowAzmethod, AttrHowBinmethod, AttrHowElangles,
	AttrHowAngles, AttrHowArotation, AttrHowCamethod, AttrHowNodes, AttrHowAccnum,
	AttrHowMinrange, AttrHowMaxrange, AttrHowNI, AttrHowDealiased,
	AttrHowPointaccEL, AttrHowPointaccAZ, AttrHowMalfunc, AttrHowRadarMsg, AttrHowRadhoriz,
	AttrHowNEZ, AttrHowOUR, AttrHowDclutter, AttrHowComment, AttrHowSQI, AttrHowCSR, AttrHowLOG,
	AttrHowVPRCorr, AttrHowFreeze, AttrHowMin, AttrHowMax, AttrHowStep, AttrHowLevels,
	AttrHowPeakpwr, AttrHowAvgpwr, AttrHowDynrange, AttrHowRAC, AttrHowBBC, AttrHowPAC, AttrHowS2N,
	AttrHowPolarization,
	AttributeClass, AttributeImageVersion, AttributePalVersion,
}
