// Package odim provides a clean public API for reading and writing OPERA
// ODIM_H5 weather-radar files (v2.0 and v2.1).
//
// Open an existing file with Open, or create a new one with one of the
// Create* functions; both return a *File carrying the root Object. Walk the
// tree with Object.Dataset/Data/Quality and their CreateDataset/CreateData/
// CreateQuality counterparts; read or write a node's matrix with
// Data.Matrix/ReadTranslated/WriteAndTranslate. Build a spatial index over a
// batch of cartesian-product files with NewGeoIndex.
package odim
