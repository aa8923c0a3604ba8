// Package domain models tropical-cyclone best-track data.
//
// # Data Sources
//
// Tracks are assembled from two public archives:
//
//	HURDAT2: the NHC Atlantic/Pacific best-track database, a fixed-format
//	text file of storm header lines followed by six-hourly observation lines.
//	Available at https://www.nhc.noaa.gov/data/.
//
//	IBTrACS: the NOAA NCEI global best-track archive, distributed as CSV,
//	point shapefiles, and NetCDF. Available at
//	https://www.ncei.noaa.gov/products/international-best-track-archive.
//
// # Identifier Conventions
//
// Storms are addressed either by NAME (uppercase human-readable name, e.g.
// "PHOEBE") or by SID (the IBTrACS structured identifier, e.g.
// "2012166N09269": season + ordinal day + hemisphere-tagged latitude and
// longitude of genesis). HURDAT2 uses its own basin identifier (e.g.
// "AL092011") which this package treats as a SID. Matching is exact and
// case-sensitive; both archives store names in uppercase. NetCDF sources
// encode identifiers as fixed-width character arrays padded with NUL or
// space bytes, decoded by [DecodeSID].
//
// # Missing Values
//
// Wind (knots) and pressure (millibars) use the sentinel -9999 for "not
// recorded" ([MissingSentinel]). HURDAT2 writes -99/-999 instead; loaders
// normalize to the single sentinel before observations enter this package.
// Positions may be NaN. An observation missing any of latitude, longitude,
// wind, or pressure is excluded from extracted tracks entirely.
//
// # Time Encoding
//
// IBTrACS NetCDF stores time as fractional days since 1858-11-17T00:00:00Z,
// day zero of the modified Julian calendar. [FromEpochDays] converts an
// offset to an absolute UTC timestamp: offset 0 is 1858-11-17, offset 1 is
// 1858-11-18.
package domain
