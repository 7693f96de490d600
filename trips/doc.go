/*
Package trips implements the core fix-to-trip pipeline: row validation,
per-device time ordering, gap-based trip segmentation, and per-trip
kinematic statistics.

The pipeline is a strict sequence of pure transforms:

	validator := trips.NewValidator(cols.Device, cols.Lat, cols.Lon, cols.Time)
	pt, rej, ok := validator.Validate(row.Fields, row.LineNo)

	tracks := trips.OrderByDevice(points)

	seg := trips.NewSegmenter(trips.DefaultThresholds())
	for _, track := range tracks {
	    for _, trip := range seg.Segment(track) {
	        stats := trips.ComputeStats(trip.Points)
	        ...
	    }
	}

Every value is immutable once built; no component keeps state across
calls except the Segmenter's thresholds, which are fixed at
construction.

Devices are grouped by exact identifier equality but ordered
case-insensitively for emission. That asymmetry is intentional: two
identifiers differing only in case stay separate tracks, yet output
order ignores case so it is stable across data sources that vary
casing between exports.
*/
package trips
