// Package gpsfixgeojson turns a batch of device-reported GPS fixes into
// a styled GeoJSON FeatureCollection of trips.
//
// The pipeline is a deterministic single pass:
// acquire → read table → validate rows → order per device →
// segment into trips → compute statistics → build features → write.
// Malformed rows are rejected with a reason and logged; they never
// abort the run. Fatal preconditions (no input, unreadable input,
// missing header columns, unwritable outputs) abort before any output
// file is replaced.
package gpsfixgeojson

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/urban-mobility-tools/gpsfix-to-geojson/config"
	"github.com/urban-mobility-tools/gpsfix-to-geojson/formatter"
	"github.com/urban-mobility-tools/gpsfix-to-geojson/ingest"
	"github.com/urban-mobility-tools/gpsfix-to-geojson/trips"
)

// Summary reports what one run processed.
type Summary struct {
	Devices int
	Points  int
	Trips   int
	Rejects int
	Blanks  int
}

// Run executes the whole pipeline for the given configuration and
// returns the run summary. Output files are written atomically (temp
// file plus rename), so a failed run leaves previous results untouched.
func Run(cfg config.Config) (Summary, error) {
	var sum Summary

	data, err := ingest.NewFetcher().Fetch(cfg.Input.Source)
	if err != nil {
		return sum, fmt.Errorf("acquire input: %w", err)
	}

	var delimiter rune
	if cfg.Input.Delimiter != "" {
		delimiter = []rune(cfg.Input.Delimiter)[0]
	}
	table, err := ingest.ReadTable(bytes.NewReader(data), delimiter)
	if err != nil {
		return sum, err
	}

	validator := trips.NewValidator(table.Columns.Device, table.Columns.Lat, table.Columns.Lon, table.Columns.Time)
	aggregator := trips.NewRejectAggregator()
	var points []trips.Point
	var rejectLines []string
	for _, row := range table.Rows {
		pt, rej, ok := validator.Validate(row.Fields, row.LineNo)
		switch {
		case ok:
			points = append(points, pt)
		case rej != nil:
			aggregator.Add(rej)
			rejectLines = append(rejectLines, trips.FormatRejectLine(rej))
		default:
			sum.Blanks++
		}
	}

	tracks := trips.OrderByDevice(points)
	segmenter := trips.NewSegmenter(trips.Thresholds{
		MaxGapSeconds: cfg.Thresholds.MaxGapSeconds,
		MaxJumpKM:     cfg.Thresholds.MaxJumpKM,
	})

	var allTrips []trips.Trip
	for _, track := range tracks {
		deviceTrips := segmenter.Segment(track)
		logrus.WithFields(logrus.Fields{
			"device": track.DeviceID,
			"points": len(track.Points),
			"trips":  len(deviceTrips),
		}).Debug("segmented device track")
		allTrips = append(allTrips, deviceTrips...)
	}

	fc := formatter.Build(allTrips, formatter.DefaultPalette(len(allTrips)))
	doc, err := formatter.NewDocumentBuilder().BuildJSON(fc)
	if err != nil {
		return sum, fmt.Errorf("serialize output: %w", err)
	}

	rejectDoc := ""
	if len(rejectLines) > 0 {
		rejectDoc = strings.Join(rejectLines, "\n") + "\n"
	}

	// Stage every output before renaming any of them into place, so a
	// failed run leaves all previous results untouched.
	rejectTmp, err := stageFile(cfg.Output.RejectsPath, []byte(rejectDoc))
	if err != nil {
		return sum, fmt.Errorf("write reject log: %w", err)
	}
	defer func() { _ = os.Remove(rejectTmp) }()
	geoTmp, err := stageFile(cfg.Output.GeoJSONPath, append(doc, '\n'))
	if err != nil {
		return sum, fmt.Errorf("write feature collection: %w", err)
	}
	defer func() { _ = os.Remove(geoTmp) }()

	if err := os.Rename(rejectTmp, cfg.Output.RejectsPath); err != nil {
		return sum, fmt.Errorf("write reject log: %w", err)
	}
	if err := os.Rename(geoTmp, cfg.Output.GeoJSONPath); err != nil {
		return sum, fmt.Errorf("write feature collection: %w", err)
	}

	aggregator.LogAll(logrus.StandardLogger())

	sum.Devices = len(tracks)
	sum.Points = len(points)
	sum.Trips = len(allTrips)
	sum.Rejects = aggregator.Total()
	logrus.WithFields(logrus.Fields{
		"devices": sum.Devices,
		"points":  sum.Points,
		"trips":   sum.Trips,
		"rejects": sum.Rejects,
		"output":  cfg.Output.GeoJSONPath,
	}).Info("run complete")
	return sum, nil
}

// stageFile writes data to a temp file in the destination directory
// and returns its name. The caller renames it into place once every
// staged output is known to be writable.
func stageFile(path string, data []byte) (string, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".gpsfix-*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
