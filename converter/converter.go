package converter

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/marks-to-gpx/config"
	"github.com/theoremus-urban-solutions/marks-to-gpx/gpx"
	"github.com/theoremus-urban-solutions/marks-to-gpx/marks"
)

// Converter turns mark records into a GPX document
type Converter struct {
	Cfg config.AppConfig
	Log zerolog.Logger
}

// Result describes a finished conversion
type Result struct {
	Document   gpx.Document
	OutputPath string
	Skipped    []*RecordMapError
}

// Count is the number of waypoints converted
func (r Result) Count() int { return len(r.Document.Waypoints) }

// NewConverter creates a new converter instance
func NewConverter(cfg config.AppConfig, log zerolog.Logger) *Converter {
	return &Converter{Cfg: cfg, Log: log}
}

// NewDocument returns an empty document carrying the configured metadata
func (c *Converter) NewDocument() gpx.Document {
	return gpx.Document{
		Creator: c.Cfg.Metadata.Creator,
		Metadata: gpx.Metadata{
			Name: c.Cfg.Metadata.Name,
			Desc: c.Cfg.Metadata.Desc,
		},
	}
}

// Convert maps every record in order. Records that cannot be mapped are
// logged, skipped and returned in Result.Skipped.
func (c *Converter) Convert(records []marks.Record) Result {
	res := Result{Document: c.NewDocument()}
	res.Document.Waypoints = make([]gpx.Waypoint, 0, len(records))

	for _, rec := range records {
		wpt, err := MapMark(rec)
		if err != nil {
			mapErr := &RecordMapError{Index: rec.Index(), Name: rec.Label(), Err: err}
			c.Log.Warn().Msgf("Could not process mark %s: %v", mapErr.Name, err)
			res.Skipped = append(res.Skipped, mapErr)
			continue
		}
		c.Log.Debug().Msgf("mapped mark %q (%s, %s) as %s", wpt.Name, wpt.Lat, wpt.Lon, wpt.Symbol)
		res.Document.Waypoints = append(res.Document.Waypoints, wpt)
	}
	return res
}

// Run loads inputPath, converts it and writes the GPX file.
// An empty outputPath is replaced by DefaultOutputPath(inputPath).
func (c *Converter) Run(inputPath, outputPath string) (Result, error) {
	records, err := marks.Load(inputPath)
	if err != nil {
		return Result{}, err
	}
	c.Log.Debug().Msgf("loaded %d records from %s", len(records), inputPath)

	res := c.Convert(records)

	if len(res.Skipped) > 1 {
		agg := NewWarningAggregator()
		for _, e := range res.Skipped {
			agg.AddError(e)
		}
		agg.LogAll(c.Log, inputPath)
	}

	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath)
	}
	res.OutputPath = outputPath

	if err := gpx.WriteFile(outputPath, res.Document); err != nil {
		return res, err
	}
	return res, nil
}

// DefaultOutputPath replaces the extension of inputPath with .gpx, in the same directory
func DefaultOutputPath(inputPath string) string {
	dir, base := filepath.Split(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// dotfile such as ".marks"
		stem = base
	}
	return filepath.Join(dir, stem+".gpx")
}
