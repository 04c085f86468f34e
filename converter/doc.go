// Package converter is the main entry point for racing-mark JSON to GPX conversion.
//
// It ties together the marks loader, the field mapping rules and the gpx
// serializer.
//
// # Usage
//
//	cfg, _ := config.LoadAppConfig("")
//	conv := converter.NewConverter(cfg, internal.NewLogger(os.Stderr, cfg.Logging.Level))
//
//	res, err := conv.Run("marks2.json", "") // writes marks2.gpx
//	if err != nil {
//	    // marks.ErrInputNotFound, marks.ErrInputParse or gpx.ErrOutputWrite
//	}
//	fmt.Printf("converted %d waypoints\n", res.Count())
//
// # Field mapping
//
// MapMark converts one record:
//   - name: MarkName with surrounding whitespace removed (required)
//   - desc: cleaned text1, "Club: " + text2 and "ID: " + MarkID joined by " | ",
//     omitted when there are no parts
//   - cmt: LatFormatted and LonFormatted with &nbsp; replaced, joined by one space
//   - sym: gpx.ClassifySymbol(IconURL)
//   - lat/lon: Latitude and Longitude copied verbatim (required)
//
// A record that cannot be mapped is reported as a *RecordMapError and skipped;
// it never fails the conversion as a whole.
//
// # Thread Safety
//
// Converter holds no mutable state. A single conversion runs synchronously
// from load to write.
package converter
