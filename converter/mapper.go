package converter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/marks-to-gpx/gpx"
	"github.com/theoremus-urban-solutions/marks-to-gpx/marks"
)

// Input keys
const (
	KeyMarkName     = "MarkName"
	KeyLatitude     = "Latitude"
	KeyLongitude    = "Longitude"
	KeyText1        = "text1"
	KeyText2        = "text2"
	KeyMarkID       = "MarkID"
	KeyLatFormatted = "LatFormatted"
	KeyLonFormatted = "LonFormatted"
	KeyIconURL      = "IconURL"
)

const descSeparator = " | "

const (
	nbsp           = "&nbsp;"
	lineBreak      = "<br />"
	text1TrimChars = ", "
)

// MapMark converts one mark record into a waypoint.
// It fails with ErrMissingField or ErrUnexpectedShape; the caller decides whether to skip.
func MapMark(rec marks.Record) (gpx.Waypoint, error) {
	if err := rec.Err(); err != nil {
		return gpx.Waypoint{}, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	name, err := requiredString(rec, KeyMarkName)
	if err != nil {
		return gpx.Waypoint{}, err
	}
	lat, err := requiredString(rec, KeyLatitude)
	if err != nil {
		return gpx.Waypoint{}, err
	}
	lon, err := requiredString(rec, KeyLongitude)
	if err != nil {
		return gpx.Waypoint{}, err
	}

	desc, err := buildDescription(rec)
	if err != nil {
		return gpx.Waypoint{}, err
	}

	latFmt, err := optionalString(rec, KeyLatFormatted)
	if err != nil {
		return gpx.Waypoint{}, err
	}
	lonFmt, err := optionalString(rec, KeyLonFormatted)
	if err != nil {
		return gpx.Waypoint{}, err
	}

	icon, err := optionalString(rec, KeyIconURL)
	if err != nil {
		return gpx.Waypoint{}, err
	}

	return gpx.Waypoint{
		Lat:     lat,
		Lon:     lon,
		Name:    strings.TrimSpace(name),
		Desc:    desc,
		Comment: FormatComment(latFmt, lonFmt),
		Symbol:  gpx.ClassifySymbol(icon),
	}, nil
}

// CleanText1 replaces &nbsp; with a space and <br /> with ", ", then trims
// leading and trailing commas and spaces.
func CleanText1(s string) string {
	s = strings.ReplaceAll(s, nbsp, " ")
	s = strings.ReplaceAll(s, lineBreak, ", ")
	return strings.Trim(s, text1TrimChars)
}

// FormatComment joins the formatted latitude and longitude with a single space
func FormatComment(latFormatted, lonFormatted string) string {
	return strings.ReplaceAll(latFormatted, nbsp, " ") + " " + strings.ReplaceAll(lonFormatted, nbsp, " ")
}

func buildDescription(rec marks.Record) (string, error) {
	var parts []string

	text1, err := optionalString(rec, KeyText1)
	if err != nil {
		return "", err
	}
	if cleaned := CleanText1(text1); cleaned != "" {
		parts = append(parts, cleaned)
	}

	if v, ok := rec.Value(KeyText2); ok && truthy(v) {
		club, err := scalarText(KeyText2, v)
		if err != nil {
			return "", err
		}
		parts = append(parts, "Club: "+club)
	}

	// MarkID counts even when empty
	if v, ok := rec.Value(KeyMarkID); ok {
		id, err := scalarText(KeyMarkID, v)
		if err != nil {
			return "", err
		}
		parts = append(parts, "ID: "+id)
	}

	return strings.Join(parts, descSeparator), nil
}

func requiredString(rec marks.Record, key string) (string, error) {
	v, ok := rec.Value(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %s, expected a string", ErrUnexpectedShape, key, jsonType(v))
	}
	return s, nil
}

// optionalString treats an absent key and a null value alike
func optionalString(rec marks.Record, key string) (string, error) {
	v, ok := rec.Value(key)
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %s, expected a string", ErrUnexpectedShape, key, jsonType(v))
	}
	return s, nil
}

// scalarText renders a JSON scalar as text. Objects and arrays are rejected.
func scalarText(key string, v interface{}) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("%w: %s is %s, expected a scalar", ErrUnexpectedShape, key, jsonType(v))
	}
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case bool:
		return t
	default:
		return true
	}
}

func jsonType(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case json.Number, float64:
		return "a number"
	case bool:
		return "a boolean"
	case []interface{}:
		return "an array"
	default:
		return "an object"
	}
}
