package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/marks-to-gpx/gpx"
	"github.com/theoremus-urban-solutions/marks-to-gpx/marks"
)

func decodeOne(t *testing.T, js string) marks.Record {
	t.Helper()
	records, err := marks.Decode([]byte("[" + js + "]"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	return records[0]
}

func TestMapMark_Minimal(t *testing.T) {
	rec := decodeOne(t, `{"MarkName":"N1","Latitude":"50.8","Longitude":"-0.9","IconURL":"buoy_red.png"}`)

	wpt, err := MapMark(rec)
	require.NoError(t, err)
	assert.Equal(t, gpx.Waypoint{
		Lat:     "50.8",
		Lon:     "-0.9",
		Name:    "N1",
		Desc:    "",
		Comment: " ",
		Symbol:  gpx.SymbolBuoyRed,
	}, wpt)
}

func TestMapMark_FullRecord(t *testing.T) {
	rec := decodeOne(t, `{
		"MarkID": "123",
		"MarkName": "  Bosham Hard  ",
		"Latitude": "50.8271",
		"Longitude": "-0.8566",
		"LatFormatted": "50&nbsp;49.63N",
		"LonFormatted": "000&nbsp;51.40W",
		"text1": "Racing mark&nbsp;<br />info",
		"text2": "BSC",
		"IconURL": "https://example.org/img/buoy_yellow_green.png"
	}`)

	wpt, err := MapMark(rec)
	require.NoError(t, err)
	assert.Equal(t, "Bosham Hard", wpt.Name)
	assert.Equal(t, "50.8271", wpt.Lat)
	assert.Equal(t, "-0.8566", wpt.Lon)
	assert.Equal(t, "Racing mark , info | Club: BSC | ID: 123", wpt.Desc)
	assert.Equal(t, "50 49.63N 000 51.40W", wpt.Comment)
	assert.Equal(t, gpx.SymbolBuoyGreenYellow, wpt.Symbol)
}

func TestMapMark_Description(t *testing.T) {
	tests := []struct {
		name     string
		extra    string
		expected string
	}{
		{name: "nothing", extra: ``, expected: ""},
		{name: "empty MarkID still counts", extra: `,"MarkID":""`, expected: "ID: "},
		{name: "numeric MarkID", extra: `,"MarkID":42`, expected: "ID: 42"},
		{name: "MarkID beyond float precision", extra: `,"MarkID":9007199254740993`, expected: "ID: 9007199254740993"},
		{name: "MarkID keeps decimal form", extra: `,"MarkID":17.0`, expected: "ID: 17.0"},
		{name: "zero text2 skipped", extra: `,"text2":0`, expected: ""},
		{name: "numeric text2", extra: `,"text2":12`, expected: "Club: 12"},
		{name: "null MarkID", extra: `,"MarkID":null`, expected: "ID: "},
		{name: "empty text2 skipped", extra: `,"text2":""`, expected: ""},
		{name: "null text2 skipped", extra: `,"text2":null`, expected: ""},
		{name: "text2 only", extra: `,"text2":"ISC"`, expected: "Club: ISC"},
		{name: "text1 only commas", extra: `,"text1":"<br />&nbsp;<br />"`, expected: ""},
		{name: "text1 empty", extra: `,"text1":""`, expected: ""},
		{name: "text1 and id", extra: `,"text1":"Port hand","MarkID":"7"`, expected: "Port hand | ID: 7"},
		{name: "order is fixed", extra: `,"MarkID":"9","text2":"DSC","text1":"East"`, expected: "East | Club: DSC | ID: 9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := decodeOne(t, `{"MarkName":"M","Latitude":"1","Longitude":"2"`+tt.extra+`}`)
			wpt, err := MapMark(rec)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, wpt.Desc)
		})
	}
}

func TestCleanText1(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Racing mark&nbsp;<br />info", expected: "Racing mark , info"},
		{input: "<br />Leading break", expected: "Leading break"},
		{input: "Trailing break<br />", expected: "Trailing break"},
		{input: " , x , ", expected: "x"},
		{input: "a<br />b", expected: "a, b"},
		{input: "<br&nbsp;/>", expected: ""},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText1(tt.input))
		})
	}
}

func TestFormatComment(t *testing.T) {
	assert.Equal(t, " ", FormatComment("", ""))
	assert.Equal(t, "50 48N ", FormatComment("50&nbsp;48N", ""))
	assert.Equal(t, "A B", FormatComment("A", "B"))
}

func TestMapMark_Errors(t *testing.T) {
	tests := []struct {
		name    string
		record  string
		wantErr error
	}{
		{name: "missing name", record: `{"Latitude":"1","Longitude":"2"}`, wantErr: ErrMissingField},
		{name: "missing latitude", record: `{"MarkName":"M","Longitude":"2"}`, wantErr: ErrMissingField},
		{name: "missing longitude", record: `{"MarkName":"M","Latitude":"1"}`, wantErr: ErrMissingField},
		{name: "numeric name", record: `{"MarkName":5,"Latitude":"1","Longitude":"2"}`, wantErr: ErrUnexpectedShape},
		{name: "null name", record: `{"MarkName":null,"Latitude":"1","Longitude":"2"}`, wantErr: ErrUnexpectedShape},
		{name: "numeric latitude", record: `{"MarkName":"M","Latitude":50.8,"Longitude":"2"}`, wantErr: ErrUnexpectedShape},
		{name: "numeric text1", record: `{"MarkName":"M","Latitude":"1","Longitude":"2","text1":3}`, wantErr: ErrUnexpectedShape},
		{name: "object MarkID", record: `{"MarkName":"M","Latitude":"1","Longitude":"2","MarkID":{"a":1}}`, wantErr: ErrUnexpectedShape},
		{name: "array text2", record: `{"MarkName":"M","Latitude":"1","Longitude":"2","text2":["x"]}`, wantErr: ErrUnexpectedShape},
		{name: "numeric IconURL", record: `{"MarkName":"M","Latitude":"1","Longitude":"2","IconURL":1}`, wantErr: ErrUnexpectedShape},
		{name: "not an object", record: `"M"`, wantErr: ErrUnexpectedShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MapMark(decodeOne(t, tt.record))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMapMark_NullOptionalsAreAbsent(t *testing.T) {
	rec := decodeOne(t, `{"MarkName":"M","Latitude":"1","Longitude":"2","IconURL":null,"LatFormatted":null,"text1":null}`)
	wpt, err := MapMark(rec)
	require.NoError(t, err)
	assert.Equal(t, gpx.SymbolWaypoint, wpt.Symbol)
	assert.Equal(t, " ", wpt.Comment)
	assert.Empty(t, wpt.Desc)
}
