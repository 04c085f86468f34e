package gpx

const (
	Version        = "1.1"
	Namespace      = "http://www.topografix.com/GPX/1/1"
	XSINamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	SchemaLocation = "http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd"
)

// Metadata is the document-level metadata block
type Metadata struct {
	Name string
	Desc string
}

// Waypoint is a single <wpt> element.
// Lat and Lon are coordinate text copied from the input without parsing.
type Waypoint struct {
	Lat     string
	Lon     string
	Name    string
	Desc    string // omitted from output when empty
	Comment string
	Symbol  string
}

// Document is the GPX root: creator, metadata and waypoints in input order
type Document struct {
	Creator   string
	Metadata  Metadata
	Waypoints []Waypoint
}
