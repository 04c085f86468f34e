// Package gpx models a GPX 1.1 waypoint document and serializes it.
//
// This package is organized into:
// - types.go: Document, Metadata and Waypoint
// - symbol.go: icon identifier to waypoint symbol classification
// - xml.go: XML serialization with 2-space indentation
// - writer.go: writing the serialized document to disk
//
// Only waypoints are supported. Coordinates are written exactly as given.
package gpx
