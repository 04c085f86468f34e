package gpx

import (
	"github.com/beevik/etree"
)

const indentSpaces = 2

// BuildXML serializes a GPX document as indented UTF-8 XML.
// The output has no blank lines and no trailing newline, and is
// byte-identical for identical input.
func BuildXML(doc Document) ([]byte, error) {
	x := etree.NewDocument()
	x.WriteSettings.CanonicalText = true
	x.WriteSettings.CanonicalAttrVal = true
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("gpx")
	root.CreateAttr("version", Version)
	root.CreateAttr("creator", doc.Creator)
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("xmlns:xsi", XSINamespace)
	root.CreateAttr("xsi:schemaLocation", SchemaLocation)

	md := root.CreateElement("metadata")
	writeText(md, "name", doc.Metadata.Name)
	writeText(md, "desc", doc.Metadata.Desc)

	for _, w := range doc.Waypoints {
		writeWaypoint(root, w)
	}

	s := etree.NewIndentSettings()
	s.Spaces = indentSpaces
	s.PreserveLeafWhitespace = true
	s.SuppressTrailingWhitespace = true
	x.IndentWithSettings(s)

	return x.WriteToBytes()
}

func writeWaypoint(parent *etree.Element, w Waypoint) {
	el := parent.CreateElement("wpt")
	el.CreateAttr("lat", w.Lat)
	el.CreateAttr("lon", w.Lon)
	writeText(el, "name", w.Name)
	if w.Desc != "" {
		writeText(el, "desc", w.Desc)
	}
	writeText(el, "cmt", w.Comment)
	writeText(el, "sym", w.Symbol)
}

func writeText(parent *etree.Element, tag, text string) {
	el := parent.CreateElement(tag)
	if text != "" {
		// CreateText keeps whitespace-only values such as a blank comment
		el.CreateText(text)
	}
}
