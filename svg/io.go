// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
)

// SaveXML saves the svg to a XML-encoded file, using WriteXML
func (sv *SVG) SaveXML(fname string) error {
	fp, err := os.Create(fname)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = sv.WriteXML(bw, true)
	if err != nil {
		log.Println(err)
		return err
	}
	err = bw.Flush()
	if err != nil {
		log.Println(err)
	}
	return err
}

// WriteXML writes XML-formatted SVG output to io.Writer, and uses
// XMLEncoder
func (sv *SVG) WriteXML(wr io.Writer, indent bool) error {
	enc := NewXMLEncoder(wr)
	if indent {
		enc.Indent("", "  ")
	}
	err := sv.marshalXML(enc)
	if err != nil {
		return err
	}
	return enc.Flush()
}

// XMLString returns the indented XML representation of the document.
func (sv *SVG) XMLString() string {
	var b bytes.Buffer
	err := sv.WriteXML(&b, true)
	if err != nil {
		log.Println(err)
		return ""
	}
	return b.String()
}

func XMLAddAttr(attr *[]xml.Attr, name, val string) {
	at := xml.Attr{}
	at.Name.Local = name
	at.Value = val
	*attr = append(*attr, at)
}

// xmlAddProperties adds the node's properties as attributes, in sorted key
// order so output is deterministic.
func xmlAddProperties(attr *[]xml.Attr, properties map[string]any) {
	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		XMLAddAttr(attr, k, propString(properties[k]))
	}
}

func propString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}

// MarshalXML encodes just the given node to XML.
// It returns the name of node, for end tag; if empty, then children will not
// be output.
func MarshalXML(n Node, enc *XMLEncoder, setName string) string {
	if n == nil {
		return ""
	}
	se := xml.StartElement{}
	nb := n.AsNodeBase()
	if nb.Name != "" {
		XMLAddAttr(&se.Attr, "id", nb.Name)
	}
	xmlAddProperties(&se.Attr, nb.Properties)
	if !nb.Rot.IsIdentity() {
		XMLAddAttr(&se.Attr, "transform", nb.Rot.String())
	}
	text := "" // if non-empty, contains text to render
	var sb strings.Builder
	nm := ""
	switch nd := n.(type) {
	case *Path:
		nm = "path"
		nd.UpdatePathString()
		XMLAddAttr(&se.Attr, "d", nd.DataStr)
	case *Group:
		nm = "g"
	case *Rect:
		nm = "rect"
		XMLAddAttr(&se.Attr, "x", fmt.Sprintf("%g", nd.Pos.X))
		XMLAddAttr(&se.Attr, "y", fmt.Sprintf("%g", nd.Pos.Y))
		XMLAddAttr(&se.Attr, "width", fmt.Sprintf("%g", nd.Size.X))
		XMLAddAttr(&se.Attr, "height", fmt.Sprintf("%g", nd.Size.Y))
	case *Circle:
		nm = "circle"
		XMLAddAttr(&se.Attr, "cx", fmt.Sprintf("%g", nd.Pos.X))
		XMLAddAttr(&se.Attr, "cy", fmt.Sprintf("%g", nd.Pos.Y))
		XMLAddAttr(&se.Attr, "r", fmt.Sprintf("%g", nd.Radius))
	case *Ellipse:
		nm = "ellipse"
		XMLAddAttr(&se.Attr, "cx", fmt.Sprintf("%g", nd.Pos.X))
		XMLAddAttr(&se.Attr, "cy", fmt.Sprintf("%g", nd.Pos.Y))
		XMLAddAttr(&se.Attr, "rx", fmt.Sprintf("%g", nd.Radii.X))
		XMLAddAttr(&se.Attr, "ry", fmt.Sprintf("%g", nd.Radii.Y))
	case *Line:
		nm = "line"
		XMLAddAttr(&se.Attr, "x1", fmt.Sprintf("%g", nd.Start.X))
		XMLAddAttr(&se.Attr, "y1", fmt.Sprintf("%g", nd.Start.Y))
		XMLAddAttr(&se.Attr, "x2", fmt.Sprintf("%g", nd.End.X))
		XMLAddAttr(&se.Attr, "y2", fmt.Sprintf("%g", nd.End.Y))
	case *Polygon:
		nm = "polygon"
		for _, p := range nd.Points {
			sb.WriteString(fmt.Sprintf("%g,%g ", p.X, p.Y))
		}
		XMLAddAttr(&se.Attr, "points", strings.TrimSpace(sb.String()))
	case *Polyline:
		nm = "polyline"
		for _, p := range nd.Points {
			sb.WriteString(fmt.Sprintf("%g,%g ", p.X, p.Y))
		}
		XMLAddAttr(&se.Attr, "points", strings.TrimSpace(sb.String()))
	case *Text:
		nm = "text"
		XMLAddAttr(&se.Attr, "x", fmt.Sprintf("%g", nd.Pos.X))
		XMLAddAttr(&se.Attr, "y", fmt.Sprintf("%g", nd.Pos.Y))
		XMLAddAttr(&se.Attr, "font-size", fmt.Sprintf("%g", nd.FontSize))
		text = nd.Text
	case *Image:
		nm = "image"
		XMLAddAttr(&se.Attr, "x", fmt.Sprintf("%g", nd.Pos.X))
		XMLAddAttr(&se.Attr, "y", fmt.Sprintf("%g", nd.Pos.Y))
		XMLAddAttr(&se.Attr, "width", fmt.Sprintf("%g", nd.Size.X))
		XMLAddAttr(&se.Attr, "height", fmt.Sprintf("%g", nd.Size.Y))
		if nd.Pixels != nil {
			b64, err := nd.base64PNG()
			if err != nil {
				log.Println(err)
			} else {
				XMLAddAttr(&se.Attr, "href", b64)
			}
		} else if nd.Filename != "" {
			XMLAddAttr(&se.Attr, "href", nd.Filename)
		}
	}
	se.Name.Local = nm
	if setName != "" {
		se.Name.Local = setName
	}
	enc.EncodeToken(se)
	if text != "" {
		cd := xml.CharData([]byte(text))
		enc.EncodeToken(cd)
	}
	return se.Name.Local
}

// MarshalXMLTree encodes the given node and any children to XML.
// It returns the name of element that enc.WriteEnd() should be called with.
func MarshalXMLTree(n Node, enc *XMLEncoder, setName string) string {
	name := MarshalXML(n, enc, setName)
	if name == "" {
		return ""
	}
	if gp, isgp := n.(*Group); isgp {
		for _, k := range gp.Children {
			knm := MarshalXMLTree(k, enc, "")
			if knm != "" {
				enc.WriteEnd(knm)
			}
		}
	}
	return name
}

// marshalXML writes the svg element and the shape tree under it.
func (sv *SVG) marshalXML(enc *XMLEncoder) error {
	me := xml.StartElement{}
	me.Name.Local = "svg"
	if sv.Name != "" {
		XMLAddAttr(&me.Attr, "id", sv.Name)
	}
	XMLAddAttr(&me.Attr, "width", fmt.Sprintf("%g", sv.ViewBox.Size.X))
	XMLAddAttr(&me.Attr, "height", fmt.Sprintf("%g", sv.ViewBox.Size.Y))
	XMLAddAttr(&me.Attr, "viewBox", sv.ViewBox.BoxString())
	XMLAddAttr(&me.Attr, "xmlns", "http://www.w3.org/2000/svg")
	err := enc.EncodeToken(me)
	if err != nil {
		return err
	}
	if sv.Root != nil {
		for _, k := range sv.Root.Children {
			knm := MarshalXMLTree(k, enc, "")
			if knm != "" {
				enc.WriteEnd(knm)
			}
		}
	}
	ed := xml.EndElement{}
	ed.Name = me.Name
	return enc.EncodeToken(ed)
}
