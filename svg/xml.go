// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"encoding/xml"
	"io"
)

// XMLEncoder wraps the standard [xml.Encoder] with a simpler end-element
// interface for the tree-walking writer.
type XMLEncoder struct {
	enc *xml.Encoder
}

// NewXMLEncoder returns a new [XMLEncoder] writing to the given writer.
func NewXMLEncoder(wr io.Writer) *XMLEncoder {
	return &XMLEncoder{enc: xml.NewEncoder(wr)}
}

// Indent sets the encoder to generate XML with the given prefix and indent.
func (xe *XMLEncoder) Indent(prefix, indent string) {
	xe.enc.Indent(prefix, indent)
}

// EncodeToken writes the given token.
func (xe *XMLEncoder) EncodeToken(t xml.Token) error {
	return xe.enc.EncodeToken(t)
}

// WriteEnd writes an end element with the given name.
func (xe *XMLEncoder) WriteEnd(name string) error {
	ed := xml.EndElement{}
	ed.Name.Local = name
	return xe.enc.EncodeToken(ed)
}

// Flush flushes any buffered output.
func (xe *XMLEncoder) Flush() error {
	return xe.enc.Flush()
}
