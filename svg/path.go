// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/vecdraw/vecdraw/ppath"
)

// Path renders SVG data sequences that can render just about anything.
type Path struct {
	NodeBase

	// Data is the path data using the [ppath] command representation.
	Data ppath.Path

	// DataStr is the string version of the path data.
	DataStr string
}

// NewPath adds a new empty path to the given parent, with given name.
// Use [Path.SetData] or build [Path.Data] directly with the ppath builders.
func NewPath(parent *Group, name string) *Path {
	g := &Path{}
	initNode(g, parent, name, shapeDefaults)
	return g
}

func (g *Path) SVGName() string { return "path" }

func (g *Path) clone() Node {
	nc := *g
	nc.NodeBase = g.NodeBase.cloneBase()
	nc.Data = g.Data.Clone()
	return &nc
}

// SetData sets the path data to the given string, parsing it into the
// command form used for geometry operations.
func (g *Path) SetData(data string) error {
	p, err := ppath.ParsePath(data)
	if err != nil {
		return err
	}
	g.Data = p
	g.DataStr = data
	return nil
}

// UpdatePathString sets the path string from the Data.
func (g *Path) UpdatePathString() {
	g.DataStr = g.Data.String()
}
