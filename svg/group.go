// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Group groups together SVG elements. It has no geometry of its own:
// its bounds and centroid derive entirely from its children.
// A group exclusively owns its children; no node is ever shared
// between two parents.
type Group struct {
	NodeBase

	// Children are the child nodes, in drawing order.
	Children []Node
}

// NewGroup adds a new group to the given parent, with given name.
func NewGroup(parent *Group, name string) *Group {
	g := &Group{}
	initNode(g, parent, name, nil)
	return g
}

func (g *Group) SVGName() string { return "g" }

// Add appends the given node as a child of the group.
func (g *Group) Add(n Node) {
	g.Children = append(g.Children, n)
}

func (g *Group) clone() Node {
	nc := *g
	nc.NodeBase = g.NodeBase.cloneBase()
	nc.Children = make([]Node, len(g.Children))
	for i, kid := range g.Children {
		nc.Children[i] = kid.clone()
	}
	return &nc
}

// WalkDown calls the given function on the group's nodes in depth-first
// order, starting with the group itself. If the function returns false,
// the walk does not descend into that node's children.
func (g *Group) WalkDown(fun func(n Node) bool) {
	if !fun(g) {
		return
	}
	for _, kid := range g.Children {
		if kg, ok := kid.(*Group); ok {
			kg.WalkDown(fun)
		} else {
			fun(kid)
		}
	}
}
