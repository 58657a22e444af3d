// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppath implements the SVG path-command model: an ordered sequence
// of drawing commands (moveto, lineto, cubic / quadratic beziers, arcs,
// closepath), each carrying an absolute or relative coordinate mode and its
// control and end point operands.
//
// The package provides flattening of commands to approximate points (used
// for bounds and centroid estimation), command-level rotation and
// translation, parsing of SVG path-data strings, and the markup-fragment
// formatting contract for path data.
package ppath

import (
	"strconv"
	"strings"
)

// Op is the kind of a path drawing command.
type Op int32

const (
	// Move starts a new subpath at the given point.
	Move Op = iota

	// Line draws a straight line to the given point.
	Line

	// HLine draws a horizontal line to the given x coordinate.
	HLine

	// VLine draws a vertical line to the given y coordinate.
	VLine

	// Cube draws a cubic bezier with two control points and an end point.
	Cube

	// SmoothCube draws a cubic bezier with a reflected first control point.
	SmoothCube

	// Quad draws a quadratic bezier with one control point and an end point.
	Quad

	// SmoothQuad draws a quadratic bezier with a reflected control point.
	SmoothQuad

	// Arc draws an elliptical arc: rx, ry, x-axis-rotation (degrees),
	// large-arc flag, sweep flag, and the end point.
	Arc

	// Close closes the current subpath.
	Close

	OpN
)

var opLetters = [OpN]byte{'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z'}

var opDataLens = [OpN]int{2, 2, 1, 1, 6, 4, 4, 2, 7, 0}

// Letter returns the uppercase (absolute mode) SVG command letter for the op.
func (op Op) Letter() byte {
	return opLetters[op]
}

// DataLen returns the number of float operands the op requires.
func (op Op) DataLen() int {
	return opDataLens[op]
}

func (op Op) String() string {
	return string(opLetters[op])
}

// Cmd is one path drawing command: an op, its coordinate mode,
// and its operand data. Operand layouts:
//
//	Move, Line, SmoothQuad: [x, y]
//	HLine:                  [x]
//	VLine:                  [y]
//	Quad:                   [cx, cy, x, y]
//	SmoothCube:             [c2x, c2y, x, y]
//	Cube:                   [c1x, c1y, c2x, c2y, x, y]
//	Arc:                    [rx, ry, xrot, large, sweep, x, y]
//	Close:                  []
type Cmd struct {

	// Op is the command kind.
	Op Op

	// Rel indicates relative coordinate mode: operand points are offsets
	// from the current cursor rather than absolute positions.
	Rel bool

	// Data holds the operands, per the layout for Op.
	Data []float32
}

// Letter returns the SVG command letter: uppercase for absolute mode,
// lowercase for relative mode.
func (c Cmd) Letter() byte {
	l := c.Op.Letter()
	if c.Rel {
		l += 'a' - 'A'
	}
	return l
}

// Clone returns a copy of the command with its own operand storage.
func (c Cmd) Clone() Cmd {
	nc := c
	nc.Data = make([]float32, len(c.Data))
	copy(nc.Data, c.Data)
	return nc
}

// String returns the markup fragment for the command: the command letter
// followed by space-joined operands, formatted as "x,y" pairs for point
// operands and bare numbers otherwise.
func (c Cmd) String() string {
	var sb strings.Builder
	sb.WriteByte(c.Letter())
	switch c.Op {
	case HLine, VLine:
		sb.WriteString(fmtNum(c.Data[0]))
	case Arc:
		sb.WriteString(fmtPair(c.Data[0], c.Data[1]))
		sb.WriteByte(' ')
		sb.WriteString(fmtNum(c.Data[2]))
		sb.WriteByte(' ')
		sb.WriteString(fmtNum(c.Data[3]))
		sb.WriteByte(' ')
		sb.WriteString(fmtNum(c.Data[4]))
		sb.WriteByte(' ')
		sb.WriteString(fmtPair(c.Data[5], c.Data[6]))
	default:
		for i := 0; i < len(c.Data); i += 2 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmtPair(c.Data[i], c.Data[i+1]))
		}
	}
	return sb.String()
}

func fmtNum(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func fmtPair(x, y float32) string {
	return fmtNum(x) + "," + fmtNum(y)
}

// Path is an ordered sequence of drawing commands.
// A well-formed path starts with a Move command; operations that flatten
// a path synthesize a leading Move at the cursor origin if it is absent.
type Path []Cmd

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	np := make(Path, len(p))
	for i, c := range p {
		np[i] = c.Clone()
	}
	return np
}

// String returns the SVG path-data representation of the path,
// with command fragments joined by spaces.
func (p Path) String() string {
	frags := make([]string, len(p))
	for i, c := range p {
		frags[i] = c.String()
	}
	return strings.Join(frags, " ")
}

// add appends a command with the given op, mode and data.
func (p *Path) add(op Op, rel bool, data ...float32) {
	*p = append(*p, Cmd{Op: op, Rel: rel, Data: data})
}

// MoveTo starts a new subpath at the given absolute point.
func (p *Path) MoveTo(x, y float32) {
	p.add(Move, false, x, y)
}

// LineTo draws a line to the given absolute point.
func (p *Path) LineTo(x, y float32) {
	p.add(Line, false, x, y)
}

// LineToRel draws a line by the given offset from the current point.
func (p *Path) LineToRel(dx, dy float32) {
	p.add(Line, true, dx, dy)
}

// HLineTo draws a horizontal line to the given absolute x coordinate.
func (p *Path) HLineTo(x float32) {
	p.add(HLine, false, x)
}

// VLineTo draws a vertical line to the given absolute y coordinate.
func (p *Path) VLineTo(y float32) {
	p.add(VLine, false, y)
}

// QuadTo draws a quadratic bezier with control point cx,cy to the
// given absolute end point.
func (p *Path) QuadTo(cx, cy, x, y float32) {
	p.add(Quad, false, cx, cy, x, y)
}

// CubeTo draws a cubic bezier with control points c1 and c2 to the
// given absolute end point.
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	p.add(Cube, false, c1x, c1y, c2x, c2y, x, y)
}

// ArcTo draws an elliptical arc with the given radii and x-axis rotation
// (in degrees) to the given absolute end point.
func (p *Path) ArcTo(rx, ry, xrot float32, large, sweep bool, x, y float32) {
	lf, sf := float32(0), float32(0)
	if large {
		lf = 1
	}
	if sweep {
		sf = 1
	}
	p.add(Arc, false, rx, ry, xrot, lf, sf, x, y)
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	p.add(Close, false)
}
