// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"fmt"
	"strconv"
)

// ParsePath parses an SVG path-data string ("d" attribute) into a [Path].
// Repeated operand groups after one command letter are split into separate
// commands, with extra groups after a Move becoming Lines per the SVG rules.
// This parses path data only; it is not a markup parser.
func ParsePath(d string) (Path, error) {
	var p Path
	var op Op
	var rel, haveOp bool
	i := 0
	for i < len(d) {
		ch := d[i]
		switch {
		case isSep(ch):
			i++
		case isCmdLetter(ch):
			op, rel = decodeCmd(ch)
			haveOp = true
			i++
			if op == Close {
				p = append(p, Cmd{Op: Close, Rel: rel})
				haveOp = false
			}
		default:
			if !haveOp {
				return nil, fmt.Errorf("ppath: unexpected character %q at %d in path data", ch, i)
			}
			n := op.DataLen()
			data := make([]float32, n)
			for k := 0; k < n; k++ {
				for i < len(d) && isSep(d[i]) {
					i++
				}
				v, ni, err := scanNumber(d, i)
				if err != nil {
					return nil, err
				}
				data[k] = v
				i = ni
			}
			p = append(p, Cmd{Op: op, Rel: rel, Data: data})
			if op == Move {
				// extra coordinate groups after a moveto are implicit linetos
				op = Line
			}
		}
	}
	return p, nil
}

func isSep(ch byte) bool {
	return ch == ' ' || ch == ',' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isCmdLetter(ch byte) bool {
	up := ch &^ 0x20
	switch up {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}

func decodeCmd(ch byte) (Op, bool) {
	rel := ch >= 'a'
	switch ch &^ 0x20 {
	case 'M':
		return Move, rel
	case 'L':
		return Line, rel
	case 'H':
		return HLine, rel
	case 'V':
		return VLine, rel
	case 'C':
		return Cube, rel
	case 'S':
		return SmoothCube, rel
	case 'Q':
		return Quad, rel
	case 'T':
		return SmoothQuad, rel
	case 'A':
		return Arc, rel
	}
	return Close, rel
}

// scanNumber scans one float starting at i, returning the value and the
// index just past it. A '-' (except after an exponent) or a second '.'
// terminates the current number, as some compact path data relies on.
func scanNumber(d string, i int) (float32, int, error) {
	start := i
	gotDec := false
	for i < len(d) {
		ch := d[i]
		switch {
		case ch >= '0' && ch <= '9':
			i++
		case ch == '.':
			if gotDec {
				goto done
			}
			gotDec = true
			i++
		case ch == '-' || ch == '+':
			if i == start || d[i-1] == 'e' || d[i-1] == 'E' {
				i++
			} else {
				goto done
			}
		case ch == 'e' || ch == 'E':
			i++
		default:
			goto done
		}
	}
done:
	if i == start {
		return 0, i, fmt.Errorf("ppath: expected number at %d in path data", start)
	}
	v, err := strconv.ParseFloat(d[start:i], 32)
	if err != nil {
		return 0, i, fmt.Errorf("ppath: could not parse number %q: %w", d[start:i], err)
	}
	return float32(v), i, nil
}
