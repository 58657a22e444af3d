// Copyright (c) 2024, The Vecdraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"os"

	_ "image/jpeg" // image decoders for OpenImage

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/vecdraw/vecdraw/math32"
)

// Image is an SVG image (bitmap).
type Image struct {
	NodeBase

	// Pos is the position of the top-left of the image.
	Pos math32.Vector2

	// Size is the rendered size of the image, which imposes a scaling
	// on the image when it is rendered.
	Size math32.Vector2

	// Filename is the file name of the image loaded by OpenImage,
	// written as the href attribute when no pixels are set.
	Filename string

	// Pixels are the image pixels, written as a base64 PNG data href.
	Pixels *image.RGBA
}

// NewImage adds a new image to the given parent, with given name and
// size, centered at the origin (Pos = -Size/2) prior to any transform.
func NewImage(parent *Group, name string, width, height float32) *Image {
	g := &Image{}
	g.Size.Set(width, height)
	g.Pos.Set(-width/2, -height/2)
	initNode(g, parent, name, nil)
	return g
}

func (g *Image) SVGName() string { return "image" }

func (g *Image) clone() Node {
	nc := *g
	nc.NodeBase = g.NodeBase.cloneBase()
	if g.Pixels != nil {
		nc.Pixels = image.NewRGBA(g.Pixels.Rect)
		copy(nc.Pixels.Pix, g.Pixels.Pix)
	}
	return &nc
}

// setImageSize sets the size of the bitmap image. This does not resize any
// existing image, it just makes a new image if the size is different.
func (g *Image) setImageSize(nwsz image.Point) {
	if nwsz.X == 0 || nwsz.Y == 0 {
		return
	}
	if g.Pixels != nil && g.Pixels.Bounds().Size() == nwsz {
		return
	}
	g.Pixels = image.NewRGBA(image.Rectangle{Max: nwsz})
}

// SetImage sets the image pixels from the given image, scaled to the
// specified size. Pass 0 for width and/or height to use the actual image
// size for that dimension.
func (g *Image) SetImage(img image.Image, width, height float32) {
	sz := img.Bounds().Size()
	if width <= 0 && height <= 0 {
		g.setImageSize(sz)
		draw.Draw(g.Pixels, g.Pixels.Bounds(), img, image.Point{}, draw.Src)
		if g.Size.X == 0 && g.Size.Y == 0 {
			g.Size = math32.Vector2FromPoint(sz)
		}
		return
	}
	tsz := sz
	scx := float32(1)
	scy := float32(1)
	if width > 0 {
		scx = width / float32(sz.X)
		tsz.X = int(width)
	}
	if height > 0 {
		scy = height / float32(sz.Y)
		tsz.Y = int(height)
	}
	g.setImageSize(tsz)
	s2d := f64.Aff3{float64(scx), 0, 0, 0, float64(scy), 0}
	draw.BiLinear.Transform(g.Pixels, s2d, img, img.Bounds(), draw.Over, nil)
	if g.Size.X == 0 && g.Size.Y == 0 {
		g.Size = math32.Vector2FromPoint(tsz)
	}
}

// OpenImage opens an image file for the bitmap, scaled to the specified
// size. Pass 0 for width and/or height to use the actual image size for
// that dimension.
func (g *Image) OpenImage(filename string, width, height float32) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	img, _, err := image.Decode(fp)
	if err != nil {
		return err
	}
	g.Filename = filename
	g.SetImage(img, width, height)
	return nil
}

// base64PNG returns the pixels encoded as a base64 PNG data URI
// for the href attribute.
func (g *Image) base64PNG() (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, g.Pixels); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
