package psdimage

import (
	"fmt"
	"image"
	"image/color"
)

// ShapeLayer is a vector shape layer.
type ShapeLayer struct {
	layerBase
}

// Sizeless reports whether the literal record box is degenerate, in
// which case the shape extent comes from its vector outline.
func (l *ShapeLayer) Sizeless() bool {
	bb := l.layerBase.BBox()
	return bb.Width() == 0 || bb.Height() == 0
}

// BBox returns the literal record box when it has an extent, and the
// envelope of the vector mask anchors otherwise. A sizeless shape
// with fewer than two anchors (a pure pixel fill) has no box.
func (l *ShapeLayer) BBox() BBox {
	if !l.Sizeless() {
		return l.layerBase.BBox()
	}
	anchors := l.Anchors()
	if len(anchors) < 2 {
		return BBox{}
	}
	out := BBox{anchors[0].X, anchors[0].Y, anchors[0].X, anchors[0].Y}
	for _, p := range anchors[1:] {
		if p.X < out.X1 {
			out.X1 = p.X
		}
		if p.Y < out.Y1 {
			out.Y1 = p.Y
		}
		if p.X > out.X2 {
			out.X2 = p.X
		}
		if p.Y > out.Y2 {
			out.Y2 = p.Y
		}
	}
	return out
}

// Anchors returns the on-curve control points of the vector mask, in
// document pixels, or nil when the layer has no vector mask. The
// fractional path coordinates are scaled by the document size and
// truncated.
func (l *ShapeLayer) Anchors() []image.Point {
	blocks := l.record().Blocks
	vm, ok := blocks[KeyVectorMask].(*VectorMask)
	if !ok {
		vm, ok = blocks[KeyVectorMaskAlt].(*VectorMask)
	}
	if !ok {
		return nil
	}
	header := l.doc.decoded.Header
	var points []image.Point
	for _, p := range vm.Path {
		if !p.Selector.onCurve() {
			continue
		}
		points = append(points, image.Pt(
			int(p.AnchorX*float64(header.Width)),
			int(p.AnchorY*float64(header.Height)),
		))
	}
	return points
}

// FillColor resolves the solid fill color of the shape, with the
// layer opacity as alpha. ok is false when the fill is not a plain
// color (gradient and pattern fills are not supported); the returned
// color is then opaque black.
func (l *ShapeLayer) FillColor() (c color.NRGBA, ok bool) {
	soco, found := l.record().Blocks[KeySolidColor].(SolidColor)
	if !found {
		logger.WithField("layer", l.Name()).Warn("gradient or pattern fill not supported")
		return color.NRGBA{A: 255}, false
	}
	return color.NRGBA{
		R: uint8(soco.R),
		G: uint8(soco.G),
		B: uint8(soco.B),
		A: l.Opacity(),
	}, true
}

func (l *ShapeLayer) String() string {
	bb := l.BBox()
	return fmt.Sprintf("shape %q: %s, visible=%t", l.Name(), bb, l.Visible())
}
