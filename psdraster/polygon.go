package psdraster

import (
	"errors"
	"image"

	"github.com/benoitkugler/okpsd/psdimage"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Sizeless shape layers carry no usable pixel data: their extent and
// coverage come from the vector mask anchors, filled with the solid
// fill color. Bezier segments are approximated by their anchor
// polygon.

func toFixedPoint(x, y int) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func (d *Driver) fillPolygon(l *psdimage.ShapeLayer) (image.Image, error) {
	anchors := l.Anchors()
	if len(anchors) < 2 {
		return nil, errors.New("shape has no outline")
	}
	bb := l.BBox()
	width, height := bb.Width(), bb.Height()
	if width <= 0 || height <= 0 {
		return nil, errors.New("shape has no extent")
	}
	fill, _ := l.FillColor() // opaque black when the fill is not plain

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	filler := rasterx.NewFiller(width, height, scanner)
	filler.Scanner.SetColor(fill)

	filler.Start(toFixedPoint(anchors[0].X-bb.X1, anchors[0].Y-bb.Y1))
	for _, p := range anchors[1:] {
		filler.Line(toFixedPoint(p.X-bb.X1, p.Y-bb.Y1))
	}
	filler.Stop(true)
	filler.Draw()
	return img, nil
}
