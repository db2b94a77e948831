package psdimage_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/benoitkugler/okpsd/psdimage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shapeDoc(rec psdimage.Record) *psdimage.ShapeLayer {
	doc := psdimage.NewDocument(&psdimage.Decoded{
		Header:  rgbHeader(10, 10),
		Records: []psdimage.Record{rec},
		Grouped: []psdimage.GroupedLayer{leaf(0, psdimage.KindShape)},
	})
	return doc.Layers()[0].(*psdimage.ShapeLayer)
}

func anchor(y, x float64) psdimage.PathPoint {
	return psdimage.PathPoint{Selector: psdimage.SelectorClosedKnotLinked, AnchorY: y, AnchorX: x}
}

func TestShapeLiteralBBox(t *testing.T) {
	rec := bareRecord("rect")
	rec.Left, rec.Top, rec.Right, rec.Bottom = 2, 2, 8, 6
	shape := shapeDoc(rec)
	assert.False(t, shape.Sizeless())
	assert.Equal(t, psdimage.BBox{2, 2, 8, 6}, shape.BBox())
}

func TestShapeAnchorBBox(t *testing.T) {
	// degenerate literal box: the extent comes from the outline
	rec := bareRecord("square")
	rec.Blocks = psdimage.TaggedBlocks{
		psdimage.KeyVectorMask: &psdimage.VectorMask{Path: []psdimage.PathPoint{
			anchor(0, 0), anchor(0, 1), anchor(1, 1), anchor(1, 0),
		}},
	}
	shape := shapeDoc(rec)
	require.True(t, shape.Sizeless())
	assert.Equal(t,
		[]image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		shape.Anchors())
	assert.Equal(t, psdimage.BBox{0, 0, 10, 10}, shape.BBox())
}

func TestShapeAnchorSelectors(t *testing.T) {
	// length and fill rule records carry no anchor
	rec := bareRecord("filtered")
	rec.Blocks = psdimage.TaggedBlocks{
		psdimage.KeyVectorMaskAlt: &psdimage.VectorMask{Path: []psdimage.PathPoint{
			{Selector: psdimage.SelectorClosedLength},
			anchor(0.2, 0.2),
			{Selector: psdimage.SelectorFillRule},
			{Selector: psdimage.SelectorOpenKnotUnlinked, AnchorY: 0.8, AnchorX: 0.8},
		}},
	}
	shape := shapeDoc(rec)
	assert.Equal(t, []image.Point{{2, 2}, {8, 8}}, shape.Anchors())
}

func TestShapeTooFewAnchors(t *testing.T) {
	rec := bareRecord("fill")
	rec.Blocks = psdimage.TaggedBlocks{
		psdimage.KeyVectorMask: &psdimage.VectorMask{Path: []psdimage.PathPoint{
			anchor(0.5, 0.5),
		}},
	}
	shape := shapeDoc(rec)
	assert.Equal(t, psdimage.BBox{}, shape.BBox())

	noMask := shapeDoc(bareRecord("empty"))
	assert.Nil(t, noMask.Anchors())
	assert.Equal(t, psdimage.BBox{}, noMask.BBox())
}

func TestShapeFillColor(t *testing.T) {
	rec := bareRecord("red")
	rec.Opacity = 200
	rec.Blocks = psdimage.TaggedBlocks{
		psdimage.KeySolidColor: psdimage.SolidColor{R: 255, G: 10, B: 0},
	}
	c, ok := shapeDoc(rec).FillColor()
	assert.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 255, G: 10, B: 0, A: 200}, c)

	// gradient/pattern fills resolve to opaque black
	c, ok = shapeDoc(bareRecord("gradient")).FillColor()
	assert.False(t, ok)
	assert.Equal(t, color.NRGBA{A: 255}, c)
}
