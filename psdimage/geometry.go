package psdimage

import "fmt"

// Basic geometry value types shared by the whole package.

// BBox is a bounding box in document pixels: (X1,Y1) is the top left
// corner, (X2,Y2) the exclusive bottom right corner.
// The zero value (a zero area box) means "no content".
type BBox struct {
	X1, Y1, X2, Y2 int
}

// Width of the bounding box.
func (b BBox) Width() int { return b.X2 - b.X1 }

// Height of the bounding box.
func (b BBox) Height() int { return b.Y2 - b.Y1 }

// Valid reports whether the box has a positive area.
func (b BBox) Valid() bool { return b.Width() > 0 && b.Height() > 0 }

func (b BBox) String() string {
	return fmt.Sprintf("%dx%d at (%d,%d)", b.Width(), b.Height(), b.X1, b.Y1)
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height int
}

// CombinedBBox returns the minimal box enclosing the bounding boxes
// of `layers`, ignoring layers whose box has no positive extent.
// It returns the zero BBox when no layer contributes one.
func CombinedBBox(layers []Layer) BBox {
	var out BBox
	first := true
	for _, l := range layers {
		bb := l.BBox()
		if !bb.Valid() {
			continue
		}
		if first {
			out = bb
			first = false
			continue
		}
		if bb.X1 < out.X1 {
			out.X1 = bb.X1
		}
		if bb.Y1 < out.Y1 {
			out.Y1 = bb.Y1
		}
		if bb.X2 > out.X2 {
			out.X2 = bb.X2
		}
		if bb.Y2 > out.Y2 {
			out.Y2 = bb.Y2
		}
	}
	return out
}
