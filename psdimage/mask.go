package psdimage

import "fmt"

// Mask is the raster/vector mask attached to a layer. It only exists
// for non root layers whose record carries a mask sub-record.
type Mask struct {
	data   *MaskData
	record *Record
}

// BBox returns the mask bounding box, preferring the "real" rectangle
// (covering both the bitmap and the vector mask) when the record
// indicates one is present.
func (m *Mask) BBox() BBox {
	if m.data.HasReal {
		return BBox{m.data.RealLeft, m.data.RealTop, m.data.RealRight, m.data.RealBottom}
	}
	return m.DefaultBBox()
}

// DefaultBBox returns the default mask rectangle, ignoring the "real"
// one.
func (m *Mask) DefaultBBox() BBox {
	return BBox{m.data.Left, m.data.Top, m.data.Right, m.data.Bottom}
}

// BackgroundColor of the mask.
func (m *Mask) BackgroundColor() uint8 { return m.data.BackgroundColor }

// IsValid reports whether the mask has a positive size.
func (m *Mask) IsValid() bool { return m.BBox().Valid() }

// Plane returns the decoded mask channel plane, for raster drivers.
// When `real` is set the combined bitmap and vector plane is
// preferred, falling back to the user mask plane.
func (m *Mask) Plane(real bool) []uint8 {
	if real {
		if p := m.record.channel(ChannelRealUserMask); p != nil {
			return p
		}
	}
	return m.record.channel(ChannelUserMask)
}

func (m *Mask) String() string {
	return fmt.Sprintf("mask: %s", m.BBox())
}
