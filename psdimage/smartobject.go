package psdimage

import "fmt"

// SmartObjectLayer shows an embedded or linked asset, placed through
// a transform.
type SmartObjectLayer struct {
	layerBase
}

// the modern placed layer key first, then the legacy ones
var placedKeys = [...]BlockKey{
	KeySmartObjectPlaced,
	KeyPlacedLayer,
	KeyPlacedLayerLegacy1,
	KeyPlacedLayerLegacy2,
}

func (l *SmartObjectLayer) placedBlock() *PlacedLayer {
	blocks := l.record().Blocks
	for _, key := range placedKeys {
		if b, ok := blocks[key].(*PlacedLayer); ok {
			return b
		}
	}
	return nil
}

// UniqueID of the placed asset, or the empty string when no placed
// layer block is present.
func (l *SmartObjectLayer) UniqueID() string {
	if b := l.placedBlock(); b != nil {
		return b.UniqueID
	}
	return ""
}

// TransformBBox returns the top left and bottom right corners of the
// placed transform. ok is false when no placed layer block (or no
// transform) is present.
func (l *SmartObjectLayer) TransformBBox() (BBox, bool) {
	b := l.placedBlock()
	if b == nil || len(b.Transform) < 8 {
		return BBox{}, false
	}
	t := b.Transform
	return BBox{int(t[0]), int(t[1]), int(t[4]), int(t[5])}, true
}

// PlacedLayerSize returns the original content size of the placed
// asset. ok is false when no placed layer block (or no size record)
// is present.
func (l *SmartObjectLayer) PlacedLayerSize() (Size, bool) {
	b := l.placedBlock()
	if b == nil || b.Size == nil {
		return Size{}, false
	}
	return Size{int(b.Size.Width), int(b.Size.Height)}, true
}

// LinkedData resolves the embedded asset through the document
// registry. A missing placed block or an id absent from the registry
// yields nil: broken links are expected, not exceptional.
func (l *SmartObjectLayer) LinkedData() *EmbeddedAsset {
	id := l.UniqueID()
	if id == "" {
		return nil
	}
	return l.doc.embedded[id]
}

func (l *SmartObjectLayer) String() string {
	bb := l.BBox()
	return fmt.Sprintf("smartobject %q: %s, visible=%t, linked=%v",
		l.Name(), bb, l.Visible(), l.LinkedData())
}
