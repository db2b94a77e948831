package psdimage

import "fmt"

// The layer tree is a closed set of typed nodes sharing the Layer
// capability set. Kind is the explicit discriminator; consumers may
// also switch on the concrete types (*Group, *PixelLayer,
// *ShapeLayer, *TypeLayer, *SmartObjectLayer, *AdjustmentLayer).

// Layer is one node of the layer tree.
type Layer interface {
	// Name of the layer. The unicode name block takes precedence
	// over the record name.
	Name() string

	// Kind discriminates the concrete variant.
	Kind() Kind

	// Visible is the local visibility flag, ignoring ancestors.
	Visible() bool

	// VisibleGlobal combines the local flag with the parent chain;
	// it is always true on the root.
	VisibleGlobal() bool

	// Opacity of the layer, 0 to 255.
	Opacity() uint8

	// BlendMode used when compositing the layer.
	BlendMode() BlendMode

	// LayerID returns the stable layer id, if the record carries one.
	LayerID() (int32, bool)

	// Parent of the layer; nil on the root. The reference is not
	// owning: children are owned by their parent's child list.
	Parent() Layer

	// BBox of the layer content. The zero box means "no content".
	BBox() BBox

	// Mask attached to the layer, or nil.
	Mask() *Mask

	// ClipLayers lists the layers clipped to this one. They are
	// tracked but not applied during composition.
	ClipLayers() []Layer

	// Channels exposes the decoded channel planes, for raster
	// drivers.
	Channels() []ChannelData

	// Document owning the layer.
	Document() *Document

	String() string

	// keeps the variant set closed
	base() *layerBase
}

// layerBase is the state shared by every variant: the owning
// document, the stable index into the decoded record store, the non
// owning parent reference and the attached clip layers.
// A negative index marks the synthetic root, which has no record.
type layerBase struct {
	doc    *Document
	parent Layer
	index  int
	kind   Kind
	clip   []Layer
}

func (l *layerBase) base() *layerBase { return l }

func (l *layerBase) record() *Record {
	if l.index < 0 {
		return nil
	}
	return &l.doc.decoded.Records[l.index]
}

func (l *layerBase) Name() string {
	r := l.record()
	if r == nil {
		return "_RootGroup"
	}
	if n, ok := r.Blocks[KeyUnicodeName].(UnicodeName); ok {
		return string(n)
	}
	return r.Name
}

func (l *layerBase) Kind() Kind { return l.kind }

func (l *layerBase) Visible() bool {
	r := l.record()
	if r == nil {
		return true
	}
	return r.Visible
}

func (l *layerBase) VisibleGlobal() bool {
	if l.parent == nil {
		return true
	}
	return l.Visible() && l.parent.VisibleGlobal()
}

func (l *layerBase) Opacity() uint8 {
	r := l.record()
	if r == nil {
		return 255
	}
	return r.Opacity
}

func (l *layerBase) BlendMode() BlendMode {
	r := l.record()
	if r == nil {
		return BlendNormal
	}
	return r.BlendMode
}

func (l *layerBase) LayerID() (int32, bool) {
	r := l.record()
	if r == nil {
		return 0, false
	}
	id, ok := r.Blocks[KeyLayerID].(LayerIDBlock)
	return int32(id), ok
}

func (l *layerBase) Parent() Layer { return l.parent }

func (l *layerBase) BBox() BBox {
	r := l.record()
	if r == nil {
		return BBox{}
	}
	return r.bbox()
}

func (l *layerBase) Mask() *Mask {
	r := l.record()
	if r == nil || r.Mask == nil {
		return nil
	}
	return &Mask{data: r.Mask, record: r}
}

func (l *layerBase) ClipLayers() []Layer { return l.clip }

func (l *layerBase) Channels() []ChannelData {
	r := l.record()
	if r == nil {
		return nil
	}
	return r.Channels
}

func (l *layerBase) Document() *Document { return l.doc }

// PixelLayer is a plain raster layer.
type PixelLayer struct {
	layerBase
}

func (l *PixelLayer) String() string {
	bb := l.BBox()
	return fmt.Sprintf("pixel %q: %s, visible=%t", l.Name(), bb, l.Visible())
}

// AdjustmentLayer applies a color adjustment to the layers below it.
// It carries no pixels of its own.
type AdjustmentLayer struct {
	layerBase
}

func (l *AdjustmentLayer) String() string {
	return fmt.Sprintf("adjustment %q: visible=%t", l.Name(), l.Visible())
}
