package psdimage

import "fmt"

// Group is a layer holding an ordered child stack, top first.
// The synthetic root of a document is a Group with no record and no
// parent; it is always visible and reports a fixed name.
type Group struct {
	layerBase
	children []Layer
}

// Children returns the child stack in top first z-order.
func (g *Group) Children() []Layer { return g.children }

// BBox is the envelope of the children bounding boxes; the zero box
// when the group has no sized child.
func (g *Group) BBox() BBox { return CombinedBBox(g.children) }

// Closed reports whether the group folder is collapsed, resolved from
// the section divider block. ok is false when the block is absent.
func (g *Group) Closed() (closed, ok bool) {
	r := g.record()
	if r == nil {
		return false, false
	}
	div, ok := r.Blocks[KeySectionDivider].(SectionDivider)
	if !ok {
		return false, false
	}
	return div.Type == DividerClosedFolder, true
}

func (g *Group) String() string {
	return fmt.Sprintf("group %q: %d children, visible=%t", g.Name(), len(g.children), g.Visible())
}
