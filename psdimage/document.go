// Provides a typed, hierarchical view over decoded layered-image
// documents (Photoshop-style files), and a compositor flattening the
// layer tree into a single raster.
// Binary container decoding is left to an external decoder producing
// the Decoded structures; the actual raster operations are left to a
// driver, such as okpsd/psdraster.
package psdimage

import (
	"fmt"
	"image"
	"io"
)

// Document is the typed, hierarchical view over a decoded layered
// image file. It is built exactly once from the decoded data and
// never mutated afterwards.
type Document struct {
	decoded *Decoded
	root    *Group

	patterns map[string]*Pattern
	embedded map[string]*EmbeddedAsset
	diags    Diagnostics
}

// NewDocument wraps decoded data into the layer tree and builds the
// pattern and embedded asset registries. Assembly never fails; non
// fatal conditions are recorded and available from Diagnostics.
func NewDocument(decoded *Decoded) *Document {
	d := &Document{
		decoded:  decoded,
		patterns: make(map[string]*Pattern),
		embedded: make(map[string]*EmbeddedAsset),
	}
	d.assemble()
	d.buildPatterns()
	d.buildEmbedded()
	return d
}

// Header of the decoded document.
func (d *Document) Header() Header { return d.decoded.Header }

// Root is the synthetic group holding the top level stack.
func (d *Document) Root() *Group { return d.root }

// Layers is the top level stack in top first z-order.
func (d *Document) Layers() []Layer { return d.root.children }

// BBox is the envelope of the top level layers. It may differ from
// the header dimensions.
func (d *Document) BBox() BBox { return CombinedBBox(d.Layers()) }

// Diagnostics recorded while building the tree.
func (d *Document) Diagnostics() Diagnostics { return d.diags }

// Patterns maps pattern ids to the document patterns.
func (d *Document) Patterns() map[string]*Pattern { return d.patterns }

// Embedded returns the embedded asset with the given unique id, or
// nil. Lookup is O(1); the registry is built once at construction.
func (d *Document) Embedded(uniqueID string) *EmbeddedAsset {
	return d.embedded[uniqueID]
}

// Composite flattens the document restricted to its own content
// bounding box.
func (d *Document) Composite(r Rasterizer) (*image.RGBA, Diagnostics) {
	return Merge(d.Layers(), r, MergeOptions{Target: d.BBox()})
}

// Merged flattens the full tree onto a canvas of the header size.
func (d *Document) Merged(r Rasterizer) (*image.RGBA, Diagnostics) {
	header := d.decoded.Header
	return Merge(d.Layers(), r, MergeOptions{
		Target: BBox{0, 0, header.Width, header.Height},
	})
}

// the three revisions of the pattern list, probed in order
var patternKeys = [...]BlockKey{KeyPatterns1, KeyPatterns2, KeyPatterns3}

func (d *Document) buildPatterns() {
	for _, key := range patternKeys {
		block, ok := d.decoded.Blocks[key].(PatternsBlock)
		if !ok {
			continue
		}
		for i := range block {
			rec := &block[i]
			d.patterns[rec.ID] = &Pattern{rec: rec}
		}
		return
	}
}

func (d *Document) buildEmbedded() {
	for _, block := range d.decoded.Blocks {
		linked, ok := block.(LinkedLayers)
		if !ok {
			continue
		}
		for i := range linked {
			rec := &linked[i]
			d.embedded[rec.UniqueID] = &EmbeddedAsset{rec: rec}
		}
	}
}

// PrintTree writes an indented listing of the layer hierarchy, with
// clip layers marked by a leading slash. The output is meant for
// humans; its exact shape is not stable.
func (d *Document) PrintTree(w io.Writer) {
	fmt.Fprintf(w, "%s\n", d)
	printLayers(w, d.Layers(), 2)
}

func printLayers(w io.Writer, layers []Layer, indent int) {
	for _, l := range layers {
		for _, clip := range l.ClipLayers() {
			fmt.Fprintf(w, "%*s/%s\n", indent, "", clip)
		}
		fmt.Fprintf(w, "%*s%s\n", indent, "", l)
		if group, ok := l.(*Group); ok {
			printLayers(w, group.Children(), indent+2)
		}
	}
}

func (d *Document) String() string {
	header := d.decoded.Header
	return fmt.Sprintf("document %dx%d (%s): %d layers",
		header.Width, header.Height, header.ColorMode, len(d.Layers()))
}
