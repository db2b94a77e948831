package psdimage

import "image"

// The recursive compositor: flattens an ordered layer stack into a
// single raster, respecting z-order, visibility, opacity and (for
// the normal mode) blend semantics. It is a pure function of the
// subtree and its options; every call owns its canvas.

// MergeOptions configures Merge. The zero value composes the visible
// layers over their combined bounding box.
type MergeOptions struct {
	// IgnoreVisibility renders hidden layers too.
	IgnoreVisibility bool

	// Skip excludes the layers it reports true for. nil skips none.
	Skip func(Layer) bool

	// Target restricts the output to this box. The zero box means
	// "use the combined box of the layers".
	Target BBox
}

// Merge flattens `layers` (given top first) into one raster.
// It returns nil when no bounding box can be resolved: an empty
// composition is not an error. Non fatal conditions found along the
// way are returned as diagnostics.
//
// Clip layers are tracked on their owner but not applied here.
func Merge(layers []Layer, r Rasterizer, opts MergeOptions) (*image.RGBA, Diagnostics) {
	var diags Diagnostics

	bbox := opts.Target
	if !bbox.Valid() {
		bbox = CombinedBBox(layers)
	}
	if !bbox.Valid() {
		return nil, diags
	}
	canvas := r.NewCanvas(bbox.Width(), bbox.Height())

	// walk bottom to top so that later draws occlude earlier ones
	for i := len(layers) - 1; i >= 0; i-- {
		layer := layers[i]
		layerBox := layer.BBox()
		if !layerBox.Valid() {
			continue
		}
		if opts.Skip != nil && opts.Skip(layer) {
			continue
		}
		if !opts.IgnoreVisibility && !layer.Visible() {
			continue
		}

		var img image.Image
		if group, ok := layer.(*Group); ok {
			sub, subDiags := Merge(group.Children(), r, MergeOptions{
				IgnoreVisibility: opts.IgnoreVisibility,
				Skip:             opts.Skip,
			})
			diags = append(diags, subDiags...)
			if sub == nil {
				continue
			}
			img = sub
		} else {
			var err error
			img, err = r.RasterizeLayer(layer)
			if err != nil {
				diags.add(SeverityWarning, layer.Name(), "rasterization failed: %s", err)
				continue
			}
			if img == nil {
				continue
			}
		}

		img = r.ApplyOpacity(img, layer.Opacity())

		x := layerBox.X1 - bbox.X1
		y := layerBox.Y1 - bbox.Y1
		if x < 0 || y < 0 {
			// the layer extends above or left of the canvas: crop
			// the overhang and clamp the offset
			overX, overY := 0, 0
			if x < 0 {
				overX = -x
			}
			if y < 0 {
				overY = -y
			}
			diags.add(SeverityDebug, layer.Name(), "cropping top left overhang (%d, %d)", overX, overY)
			b := img.Bounds()
			img = r.Crop(img, image.Rect(b.Min.X+overX, b.Min.Y+overY, b.Max.X, b.Max.Y))
			x += overX
			y += overY
		}
		if x+img.Bounds().Dx() > bbox.Width() || y+img.Bounds().Dy() > bbox.Height() {
			// clipped against the canvas bounds by Compose
			diags.add(SeverityDebug, layer.Name(), "layer overflows the canvas bottom right")
		}

		if layer.BlendMode() != BlendNormal {
			diags.add(SeverityWarning, layer.Name(), "blend mode %s is not implemented", layer.BlendMode())
			continue
		}
		if err := r.Compose(canvas, img, image.Pt(x, y)); err != nil {
			diags.add(SeverityWarning, layer.Name(), "unsupported source raster: %s", err)
			continue
		}
	}
	return canvas, diags
}
