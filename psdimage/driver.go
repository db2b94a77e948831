package psdimage

import "image"

// The compositor needs a driver implementing the actual raster
// operations, such as the x/image backend in okpsd/psdraster.
// The model package only decides what to draw, where.

// Rasterizer knows how to materialize decoded data into images and
// how to combine them. It needs no knowledge of the layer tree walk.
type Rasterizer interface {
	// NewCanvas allocates a fully transparent canvas.
	NewCanvas(width, height int) *image.RGBA

	// RasterizeLayer renders a single leaf layer (never a group)
	// into its own bounding box.
	RasterizeLayer(l Layer) (image.Image, error)

	// RasterizeMask extracts the mask plane as a grayscale image.
	// When `real` is set the combined bitmap and vector mask is
	// preferred.
	RasterizeMask(m *Mask, real bool) (image.Image, error)

	// RasterizePattern materializes a pattern texture.
	RasterizePattern(p *Pattern) (image.Image, error)

	// ApplyOpacity scales the alpha of `img` uniformly by
	// opacity/255. The input is not modified.
	ApplyOpacity(img image.Image, opacity uint8) image.Image

	// Crop extracts the given rectangle (in the coordinates of
	// img.Bounds) into a new image.
	Crop(img image.Image, r image.Rectangle) image.Image

	// Compose draws src onto dst with its top left corner at `at`:
	// alpha-aware "over" when the source carries an alpha channel,
	// direct overwrite when it does not. Drawing is clipped to the
	// destination bounds. An unsupported source format returns an
	// error.
	Compose(dst *image.RGBA, src image.Image, at image.Point) error
}
